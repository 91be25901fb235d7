package dataprocessing

import (
	"strconv"
	"strings"
)

// rejectTokens mark amount cells the pipeline refuses to interpret: South
// Asian scale units (lakh, crore) whose USD conversion is ambiguous, and
// values the source explicitly marks as unknown. Matching is substring on
// the lower-cased cell, so "5 Cr" and "Unknown amount" both reject.
var rejectTokens = []string{"lac", "lakh", "cr", "unknown", "n/a"}

// NormalizeAmount parses a raw amount cell into millions of US dollars.
// Thousands separators and currency symbols are stripped before parsing;
// the remaining figure is taken as plain US dollars and divided by
// 1,000,000. The second return value is false when the cell is rejected,
// either by token policy or because it does not parse as a decimal number.
func NormalizeAmount(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ToLower(strings.TrimSpace(s))

	for _, token := range rejectTokens {
		if strings.Contains(s, token) {
			return 0, false
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value / 1_000_000, true
}
