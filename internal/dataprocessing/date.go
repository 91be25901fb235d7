package dataprocessing

import (
	"strings"
	"time"
)

// dateLayout is the only accepted input format, day-first: "04/01/2015" is
// January 4, 2015.
const dateLayout = "02/01/2006"

// NormalizeDate parses a raw date cell into a calendar date. Anything not
// matching the day/month/year layout exactly (wrong separators, wrong field
// order producing an invalid month, non-numeric text, empty cell) is
// rejected; the second return value is false. There is no time-of-day or
// timezone concept: the result is midnight UTC.
func NormalizeDate(raw string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
