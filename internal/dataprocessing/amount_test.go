package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{"plain dollars", "1000000", 1.0, true},
		{"thousands separators", "1,000,000", 1.0, true},
		{"currency symbol", "$2,500,000", 2.5, true},
		{"surrounding whitespace", "  500000  ", 0.5, true},
		{"fractional dollars", "750000.50", 0.7500005, true},
		{"negative parses but is filtered later", "-5000000", -5.0, true},
		{"crore token", "5 Cr", 0, false},
		{"lakh token", "10 lakh", 0, false},
		{"lac token", "2 Lac", 0, false},
		{"unknown token", "Unknown", 0, false},
		{"not available token", "N/A", 0, false},
		{"token with numeric prefix", "14,342,000+ (Cr)", 0, false},
		{"plain text", "undisclosed amount", 0, false},
		{"empty cell", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}
