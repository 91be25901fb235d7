package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{"day first", "04/01/2015", time.Date(2015, time.January, 4, 0, 0, 0, 0, time.UTC), true},
		{"unpadded fields", "4/1/2015", time.Date(2015, time.January, 4, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", " 22/06/2017 ", time.Date(2017, time.June, 22, 0, 0, 0, 0, time.UTC), true},
		{"iso format rejected", "2015-01-04", time.Time{}, false},
		{"dash separators rejected", "04-01-2015", time.Time{}, false},
		{"month out of range", "05/13/2015", time.Time{}, false},
		{"day out of range", "31/02/2015", time.Time{}, false},
		{"non numeric", "January 4, 2015", time.Time{}, false},
		{"trailing junk", "04/01/2015x", time.Time{}, false},
		{"empty cell", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}
