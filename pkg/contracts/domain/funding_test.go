package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFundingRecordPeriod(t *testing.T) {
	r := FundingRecord{Date: time.Date(2015, time.January, 4, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2015-01", r.Period())
	assert.Equal(t, 2015, r.Year())

	r.Date = time.Date(2017, time.December, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2017-12", r.Period())
}

func TestFilterSpecMatches(t *testing.T) {
	record := FundingRecord{
		Date:              time.Date(2016, time.June, 15, 0, 0, 0, 0, time.UTC),
		City:              "Mumbai",
		AmountMillionsUSD: 5.0,
	}

	base := FilterSpec{
		YearFrom:  2015,
		YearTo:    2017,
		Cities:    []string{"Bangalore", "Mumbai"},
		AmountMin: 1.0,
		AmountMax: 10.0,
	}

	tests := []struct {
		name   string
		mutate func(*FilterSpec)
		want   bool
	}{
		{"all predicates hold", func(*FilterSpec) {}, true},
		{"year boundary inclusive", func(f *FilterSpec) { f.YearFrom, f.YearTo = 2016, 2016 }, true},
		{"amount boundary inclusive", func(f *FilterSpec) { f.AmountMin, f.AmountMax = 5.0, 5.0 }, true},
		{"year below range", func(f *FilterSpec) { f.YearFrom, f.YearTo = 2017, 2018 }, false},
		{"city not in set", func(f *FilterSpec) { f.Cities = []string{"Delhi"} }, false},
		{"amount above range", func(f *FilterSpec) { f.AmountMax = 4.9 }, false},
		{"empty city set matches nothing", func(f *FilterSpec) { f.Cities = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			spec.Cities = append([]string(nil), base.Cities...)
			tt.mutate(&spec)
			assert.Equal(t, tt.want, spec.Matches(record))
		})
	}
}
