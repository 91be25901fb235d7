package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundcli/pkg/contracts/domain"
)

func sampleRecords() []domain.FundingRecord {
	return []domain.FundingRecord{
		record("2015-01-04", "A", "Bangalore", "Seed Funding", 1.0),
		record("2016-06-15", "B", "Mumbai", "Private Equity", 50.0),
		record("2017-12-31", "C", "Delhi", "Debt Funding", 999.0),
		record("2015-03-10", "D", "Pune", "Seed Funding", 0.5),
	}
}

func TestApplyFilterIdentity(t *testing.T) {
	records := sampleRecords()
	bounds := FilterBoundsOf(records)

	filtered := ApplyFilter(records, FullRangeSpec(bounds))

	assert.Equal(t, records, filtered, "full-range filter must return the dataset unchanged")
}

func TestApplyFilterPredicates(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name      string
		spec      domain.FilterSpec
		wantNames []string
	}{
		{
			name: "year range is inclusive",
			spec: domain.FilterSpec{
				YearFrom: 2015, YearTo: 2016,
				Cities:    []string{"Bangalore", "Mumbai", "Delhi", "Pune"},
				AmountMin: 0, AmountMax: 1000,
			},
			wantNames: []string{"A", "B", "D"},
		},
		{
			name: "city membership",
			spec: domain.FilterSpec{
				YearFrom: 2015, YearTo: 2017,
				Cities:    []string{"Mumbai"},
				AmountMin: 0, AmountMax: 1000,
			},
			wantNames: []string{"B"},
		},
		{
			name: "amount range is inclusive at both edges",
			spec: domain.FilterSpec{
				YearFrom: 2015, YearTo: 2017,
				Cities:    []string{"Bangalore", "Mumbai", "Delhi", "Pune"},
				AmountMin: 1.0, AmountMax: 50.0,
			},
			wantNames: []string{"A", "B"},
		},
		{
			name: "all predicates must hold",
			spec: domain.FilterSpec{
				YearFrom: 2015, YearTo: 2015,
				Cities:    []string{"Mumbai"},
				AmountMin: 0, AmountMax: 1000,
			},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := ApplyFilter(records, tt.spec)
			names := make([]string, 0, len(filtered))
			for _, r := range filtered {
				names = append(names, r.StartupName)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterBoundsOf(t *testing.T) {
	bounds := FilterBoundsOf(sampleRecords())

	assert.Equal(t, 2015, bounds.YearMin)
	assert.Equal(t, 2017, bounds.YearMax)
	assert.InDelta(t, 0.5, bounds.AmountMin, 1e-9)
	assert.InDelta(t, 999.0, bounds.AmountMax, 1e-9)
	assert.Equal(t, []string{"Bangalore", "Delhi", "Mumbai", "Pune"}, bounds.Cities)
	// Default selection keeps the dashboard's preferred cities that exist
	// in the data, in preference order.
	assert.Equal(t, []string{"Bangalore", "Mumbai", "Delhi"}, bounds.DefaultCities)
}

func TestFilterBoundsOfEmpty(t *testing.T) {
	bounds := FilterBoundsOf(nil)
	assert.Equal(t, domain.FilterBounds{}, bounds)
}

func TestFilterBoundsDefaultCitiesIntersect(t *testing.T) {
	records := []domain.FundingRecord{
		record("2015-01-04", "A", "Pune", "Seed Funding", 1.0),
		record("2015-02-04", "B", "Mumbai", "Seed Funding", 2.0),
	}

	bounds := FilterBoundsOf(records)
	require.Equal(t, []string{"Mumbai"}, bounds.DefaultCities,
		"defaults must only name cities observed in the dataset")
}
