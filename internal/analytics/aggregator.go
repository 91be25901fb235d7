// Package analytics provides the pure read operations the dashboard
// renders: filtering the cleaned dataset and aggregating any subset of it
// into the monthly trend, top-cities, and investment-type views plus the
// headline KPIs. All operations are read-only and safe to call
// concurrently over the same records.
package analytics

import (
	"errors"
	"sort"

	"fundcli/pkg/contracts/domain"
)

// DefaultTopCities is the number of cities the dashboard's bar chart shows.
const DefaultTopCities = 10

// ErrEmptyDataset reports an aggregation whose precondition requires at
// least one record. Callers are expected to check subset size before
// averaging; this error is the guard rail, not a control-flow signal.
var ErrEmptyDataset = errors.New("empty dataset")

// MonthlyFundingTotal groups records by year-month period and sums the
// funding amount per group. Only observed periods appear, ordered by
// period; no zero-filled gaps are synthesized.
func MonthlyFundingTotal(records []domain.FundingRecord) []domain.PeriodTotal {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.Period()] += record.AmountMillionsUSD
	}

	out := make([]domain.PeriodTotal, 0, len(totals))
	for period, total := range totals {
		out = append(out, domain.PeriodTotal{Period: period, TotalMillionsUSD: total})
	}
	// "YYYY-MM" sorts lexicographically in chronological order.
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// TopCitiesByDealCount counts records per city and returns the top n cities
// by count descending. Equal counts are ordered alphabetically by city name
// so the ranking is deterministic.
func TopCitiesByDealCount(records []domain.FundingRecord, n int) []domain.CityDeals {
	counts := make(map[string]int)
	for _, record := range records {
		counts[record.City]++
	}

	out := make([]domain.CityDeals, 0, len(counts))
	for city, count := range counts {
		out = append(out, domain.CityDeals{City: city, DealCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DealCount != out[j].DealCount {
			return out[i].DealCount > out[j].DealCount
		}
		return out[i].City < out[j].City
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FundingByInvestmentType groups records by investment type and sums the
// funding amount per group, ordered by total descending. Equal totals are
// ordered alphabetically for determinism.
func FundingByInvestmentType(records []domain.FundingRecord) []domain.TypeTotal {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.InvestmentType] += record.AmountMillionsUSD
	}

	out := make([]domain.TypeTotal, 0, len(totals))
	for investmentType, total := range totals {
		out = append(out, domain.TypeTotal{InvestmentType: investmentType, TotalMillionsUSD: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMillionsUSD != out[j].TotalMillionsUSD {
			return out[i].TotalMillionsUSD > out[j].TotalMillionsUSD
		}
		return out[i].InvestmentType < out[j].InvestmentType
	})
	return out
}

// TotalFunding sums the funding amount over the subset, in millions of USD.
func TotalFunding(records []domain.FundingRecord) float64 {
	var total float64
	for _, record := range records {
		total += record.AmountMillionsUSD
	}
	return total
}

// DistinctStartupCount counts unique normalized startup names in the
// subset.
func DistinctStartupCount(records []domain.FundingRecord) int {
	names := make(map[string]struct{}, len(records))
	for _, record := range records {
		names[record.StartupName] = struct{}{}
	}
	return len(names)
}

// AverageFunding returns the mean funding amount over the subset. The
// subset must be non-empty; an empty subset returns ErrEmptyDataset.
func AverageFunding(records []domain.FundingRecord) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyDataset
	}
	return TotalFunding(records) / float64(len(records)), nil
}

// KPIs assembles the headline figures for a subset. The subset must be
// non-empty.
func KPIs(records []domain.FundingRecord) (domain.KPISet, error) {
	average, err := AverageFunding(records)
	if err != nil {
		return domain.KPISet{}, err
	}
	return domain.KPISet{
		TotalFundingMillionsUSD:   TotalFunding(records),
		DistinctStartups:          DistinctStartupCount(records),
		AverageFundingMillionsUSD: average,
	}, nil
}
