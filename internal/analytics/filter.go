package analytics

import (
	"sort"

	"fundcli/pkg/contracts/domain"
)

// defaultCities is the initial city selection the dashboard starts from,
// intersected with the cities actually observed in the dataset.
var defaultCities = []string{"Bangalore", "Mumbai", "Delhi"}

// ApplyFilter returns the subset of records matching the spec, preserving
// input order. The input is never mutated; the result aliases no caller
// state.
func ApplyFilter(records []domain.FundingRecord, spec domain.FilterSpec) []domain.FundingRecord {
	filtered := make([]domain.FundingRecord, 0, len(records))
	for _, record := range records {
		if spec.Matches(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterBoundsOf derives the observed extent of the cleaned dataset: year
// range, sorted distinct city list with the dashboard's default selection,
// and amount range. An empty dataset yields zero bounds.
func FilterBoundsOf(records []domain.FundingRecord) domain.FilterBounds {
	if len(records) == 0 {
		return domain.FilterBounds{}
	}

	bounds := domain.FilterBounds{
		YearMin:   records[0].Year(),
		YearMax:   records[0].Year(),
		AmountMin: records[0].AmountMillionsUSD,
		AmountMax: records[0].AmountMillionsUSD,
	}

	citySet := make(map[string]struct{})
	for _, record := range records {
		year := record.Year()
		if year < bounds.YearMin {
			bounds.YearMin = year
		}
		if year > bounds.YearMax {
			bounds.YearMax = year
		}
		if record.AmountMillionsUSD < bounds.AmountMin {
			bounds.AmountMin = record.AmountMillionsUSD
		}
		if record.AmountMillionsUSD > bounds.AmountMax {
			bounds.AmountMax = record.AmountMillionsUSD
		}
		citySet[record.City] = struct{}{}
	}

	bounds.Cities = make([]string, 0, len(citySet))
	for city := range citySet {
		bounds.Cities = append(bounds.Cities, city)
	}
	sort.Strings(bounds.Cities)

	for _, city := range defaultCities {
		if _, ok := citySet[city]; ok {
			bounds.DefaultCities = append(bounds.DefaultCities, city)
		}
	}
	return bounds
}

// FullRangeSpec builds the identity filter for the given bounds: applying
// it to the dataset the bounds were derived from returns every record.
func FullRangeSpec(bounds domain.FilterBounds) domain.FilterSpec {
	return domain.FilterSpec{
		YearFrom:  bounds.YearMin,
		YearTo:    bounds.YearMax,
		Cities:    bounds.Cities,
		AmountMin: bounds.AmountMin,
		AmountMax: bounds.AmountMax,
	}
}
