package domain

import (
	"time"
)

// FundingRecord represents one cleaned, normalized startup funding event.
// Amounts are always expressed in millions of US dollars; the cleaning
// pipeline guarantees 0 < AmountMillionsUSD < 1000 and a valid Date for
// every record it emits.
type FundingRecord struct {
	Date              time.Time `json:"date" csv:"Date"`
	StartupName       string    `json:"startup_name" csv:"StartupName"`
	Sector            string    `json:"sector" csv:"Sector"`
	City              string    `json:"city" csv:"City"`
	InvestmentType    string    `json:"investment_type" csv:"InvestmentType"`
	AmountMillionsUSD float64   `json:"amount_millions_usd" csv:"AmountMillionsUSD"`
}

// Year returns the calendar year of the funding event.
func (r FundingRecord) Year() int {
	return r.Date.Year()
}

// Period returns the year-month period identifier used for monthly
// aggregation, e.g. "2015-01".
func (r FundingRecord) Period() string {
	return r.Date.Format("2006-01")
}

// FilterSpec is a declarative constraint over the cleaned dataset.
// A record passes iff all three predicates hold: its year falls in the
// inclusive [YearFrom, YearTo] range, its city is a member of Cities, and
// its amount falls in the inclusive [AmountMin, AmountMax] range.
type FilterSpec struct {
	YearFrom  int      `json:"year_from" validate:"required"`
	YearTo    int      `json:"year_to" validate:"required,gtefield=YearFrom"`
	Cities    []string `json:"cities" validate:"required,min=1"`
	AmountMin float64  `json:"amount_min" validate:"min=0"`
	AmountMax float64  `json:"amount_max" validate:"gtefield=AmountMin"`
}

// Matches reports whether the record satisfies all three filter predicates.
func (f FilterSpec) Matches(r FundingRecord) bool {
	year := r.Year()
	if year < f.YearFrom || year > f.YearTo {
		return false
	}
	if r.AmountMillionsUSD < f.AmountMin || r.AmountMillionsUSD > f.AmountMax {
		return false
	}
	for _, city := range f.Cities {
		if r.City == city {
			return true
		}
	}
	return false
}
