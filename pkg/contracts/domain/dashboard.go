package domain

// PeriodTotal is one point of the monthly funding trend: the sum of funding
// amounts for a single observed year-month period.
type PeriodTotal struct {
	Period            string  `json:"period" csv:"Period"`
	TotalMillionsUSD  float64 `json:"total_millions_usd" csv:"TotalMillionsUSD"`
}

// CityDeals is one bar of the top-cities chart: the number of funding deals
// recorded in a single city.
type CityDeals struct {
	City      string `json:"city" csv:"City"`
	DealCount int    `json:"deal_count" csv:"DealCount"`
}

// TypeTotal is one slice of the investment-type chart: the sum of funding
// amounts for a single investment type.
type TypeTotal struct {
	InvestmentType   string  `json:"investment_type" csv:"InvestmentType"`
	TotalMillionsUSD float64 `json:"total_millions_usd" csv:"TotalMillionsUSD"`
}

// KPISet holds the headline figures shown above the charts.
type KPISet struct {
	TotalFundingMillionsUSD   float64 `json:"total_funding_millions_usd"`
	DistinctStartups          int     `json:"distinct_startups"`
	AverageFundingMillionsUSD float64 `json:"average_funding_millions_usd"`
}

// DashboardData is the full payload the presentation layer renders for one
// filtered view of the dataset.
type DashboardData struct {
	KPIs            KPISet        `json:"kpis"`
	FundingTrend    []PeriodTotal `json:"funding_trend"`
	TopCities       []CityDeals   `json:"top_cities"`
	InvestmentTypes []TypeTotal   `json:"investment_types"`
	RecordCount     int           `json:"record_count"`
}

// FilterBounds describes the observed extent of the cleaned dataset so the
// presentation layer can build its filter widgets: year slider bounds, the
// city multiselect options and defaults, and the amount slider bounds.
type FilterBounds struct {
	YearMin       int      `json:"year_min"`
	YearMax       int      `json:"year_max"`
	Cities        []string `json:"cities"`
	DefaultCities []string `json:"default_cities"`
	AmountMin     float64  `json:"amount_min"`
	AmountMax     float64  `json:"amount_max"`
}
