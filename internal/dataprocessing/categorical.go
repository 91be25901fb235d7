package dataprocessing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// missingLabel replaces categorical cells that are empty or carry the
// source's missing-value placeholders after title-casing.
const missingLabel = "Other"

// cityAliases maps post-title-case city names onto their canonical form.
// Exact match, applied once, not recursive.
var cityAliases = map[string]string{
	"Bengaluru": "Bangalore",
	"New Delhi": "Delhi",
	"Gurugram":  "Gurgaon",
	"Hydrabad":  "Hyderabad", // frequent misspelling in the source data
}

// investmentTypeAliases maps post-title-case investment-type labels onto
// their canonical form.
var investmentTypeAliases = map[string]string{
	"Seed/ Angel Funding": "Seed/Angel Funding",
}

// NormalizeText trims and title-cases a categorical cell. Empty cells and
// the literal "Nan"/"N/A" placeholders collapse to "Other".
func NormalizeText(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return missingLabel
	}
	// cases.Caser carries state, so a fresh one per call keeps this safe
	// for concurrent use.
	s = cases.Title(language.English).String(s)
	if s == "Nan" || s == "N/A" {
		return missingLabel
	}
	return s
}

// NormalizeCity normalizes a city cell and resolves known aliases to their
// canonical city name. The alias table is idempotent: its targets are never
// alias keys themselves.
func NormalizeCity(raw string) string {
	city := NormalizeText(raw)
	if canonical, ok := cityAliases[city]; ok {
		return canonical
	}
	return city
}

// NormalizeInvestmentType normalizes an investment-type cell and resolves
// known label variants to their canonical form.
func NormalizeInvestmentType(raw string) string {
	investmentType := NormalizeText(raw)
	if canonical, ok := investmentTypeAliases[investmentType]; ok {
		return canonical
	}
	return investmentType
}
