package dataprocessing

import (
	"errors"
)

// Source column positions (0-indexed) of the six fields this system
// consumes. The raw export is much wider; every other column is ignored.
const (
	colDate           = 13
	colStartupName    = 14
	colSector         = 15
	colCity           = 17
	colInvestmentType = 19
	colAmount         = 20
)

// minRawColumns is the narrowest header the extractor can work with.
const minRawColumns = 21

// ErrSchemaMismatch reports that the raw table does not have the expected
// column layout. This is fatal for the whole load: no partial dataset is
// produced.
var ErrSchemaMismatch = errors.New("raw table does not match the expected column layout")

// rawFields is the six-column intermediate a raw row is reduced to before
// normalization.
type rawFields struct {
	date           string
	startupName    string
	sector         string
	city           string
	investmentType string
	amount         string
}

// extractFields slices the six relevant cells out of a raw row. Data rows
// may be ragged; cells past the end of a short row read as empty and are
// rejected by the per-field normalizers downstream.
func extractFields(row []string) rawFields {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return rawFields{
		date:           cell(colDate),
		startupName:    cell(colStartupName),
		sector:         cell(colSector),
		city:           cell(colCity),
		investmentType: cell(colInvestmentType),
		amount:         cell(colAmount),
	}
}
