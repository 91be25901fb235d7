package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"fundcli/pkg/contracts/domain"
)

// OutlierCutoffMillionsUSD is the policy cutoff for the record filter:
// amounts at or above this value (in millions of USD) are treated as
// data-entry or unit-confusion artifacts and excluded rather than capped.
const OutlierCutoffMillionsUSD = 1000

// CleanStats accounts for what the pipeline did with the raw rows. Field
// rejections are soft: the record is dropped and counted here, never
// surfaced as an error.
type CleanStats struct {
	RawRows            int `json:"raw_rows"`
	Kept               int `json:"kept"`
	DroppedAmount      int `json:"dropped_amount"`       // unparseable or token-rejected amount cell
	DroppedDate        int `json:"dropped_date"`         // cell not in day/month/year form
	DroppedNonPositive int `json:"dropped_non_positive"` // amount parsed but not strictly positive
	DroppedOutlier     int `json:"dropped_outlier"`      // amount at or above the outlier cutoff
}

// Dropped returns the total number of rows removed by the record filter.
func (s CleanStats) Dropped() int {
	return s.DroppedAmount + s.DroppedDate + s.DroppedNonPositive + s.DroppedOutlier
}

// Clean runs the full normalization pipeline over a banner-stripped raw
// table: fixed-position field extraction, amount/date/categorical
// normalization, then the record filter. The first row of the table must be
// the header row; a header narrower than the expected layout fails the
// whole load with ErrSchemaMismatch and no partial dataset.
//
// The returned slice is a pure function of the input: callers may memoize
// it against the identity of the raw content and share it freely across
// goroutines once built.
func Clean(ctx context.Context, logger *slog.Logger, table RawTable) ([]domain.FundingRecord, CleanStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var stats CleanStats
	if len(table) == 0 || len(table[0]) < minRawColumns {
		return nil, stats, fmt.Errorf("header has %d columns, need at least %d: %w",
			headerWidth(table), minRawColumns, ErrSchemaMismatch)
	}

	dataRows := table[1:]
	stats.RawRows = len(dataRows)

	records := make([]domain.FundingRecord, 0, len(dataRows))
	for _, row := range dataRows {
		fields := extractFields(row)

		amount, amountOK := NormalizeAmount(fields.amount)
		date, dateOK := NormalizeDate(fields.date)

		// Record filter: the only place records leave the dataset.
		switch {
		case !amountOK:
			stats.DroppedAmount++
			continue
		case !dateOK:
			stats.DroppedDate++
			continue
		case !(amount > 0):
			stats.DroppedNonPositive++
			continue
		case amount >= OutlierCutoffMillionsUSD:
			stats.DroppedOutlier++
			continue
		}

		records = append(records, domain.FundingRecord{
			Date:              date,
			StartupName:       NormalizeText(fields.startupName),
			Sector:            NormalizeText(fields.sector),
			City:              NormalizeCity(fields.city),
			InvestmentType:    NormalizeInvestmentType(fields.investmentType),
			AmountMillionsUSD: amount,
		})
	}
	stats.Kept = len(records)

	logger.InfoContext(ctx, "raw table cleaned",
		slog.Int("raw_rows", stats.RawRows),
		slog.Int("kept", stats.Kept),
		slog.Int("dropped_amount", stats.DroppedAmount),
		slog.Int("dropped_date", stats.DroppedDate),
		slog.Int("dropped_non_positive", stats.DroppedNonPositive),
		slog.Int("dropped_outlier", stats.DroppedOutlier))

	return records, stats, nil
}

// LoadAndCleanFile reads the raw export at path and runs the cleaning
// pipeline over it.
func LoadAndCleanFile(ctx context.Context, logger *slog.Logger, path string) ([]domain.FundingRecord, CleanStats, error) {
	table, err := ReadRawFile(path)
	if err != nil {
		return nil, CleanStats{}, err
	}
	return Clean(ctx, logger, table)
}

func headerWidth(table RawTable) int {
	if len(table) == 0 {
		return 0
	}
	return len(table[0])
}
