// Package exporter writes the cleaned dataset and its aggregate views to
// CSV files for downstream tooling.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"fundcli/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality rooted at a reports
// directory.
type CSVWriter struct {
	reportsDir string
	logger     *slog.Logger
}

// NewCSVWriter creates a new CSV writer writing under reportsDir.
func NewCSVWriter(reportsDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{reportsDir: reportsDir, logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM so Excel opens the file correctly
}

// WriteCSV writes data to a CSV file under the reports directory.
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) error {
	fullPath := filepath.Join(w.reportsDir, name)

	w.logger.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return writer.Error()
}

// WriteFundingRecords exports the cleaned dataset.
func (w *CSVWriter) WriteFundingRecords(name string, records []domain.FundingRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			r.StartupName,
			r.Sector,
			r.City,
			r.InvestmentType,
			formatAmount(r.AmountMillionsUSD),
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers:   []string{"Date", "StartupName", "Sector", "City", "InvestmentType", "AmountMillionsUSD"},
		Records:   rows,
		BOMPrefix: true,
	})
}

// WriteMonthlyTotals exports the monthly funding trend.
func (w *CSVWriter) WriteMonthlyTotals(name string, totals []domain.PeriodTotal) error {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Period, formatAmount(t.TotalMillionsUSD)})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers: []string{"Period", "TotalMillionsUSD"},
		Records: rows,
	})
}

// WriteTopCities exports the top-cities deal counts.
func (w *CSVWriter) WriteTopCities(name string, cities []domain.CityDeals) error {
	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{c.City, strconv.Itoa(c.DealCount)})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers: []string{"City", "DealCount"},
		Records: rows,
	})
}

// WriteInvestmentTypes exports the per-investment-type funding totals.
func (w *CSVWriter) WriteInvestmentTypes(name string, totals []domain.TypeTotal) error {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.InvestmentType, formatAmount(t.TotalMillionsUSD)})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers: []string{"InvestmentType", "TotalMillionsUSD"},
		Records: rows,
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
