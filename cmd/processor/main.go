// Command processor runs the cleaning pipeline over a raw funding export
// and writes the cleaned dataset plus the three aggregate reports as CSV.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"fundcli/internal/analytics"
	"fundcli/internal/config"
	"fundcli/internal/dataprocessing"
	"fundcli/internal/exporter"
	"fundcli/internal/infrastructure"
)

func main() {
	inFile := flag.String("in", "", "raw funding export (.csv or .xlsx); defaults to the configured raw file")
	outDir := flag.String("out", "", "output directory for cleaned CSV and reports; defaults to the configured reports dir")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{Level: "info", Format: "json", Output: "console"},
			Paths:   config.PathsConfig{RawFile: "data/startup_funding.csv", ReportsDir: "data/reports"},
		}
	}
	if *inFile == "" {
		*inFile = cfg.Paths.RawFile
	}
	if *outDir == "" {
		*outDir = cfg.Paths.ReportsDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	ctx := context.Background()
	logger.Info("processing raw funding export",
		slog.String("in", *inFile),
		slog.String("out", *outDir))

	records, stats, err := dataprocessing.LoadAndCleanFile(ctx, logger, *inFile)
	if err != nil {
		logger.Error("cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleaning complete",
		slog.Int("raw_rows", stats.RawRows),
		slog.Int("kept", stats.Kept),
		slog.Int("dropped", stats.Dropped()))

	writer := exporter.NewCSVWriter(*outDir, logger)
	exports := []struct {
		name  string
		write func() error
	}{
		{"funding_clean.csv", func() error { return writer.WriteFundingRecords("funding_clean.csv", records) }},
		{"monthly_funding.csv", func() error {
			return writer.WriteMonthlyTotals("monthly_funding.csv", analytics.MonthlyFundingTotal(records))
		}},
		{"top_cities.csv", func() error {
			return writer.WriteTopCities("top_cities.csv", analytics.TopCitiesByDealCount(records, analytics.DefaultTopCities))
		}},
		{"investment_types.csv", func() error {
			return writer.WriteInvestmentTypes("investment_types.csv", analytics.FundingByInvestmentType(records))
		}},
	}
	for _, export := range exports {
		if err := export.write(); err != nil {
			logger.Error("export failed",
				slog.String("file", export.name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("reports written", slog.String("dir", *outDir), slog.Int("files", len(exports)))
}
