// Package dataprocessing implements the cleaning pipeline that turns a raw
// startup-funding export into the normalized dataset every other component
// consumes.
//
// # Architecture
//
// The pipeline runs in a fixed order:
//
//	Raw file → Loader → Field Extractor → Normalizers → Record Filter → []domain.FundingRecord
//
// The loader reads CSV (ISO-8859-1 tolerant) or XLSX input and strips the
// banner rows. Extraction slices six fields out of each row at fixed
// positions. The amount, date, and categorical normalizers are pure
// per-field transforms that report rejection instead of failing; rejected
// fields only remove a record at the record-filter stage, which is the
// single place records leave the dataset.
//
// # Failure semantics
//
// A raw table narrower than the expected layout fails the whole load with
// ErrSchemaMismatch; no partial dataset is ever produced. Per-field
// rejections are soft and silent, accounted for in CleanStats but never
// surfaced as errors.
//
// # Usage
//
//	records, stats, err := dataprocessing.LoadAndCleanFile(ctx, logger, "startup_funding.csv")
//	if err != nil {
//	    // schema mismatch or unreadable input; nothing was produced
//	}
package dataprocessing
