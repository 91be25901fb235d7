package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// RawTable is the banner-stripped portion of a raw export: the header row
// followed by the data rows, cells in source column order.
type RawTable [][]string

// bannerRows is the number of non-data banner lines preceding the header
// row in the export.
const bannerRows = 4

// ReadRawFile loads the raw export at path. CSV input is decoded as
// ISO-8859-1 so stray 8-bit byte sequences never fail the read; .xlsx input
// is read from the first sheet with the same row geometry. The returned
// table starts at the header row.
func ReadRawFile(path string) (RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw file: %w", err)
	}
	return ReadRawBytes(data, filepath.Ext(path))
}

// ReadRawBytes parses raw export content already held in memory. The ext
// argument selects the format the way ReadRawFile does from the file name;
// anything other than ".xlsx" is treated as CSV.
func ReadRawBytes(data []byte, ext string) (RawTable, error) {
	if strings.EqualFold(ext, ".xlsx") {
		return readRawWorkbook(bytes.NewReader(data))
	}
	return readRawCSV(bytes.NewReader(data))
}

func readRawCSV(r io.Reader) (RawTable, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1 // the export is ragged; short rows are handled downstream
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read raw CSV: %w", err)
	}
	return stripBanner(rows)
}

func readRawWorkbook(r io.Reader) (RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets: %w", ErrSchemaMismatch)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return stripBanner(rows)
}

// stripBanner drops the banner rows so the table starts at the header row.
// A table too short to contain any header at all is a schema mismatch.
func stripBanner(rows [][]string) (RawTable, error) {
	if len(rows) <= bannerRows {
		return nil, fmt.Errorf("raw table has %d rows, need banner plus header: %w", len(rows), ErrSchemaMismatch)
	}
	return RawTable(rows[bannerRows:]), nil
}
