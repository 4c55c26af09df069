// Package ingest reads raw price data into the shape the normalizer
// expects. It preserves raw header text untouched; all cleaning happens
// in the normalize package.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hedge-analyzer/internal/models"
	"hedge-analyzer/internal/normalize"
)

// ReadRows reads CSV data into raw rows keyed by the file's own header
// text, whitespace and all.
func ReadRows(r io.Reader) ([]models.RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = false
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		row := make(models.RawRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SymbolFromFilename derives the instrument symbol from an upload file
// name: "RELIANCE-EQ.csv" becomes "RELIANCE".
func SymbolFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.Index(base, "-"); i > 0 {
		base = base[:i]
	}
	return strings.ToUpper(base)
}

// LoadSeries reads and cleans one CSV file into a canonical series.
func LoadSeries(path string) (*models.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return normalize.Clean(SymbolFromFilename(path), rows)
}
