// Package normalize converts raw tabular price data into canonical,
// validated price series. It is the only producer of models.PriceSeries.
package normalize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "hedge-analyzer/internal/errors"
	"hedge-analyzer/internal/models"
)

// DateFormats lists the accepted date layouts in priority order. The
// first successful parse wins.
var DateFormats = []string{
	"02-Jan-06",
	"02-Jan-2006",
}

// Canonical column names recognized after header normalization.
const (
	ColDate   = "DATE"
	ColOpen   = "OPEN"
	ColHigh   = "HIGH"
	ColLow    = "LOW"
	ColClose  = "CLOSE"
	ColVWAP   = "VWAP"
	ColVolume = "VOLUME"
)

// requiredColumns must be present after normalization for an import to
// proceed at all.
var requiredColumns = []string{ColDate, ColClose}

// NormalizeHeaders strips surrounding whitespace from each column name
// and verifies the required columns are present. The returned slice is
// the trimmed headers in their original order.
func NormalizeHeaders(source string, raw []string) ([]string, error) {
	trimmed := make([]string, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, h := range raw {
		trimmed[i] = strings.TrimSpace(h)
		seen[strings.ToUpper(trimmed[i])] = true
	}

	var missing []string
	for _, req := range requiredColumns {
		if !seen[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewSchemaError(source, missing)
	}
	return trimmed, nil
}

// ParseDate parses a date cell against DateFormats in order.
func ParseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range DateFormats {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewDateParseError(text, DateFormats)
}

// ParseNumeric parses a numeric cell, stripping comma grouping
// separators first. On failure it returns the missing marker rather
// than an error: a bad cell drops its row, it does not abort the import.
func ParseNumeric(text string) float64 {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if text == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsMissing reports whether v is the missing marker from ParseNumeric.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// columnMap resolves raw row keys to canonical column names.
func columnMap(row models.RawRow) map[string]string {
	m := make(map[string]string, len(row))
	for key := range row {
		canon := strings.ToUpper(strings.TrimSpace(key))
		m[canon] = key
	}
	return m
}

// Clean converts raw rows into a canonical PriceSeries. Rows with
// unparsable dates or missing numeric cells are dropped; the import
// fails only when nothing survives. The result is sorted ascending by
// date with duplicate dates collapsed to the last occurrence.
func Clean(symbol string, rows []models.RawRow) (*models.PriceSeries, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewEmptySeriesError(symbol, 0, "")
	}

	cols := columnMap(rows[0])
	headers := make([]string, 0, len(rows[0]))
	for key := range rows[0] {
		headers = append(headers, key)
	}
	if _, err := NormalizeHeaders(symbol, headers); err != nil {
		return nil, err
	}

	// Numeric columns actually present; a missing cell in any of them
	// drops the row, mirroring the drop-bad-rows feed policy.
	numericCols := []string{ColOpen, ColHigh, ColLow, ColClose, ColVWAP, ColVolume}

	points := make([]models.PricePoint, 0, len(rows))
	var lastDrop string
	for _, row := range rows {
		date, err := ParseDate(row[cols[ColDate]])
		if err != nil {
			lastDrop = err.Error()
			continue
		}

		p := models.PricePoint{Date: date}
		ok := true
		for _, col := range numericCols {
			rawKey, present := cols[col]
			if !present {
				continue
			}
			v := ParseNumeric(row[rawKey])
			if IsMissing(v) {
				lastDrop = fmt.Sprintf("row %s: bad %s cell %q", date.Format("2006-01-02"), col, row[rawKey])
				ok = false
				break
			}
			switch col {
			case ColOpen:
				p.Open = v
			case ColHigh:
				p.High = v
			case ColLow:
				p.Low = v
			case ColClose:
				p.Close = v
			case ColVWAP:
				p.VWAP = v
			case ColVolume:
				p.Volume = int64(v)
			}
		}
		if !ok {
			continue
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, apperrors.NewEmptySeriesError(symbol, len(rows), lastDrop)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	// Collapse duplicate dates, keeping the last occurrence.
	deduped := points[:0]
	for i, p := range points {
		if i > 0 && p.Date.Equal(deduped[len(deduped)-1].Date) {
			deduped[len(deduped)-1] = p
			continue
		}
		deduped = append(deduped, p)
	}

	return &models.PriceSeries{Symbol: symbol, Points: deduped}, nil
}
