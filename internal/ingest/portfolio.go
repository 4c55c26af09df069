package ingest

import (
	"context"

	"hedge-analyzer/internal/models"
	"hedge-analyzer/internal/normalize"
)

// FileSpec names one portfolio constituent: a CSV file and the number of
// shares held.
type FileSpec struct {
	Path   string
	Shares int
}

// InstrumentResult is the outcome of ingesting one constituent. Failures
// are carried per instrument so one bad file never blocks the rest of
// the portfolio.
type InstrumentResult struct {
	Position models.Position
	Series   *models.PriceSeries
	Err      error
}

// OK reports whether the instrument was ingested successfully.
func (r InstrumentResult) OK() bool {
	return r.Err == nil
}

// LoadPortfolio ingests each constituent independently. The returned
// slice preserves the input order and always has one entry per spec.
func LoadPortfolio(ctx context.Context, specs []FileSpec) []InstrumentResult {
	results := make([]InstrumentResult, len(specs))
	for i, spec := range specs {
		symbol := SymbolFromFilename(spec.Path)
		results[i] = InstrumentResult{
			Position: models.Position{Symbol: symbol, Shares: spec.Shares},
		}

		src := NewFileSource(spec.Path)
		rows, err := src.Rows(ctx)
		if err != nil {
			results[i].Err = err
			continue
		}
		series, err := normalize.Clean(symbol, rows)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Series = series
	}
	return results
}
