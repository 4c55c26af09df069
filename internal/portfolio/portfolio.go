// Package portfolio values a small portfolio of instruments and builds
// the value history fed into cross-hedge beta estimation.
package portfolio

import (
	"sort"
	"time"

	"hedge-analyzer/internal/models"
)

// Holding pairs a position with its cleaned price series.
type Holding struct {
	Position models.Position
	Series   *models.PriceSeries
}

// InstrumentValue is the marked value of one holding at its latest
// close.
type InstrumentValue struct {
	Symbol      string
	Shares      int
	LatestClose float64
	Value       float64
}

// Summary is the marked value of the whole portfolio.
type Summary struct {
	Instruments []InstrumentValue
	TotalValue  float64
}

// Valuation marks each holding at its latest close and totals the
// portfolio.
func Valuation(holdings []Holding) Summary {
	summary := Summary{Instruments: make([]InstrumentValue, 0, len(holdings))}
	for _, h := range holdings {
		if h.Series == nil || h.Series.Len() == 0 {
			continue
		}
		latest := h.Series.LatestClose()
		value := latest * float64(h.Position.Shares)
		summary.Instruments = append(summary.Instruments, InstrumentValue{
			Symbol:      h.Position.Symbol,
			Shares:      h.Position.Shares,
			LatestClose: latest,
			Value:       value,
		})
		summary.TotalValue += value
	}
	return summary
}

// ValueHistory builds the date-stamped total value of the portfolio over
// the union of constituent dates. Constituents missing a date carry
// their last observed close forward; dates before every constituent has
// started trading are skipped, so the history never jumps as
// instruments appear.
func ValueHistory(holdings []Holding) []models.ValuePoint {
	type track struct {
		values map[time.Time]float64
		shares float64
		last   float64
		seen   bool
	}

	tracks := make([]*track, 0, len(holdings))
	dateSet := make(map[time.Time]bool)
	for _, h := range holdings {
		if h.Series == nil || h.Series.Len() == 0 {
			continue
		}
		t := &track{
			values: make(map[time.Time]float64, h.Series.Len()),
			shares: float64(h.Position.Shares),
		}
		for _, p := range h.Series.Points {
			t.values[p.Date] = p.Close
			dateSet[p.Date] = true
		}
		tracks = append(tracks, t)
	}
	if len(tracks) == 0 {
		return nil
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var history []models.ValuePoint
	for _, d := range dates {
		allSeen := true
		var total float64
		for _, t := range tracks {
			if v, ok := t.values[d]; ok {
				t.last, t.seen = v, true
			}
			if !t.seen {
				allSeen = false
			}
			total += t.last * t.shares
		}
		if !allSeen {
			continue
		}
		history = append(history, models.ValuePoint{Date: d, Value: total})
	}
	return history
}
