// Package models provides domain models for the hedge analysis application.
package models

import (
	"time"
)

// RawRow is one row of tabular input as delivered by an upload parser or
// market-data feed, keyed by the raw (untrimmed) column name.
type RawRow map[string]string

// PricePoint represents one cleaned observation of a price series.
type PricePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	VWAP   float64
	Volume int64
}

// PriceSeries is a canonical cleaned price history: strictly increasing
// by date, no duplicate dates, no missing numeric fields. It is produced
// only by the normalize package and must not be mutated after that.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// Len returns the number of observations in the series.
func (s *PriceSeries) Len() int {
	return len(s.Points)
}

// Latest returns the most recent observation.
func (s *PriceSeries) Latest() PricePoint {
	return s.Points[len(s.Points)-1]
}

// LatestClose returns the most recent closing price, the spot price used
// to parameterize payoff analysis.
func (s *PriceSeries) LatestClose() float64 {
	return s.Latest().Close
}

// Closes returns the closing prices in date order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// ValueSeries returns the date-stamped market value of holding the given
// number of shares of this instrument.
func (s *PriceSeries) ValueSeries(shares int) []ValuePoint {
	values := make([]ValuePoint, len(s.Points))
	for i, p := range s.Points {
		values[i] = ValuePoint{Date: p.Date, Value: p.Close * float64(shares)}
	}
	return values
}

// FirstDate returns the date of the earliest observation.
func (s *PriceSeries) FirstDate() time.Time {
	return s.Points[0].Date
}

// LastDate returns the date of the latest observation.
func (s *PriceSeries) LastDate() time.Time {
	return s.Latest().Date
}

// ValuePoint is one date-stamped scalar value, used for portfolio value
// and index price histories fed into beta estimation.
type ValuePoint struct {
	Date  time.Time
	Value float64
}

// Position represents a holding of a single instrument.
type Position struct {
	Symbol string
	Shares int
}
