package portfolio

import (
	"sort"
	"testing"
	"time"

	"hedge-analyzer/internal/models"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func series(symbol string, closes map[int]float64) *models.PriceSeries {
	s := &models.PriceSeries{Symbol: symbol}
	days := make([]int, 0, len(closes))
	for d := range closes {
		days = append(days, d)
	}
	sort.Ints(days)
	for _, d := range days {
		s.Points = append(s.Points, models.PricePoint{Date: day(d), Close: closes[d]})
	}
	return s
}

func TestValuation(t *testing.T) {
	holdings := []Holding{
		{Position: models.Position{Symbol: "RELIANCE", Shares: 50}, Series: series("RELIANCE", map[int]float64{0: 2400, 1: 2500})},
		{Position: models.Position{Symbol: "HDFCBANK", Shares: 100}, Series: series("HDFCBANK", map[int]float64{0: 1500, 1: 1520})},
	}

	summary := Valuation(holdings)
	if len(summary.Instruments) != 2 {
		t.Fatalf("got %d instruments", len(summary.Instruments))
	}
	want := 50*2500.0 + 100*1520.0
	if summary.TotalValue != want {
		t.Errorf("total = %v, want %v", summary.TotalValue, want)
	}
	if summary.Instruments[0].LatestClose != 2500 {
		t.Errorf("latest close = %v", summary.Instruments[0].LatestClose)
	}
}

func TestValuationSkipsEmptyHoldings(t *testing.T) {
	holdings := []Holding{
		{Position: models.Position{Symbol: "GHOST", Shares: 10}, Series: nil},
		{Position: models.Position{Symbol: "RELIANCE", Shares: 1}, Series: series("RELIANCE", map[int]float64{0: 2500})},
	}
	summary := Valuation(holdings)
	if len(summary.Instruments) != 1 {
		t.Fatalf("got %d instruments, want 1", len(summary.Instruments))
	}
	if summary.TotalValue != 2500 {
		t.Errorf("total = %v", summary.TotalValue)
	}
}

func TestValueHistoryForwardFills(t *testing.T) {
	holdings := []Holding{
		// Trades every day.
		{Position: models.Position{Symbol: "A", Shares: 1}, Series: series("A", map[int]float64{0: 10, 1: 11, 2: 12})},
		// Missing day 1; its close forward-fills.
		{Position: models.Position{Symbol: "B", Shares: 2}, Series: series("B", map[int]float64{0: 100, 2: 104})},
	}

	history := ValueHistory(holdings)
	if len(history) != 3 {
		t.Fatalf("got %d points, want 3", len(history))
	}
	want := []float64{10 + 200, 11 + 200, 12 + 208}
	for i, w := range want {
		if history[i].Value != w {
			t.Errorf("history[%d] = %v, want %v", i, history[i].Value, w)
		}
	}
}

func TestValueHistorySkipsBeforeAllStarted(t *testing.T) {
	holdings := []Holding{
		{Position: models.Position{Symbol: "A", Shares: 1}, Series: series("A", map[int]float64{0: 10, 1: 11, 2: 12})},
		// Starts trading on day 1.
		{Position: models.Position{Symbol: "B", Shares: 1}, Series: series("B", map[int]float64{1: 100, 2: 101})},
	}

	history := ValueHistory(holdings)
	if len(history) != 2 {
		t.Fatalf("got %d points, want 2", len(history))
	}
	if !history[0].Date.Equal(day(1)) {
		t.Errorf("history starts at %v, want day 1", history[0].Date)
	}
	if history[0].Value != 111 {
		t.Errorf("history[0] = %v, want 111", history[0].Value)
	}
}

func TestValueHistoryEmpty(t *testing.T) {
	if got := ValueHistory(nil); got != nil {
		t.Errorf("expected nil history, got %v", got)
	}
}
