package models

// OptionKind distinguishes call and put options.
type OptionKind string

const (
	Call OptionKind = "CALL"
	Put  OptionKind = "PUT"
)

// ContractDuration labels the tenor of an option contract. It is
// informational only and never enters a calculation; payoff is evaluated
// at expiry from intrinsic value.
type ContractDuration string

const (
	OneMonth ContractDuration = "1-Month"
	TwoMonth ContractDuration = "2-Month"
)

// OptionParameters describes a single option leg as supplied by the
// caller. The engine never mutates these.
type OptionParameters struct {
	Strike   float64
	Premium  float64
	Duration ContractDuration
	Long     bool
	Kind     OptionKind
}

// PayoffCurve is profit/loss over a monotonically increasing price grid.
// Prices and PnL are parallel slices of equal length, produced fresh per
// analysis call.
type PayoffCurve struct {
	Prices []float64
	PnL    []float64
}

// ProtectivePutCurve carries the unhedged and hedged payoff series of a
// protective put over a shared price grid.
type ProtectivePutCurve struct {
	Prices   []float64
	StockPL  []float64
	HedgedPL []float64
}

// HedgeMetrics summarizes a protective put position.
type HedgeMetrics struct {
	Breakeven        float64
	MaxLoss          float64
	TotalPremiumCost float64
}

// CrossHedgeMetrics extends HedgeMetrics with the beta-derived sizing of
// an index put hedging a correlated portfolio.
type CrossHedgeMetrics struct {
	HedgeMetrics
	Beta       float64
	HedgeUnits float64
}
