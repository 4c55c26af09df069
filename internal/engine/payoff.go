// Package engine provides pure payoff and hedge-sizing calculations.
// Every function is stateless and deterministic: identical inputs give
// bit-identical outputs, and no function returns NaN or an infinity.
package engine

import (
	apperrors "hedge-analyzer/internal/errors"
	"hedge-analyzer/internal/models"
)

// SingleLegPayoff computes the expiry payoff of one option leg at each
// grid price. For a put the intrinsic value is max(strike−price, 0); for
// a call it is max(price−strike, 0). A long leg pays intrinsic−premium,
// a short leg premium−intrinsic.
func SingleLegPayoff(grid []float64, strike float64, kind models.OptionKind, premium float64, long bool) []float64 {
	result := make([]float64, len(grid))
	for i, price := range grid {
		result[i] = legPayoffAt(price, strike, kind, premium, long)
	}
	return result
}

// legPayoffAt is the scalar payoff primitive behind every curve.
func legPayoffAt(price, strike float64, kind models.OptionKind, premium float64, long bool) float64 {
	var intrinsic float64
	switch kind {
	case models.Put:
		intrinsic = max(strike-price, 0)
	case models.Call:
		intrinsic = max(price-strike, 0)
	}
	if long {
		return intrinsic - premium
	}
	return premium - intrinsic
}

// OptionCurve evaluates one option leg described by params over a
// price grid.
func OptionCurve(grid []float64, params models.OptionParameters) *models.PayoffCurve {
	return &models.PayoffCurve{
		Prices: grid,
		PnL:    SingleLegPayoff(grid, params.Strike, params.Kind, params.Premium, params.Long),
	}
}

// ProtectivePutCurve computes the unhedged and hedged payoff of holding
// shares of stock plus one long put per share, over an evenly spaced
// grid spanning [spot·lowFrac, spot·highFrac].
func ProtectivePutCurve(spot float64, shares int, strike, premium, lowFrac, highFrac float64, points int) (*models.ProtectivePutCurve, error) {
	grid, err := PriceGrid(spot, lowFrac, highFrac, points)
	if err != nil {
		return nil, err
	}

	n := float64(shares)
	stockPL := make([]float64, len(grid))
	hedgedPL := make([]float64, len(grid))
	for i, price := range grid {
		stockPL[i] = (price - spot) * n
		hedgedPL[i] = stockPL[i] + legPayoffAt(price, strike, models.Put, premium, true)*n
	}

	return &models.ProtectivePutCurve{
		Prices:   grid,
		StockPL:  stockPL,
		HedgedPL: hedgedPL,
	}, nil
}

// CrossHedgeCurve computes the hedged payoff of a portfolio whose index
// exposure is beta, protected by long index puts sized at units. The
// portfolio is assumed to move beta-for-one with the index.
func CrossHedgeCurve(indexGrid []float64, indexSpot, portfolioValue, beta, units, strike, premium float64) (*models.PayoffCurve, error) {
	if indexSpot <= 0 {
		return nil, &apperrors.InvalidRangeError{Spot: indexSpot, Reason: "non-positive index spot"}
	}

	pnl := make([]float64, len(indexGrid))
	for i, price := range indexGrid {
		portfolioChange := (price/indexSpot - 1) * portfolioValue * beta
		pnl[i] = portfolioChange + legPayoffAt(price, strike, models.Put, premium, true)*units
	}

	return &models.PayoffCurve{Prices: indexGrid, PnL: pnl}, nil
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
