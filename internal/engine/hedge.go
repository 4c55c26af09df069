package engine

import (
	"hedge-analyzer/internal/models"
)

// Breakeven returns the underlying price at which a protective put
// position recovers its insurance cost: spot plus premium. This is the
// protective-put breakeven, not the breakeven of the bare option.
func Breakeven(spot, premium float64) float64 {
	return spot + premium
}

// MaxLoss returns the parametric loss cap of a protective put:
// (spot − strike + premium) · shares. The value is reported verbatim; a
// negative result means the position locks in a minimum profit (strike
// plus premium above spot) and must not be clamped.
func MaxLoss(spot, strike, premium, shares float64) float64 {
	return (spot - strike + premium) * shares
}

// HedgeMetricsFor bundles the derived metrics of a protective put on a
// single instrument.
func HedgeMetricsFor(spot, strike, premium float64, shares int) models.HedgeMetrics {
	n := float64(shares)
	return models.HedgeMetrics{
		Breakeven:        Breakeven(spot, premium),
		MaxLoss:          MaxLoss(spot, strike, premium, n),
		TotalPremiumCost: premium * n,
	}
}

// HedgeUnits sizes an index put hedge: beta · portfolioValue /
// indexPrice. A non-positive index price has no defined hedge ratio and
// yields 0 so callers never see a non-finite number.
func HedgeUnits(beta, portfolioValue, indexPrice float64) float64 {
	if indexPrice <= 0 {
		return 0
	}
	return beta * portfolioValue / indexPrice
}

// CrossHedgeMetricsFor derives beta from the portfolio and index value
// histories and bundles the sizing and cost metrics of an index put
// hedge over the whole portfolio.
func CrossHedgeMetricsFor(portfolio, index []models.ValuePoint, portfolioValue, indexSpot, strike, premium float64) (models.CrossHedgeMetrics, error) {
	beta, err := PortfolioBeta(portfolio, index)
	if err != nil {
		return models.CrossHedgeMetrics{}, err
	}

	units := HedgeUnits(beta, portfolioValue, indexSpot)
	return models.CrossHedgeMetrics{
		HedgeMetrics: models.HedgeMetrics{
			Breakeven:        Breakeven(indexSpot, premium),
			MaxLoss:          MaxLoss(indexSpot, strike, premium, units),
			TotalPremiumCost: premium * units,
		},
		Beta:       beta,
		HedgeUnits: units,
	}, nil
}
