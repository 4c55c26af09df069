package engine

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"hedge-analyzer/internal/models"
)

// Property: the long and short sides of the same put leg are exactly
// zero-sum at every grid point.
func TestProperty_PutLegsZeroSum(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("long + short put payoff is zero at every point", prop.ForAll(
		func(spot, strike, premium float64) bool {
			grid, err := PriceGrid(spot, 0.5, 1.5, 50)
			if err != nil {
				return false
			}
			long := SingleLegPayoff(grid, strike, models.Put, premium, true)
			short := SingleLegPayoff(grid, strike, models.Put, premium, false)
			for i := range grid {
				if long[i]+short[i] != 0 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 100000),
		gen.Float64Range(1, 100000),
		gen.Float64Range(0, 5000),
	))

	properties.TestingRun(t)
}

// Property: whenever the grid's lower bound sits at or below the
// strike, the hedged curve's value at that bound equals the negated
// loss cap.
func TestProperty_HedgedCurveFlattensAtMaxLoss(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("hedged P&L at grid minimum equals -MaxLoss", prop.ForAll(
		func(spot, premium float64, shares int) bool {
			strike := spot // at-the-money, lower bound is below strike
			curve, err := ProtectivePutCurve(spot, shares, strike, premium, 0.75, 1.25, 100)
			if err != nil {
				return false
			}
			wantFloor := -MaxLoss(spot, strike, premium, float64(shares))
			return math.Abs(curve.HedgedPL[0]-wantFloor) < 1e-6*math.Max(1, math.Abs(wantFloor))
		},
		gen.Float64Range(10, 50000),
		gen.Float64Range(0, 500),
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}

// Property: breakeven is monotonically increasing in premium for a
// fixed spot.
func TestProperty_BreakevenMonotonicInPremium(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("higher premium never lowers breakeven", prop.ForAll(
		func(spot, p1, p2 float64) bool {
			lo, hi := math.Min(p1, p2), math.Max(p1, p2)
			return Breakeven(spot, lo) <= Breakeven(spot, hi)
		},
		gen.Float64Range(1, 100000),
		gen.Float64Range(0, 5000),
		gen.Float64Range(0, 5000),
	))

	properties.TestingRun(t)
}

// valueSeriesGen generates a positive random-walk value history long
// enough for beta estimation.
func valueSeriesGen(minLen, maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, gen.Float64Range(-0.05, 0.05)).Map(func(moves []float64) []models.ValuePoint {
		if len(moves) < minLen {
			for len(moves) < minLen {
				moves = append(moves, 0.01)
			}
		}
		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		series := make([]models.ValuePoint, len(moves))
		value := 1000.0
		for i, m := range moves {
			value *= 1 + m
			series[i] = models.ValuePoint{Date: start.AddDate(0, 0, i), Value: value}
		}
		return series
	})
}

// Property: a series regressed against itself has beta 1 (unless its
// returns are perfectly flat, which yields the degenerate-index 0).
func TestProperty_BetaOfSelfIsOne(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("beta(x, x) == 1", prop.ForAll(
		func(series []models.ValuePoint) bool {
			beta, err := PortfolioBeta(series, series)
			if err != nil {
				return false
			}
			if beta == 0 {
				// Flat series carry no index signal.
				return true
			}
			return math.Abs(beta-1.0) < 1e-9
		},
		valueSeriesGen(5, 60),
	))

	properties.TestingRun(t)
}

// Property: no engine curve ever contains a non-finite value.
func TestProperty_CurvesAreFinite(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("protective put curves are finite everywhere", prop.ForAll(
		func(spot, strike, premium float64, shares int) bool {
			curve, err := ProtectivePutCurve(spot, shares, strike, premium, 0.75, 1.25, 100)
			if err != nil {
				return false
			}
			for i := range curve.Prices {
				if math.IsNaN(curve.StockPL[i]) || math.IsInf(curve.StockPL[i], 0) {
					return false
				}
				if math.IsNaN(curve.HedgedPL[i]) || math.IsInf(curve.HedgedPL[i], 0) {
					return false
				}
			}
			return true
		},
		gen.Float64Range(1, 100000),
		gen.Float64Range(1, 100000),
		gen.Float64Range(0, 5000),
		gen.IntRange(0, 100000),
	))

	properties.TestingRun(t)
}
