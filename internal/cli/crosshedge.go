package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hedge-analyzer/internal/engine"
	"hedge-analyzer/internal/ingest"
	"hedge-analyzer/internal/logging"
	"hedge-analyzer/internal/models"
	"hedge-analyzer/internal/portfolio"
)

// crossHedgeResult is the JSON shape of a cross-hedge analysis.
type crossHedgeResult struct {
	IndexSymbol    string                      `json:"index_symbol"`
	IndexSpot      float64                     `json:"index_spot"`
	PortfolioValue float64                     `json:"portfolio_value"`
	Instruments    []portfolio.InstrumentValue `json:"instruments"`
	Failed         map[string]string           `json:"failed,omitempty"`
	Strike         float64                     `json:"strike"`
	Premium        float64                     `json:"premium"`
	Metrics        models.CrossHedgeMetrics    `json:"metrics"`
	Curve          *models.PayoffCurve         `json:"curve"`
}

func newCrossHedgeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crosshedge",
		Short: "Size an index put hedge for a multi-stock portfolio",
		Long: `Size a cross hedge: estimate the portfolio's beta against an index
from aligned return histories, derive how many index put units cover the
portfolio, and compute the hedged payoff over an index price grid.

One constituent failing to import does not block the rest; failures are
reported per instrument.`,
		Example: `  hedge crosshedge --holding RELIANCE-EQ.csv:50 --holding HDFCBANK-EQ.csv:100 \
      --index NIFTY50.csv --strike 19500 --premium 120`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			holdingSpecs, _ := cmd.Flags().GetStringSlice("holding")
			indexPath, _ := cmd.Flags().GetString("index")
			strike, _ := cmd.Flags().GetFloat64("strike")
			premium, _ := cmd.Flags().GetFloat64("premium")
			lowFrac, _ := cmd.Flags().GetFloat64("low")
			highFrac, _ := cmd.Flags().GetFloat64("high")
			points, _ := cmd.Flags().GetInt("points")

			if len(holdingSpecs) == 0 || indexPath == "" {
				output.Error("At least one --holding and an --index CSV are required.")
				return fmt.Errorf("holding and index required")
			}

			specs, err := parseHoldingSpecs(holdingSpecs)
			if err != nil {
				return err
			}

			results := ingest.LoadPortfolio(context.Background(), specs)
			holdings := make([]portfolio.Holding, 0, len(results))
			failed := make(map[string]string)
			for _, r := range results {
				if !r.OK() {
					failed[r.Position.Symbol] = r.Err.Error()
					output.Warning("Skipping %s: %v", r.Position.Symbol, r.Err)
					continue
				}
				holdings = append(holdings, portfolio.Holding{Position: r.Position, Series: r.Series})
			}
			if len(holdings) == 0 {
				output.Error("No constituent imported successfully.")
				return fmt.Errorf("no usable holdings")
			}

			indexSeries, err := loadSeriesCached(app, indexPath)
			if err != nil {
				output.Error("Index import failed: %v", err)
				return err
			}

			summary := portfolio.Valuation(holdings)
			history := portfolio.ValueHistory(holdings)
			indexHistory := indexSeries.ValueSeries(1)
			indexSpot := indexSeries.LatestClose()

			metrics, err := engine.CrossHedgeMetricsFor(history, indexHistory, summary.TotalValue, indexSpot, strike, premium)
			if err != nil {
				output.Error("Beta estimation failed: %v", err)
				return err
			}

			grid, err := engine.PriceGrid(indexSpot, lowFrac, highFrac, points)
			if err != nil {
				return err
			}
			curve, err := engine.CrossHedgeCurve(grid, indexSpot, summary.TotalValue, metrics.Beta, metrics.HedgeUnits, strike, premium)
			if err != nil {
				return err
			}

			logging.LogCrossHedge(app.Logger, indexSeries.Symbol, metrics.Beta, metrics.HedgeUnits)

			if output.IsJSON() {
				return output.JSON(crossHedgeResult{
					IndexSymbol:    indexSeries.Symbol,
					IndexSpot:      indexSpot,
					PortfolioValue: summary.TotalValue,
					Instruments:    summary.Instruments,
					Failed:         failed,
					Strike:         strike,
					Premium:        premium,
					Metrics:        metrics,
					Curve:          curve,
				})
			}

			cur := app.Config.UI.CurrencySymbol
			output.Bold("Cross Hedge - %s puts over %d instruments", indexSeries.Symbol, len(holdings))
			output.Println()
			for _, inst := range summary.Instruments {
				output.Printf("  %-12s %6d shares @ %-12s = %s\n",
					inst.Symbol, inst.Shares, FormatCurrency(cur, inst.LatestClose), FormatCurrency(cur, inst.Value))
			}
			output.Printf("  Portfolio Value: %s\n", FormatCurrency(cur, summary.TotalValue))
			output.Println()
			output.Printf("  Index Spot:  %s\n", FormatCurrency(cur, indexSpot))
			output.Printf("  Beta:        %.3f\n", metrics.Beta)
			output.Printf("  Hedge Units: %.2f\n", metrics.HedgeUnits)
			output.Printf("  Premium:     %s per unit (%s total)\n",
				FormatCurrency(cur, premium), FormatCurrency(cur, metrics.TotalPremiumCost))
			output.Println()

			RenderPayoffChart(output, curve.Prices,
				ChartSeries{Label: "Hedged portfolio", Values: curve.PnL, Marker: '#'},
			)
			return nil
		},
	}

	cmd.Flags().StringSlice("holding", nil, "portfolio constituent as PATH:SHARES (repeatable)")
	cmd.Flags().String("index", "", "index price history CSV")
	cmd.Flags().Float64("strike", 0, "index put strike")
	cmd.Flags().Float64("premium", 0, "index put premium per unit")
	cmd.Flags().Float64("low", app.Config.Analysis.CrossLowFrac, "grid lower bound as fraction of index spot")
	cmd.Flags().Float64("high", app.Config.Analysis.CrossHighFrac, "grid upper bound as fraction of index spot")
	cmd.Flags().Int("points", app.Config.Analysis.GridPoints, "number of grid points")

	return cmd
}

// parseHoldingSpecs parses PATH:SHARES flags.
func parseHoldingSpecs(raw []string) ([]ingest.FileSpec, error) {
	specs := make([]ingest.FileSpec, 0, len(raw))
	for _, item := range raw {
		i := strings.LastIndex(item, ":")
		if i <= 0 || i == len(item)-1 {
			return nil, fmt.Errorf("invalid holding %q, expected PATH:SHARES", item)
		}
		shares, err := strconv.Atoi(item[i+1:])
		if err != nil || shares < 0 {
			return nil, fmt.Errorf("invalid share count in %q", item)
		}
		specs = append(specs, ingest.FileSpec{Path: item[:i], Shares: shares})
	}
	return specs, nil
}
