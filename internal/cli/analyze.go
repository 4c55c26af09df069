package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"hedge-analyzer/internal/cache"
	"hedge-analyzer/internal/engine"
	"hedge-analyzer/internal/ingest"
	"hedge-analyzer/internal/logging"
	"hedge-analyzer/internal/models"
)

// analyzeResult is the JSON shape of a protective put analysis.
type analyzeResult struct {
	Symbol    string                     `json:"symbol"`
	Spot      float64                    `json:"spot"`
	Shares    int                        `json:"shares"`
	Strike    float64                    `json:"strike"`
	Premium   float64                    `json:"premium"`
	Duration  string                     `json:"duration"`
	Metrics   models.HedgeMetrics        `json:"metrics"`
	Curve     *models.ProtectivePutCurve `json:"curve"`
	FirstDate string                     `json:"first_date"`
	LastDate  string                     `json:"last_date"`
}

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a protective put hedge on one instrument",
		Long: `Analyze a protective put hedge: clean the uploaded price history,
take the latest close as spot, and compute the hedged versus unhedged
payoff over a price grid along with breakeven and maximum loss.`,
		Example: `  hedge analyze --csv RELIANCE-EQ.csv --shares 50 --strike 2500 --premium 25
  hedge analyze --csv HDFCBANK-EQ.csv --shares 100 --premium 31.20 --duration 2-Month`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			csvPath, _ := cmd.Flags().GetString("csv")
			shares, _ := cmd.Flags().GetInt("shares")
			strike, _ := cmd.Flags().GetFloat64("strike")
			premium, _ := cmd.Flags().GetFloat64("premium")
			duration, _ := cmd.Flags().GetString("duration")
			lowFrac, _ := cmd.Flags().GetFloat64("low")
			highFrac, _ := cmd.Flags().GetFloat64("high")
			points, _ := cmd.Flags().GetInt("points")

			if csvPath == "" {
				output.Error("Price history CSV is required. Use --csv flag.")
				return fmt.Errorf("csv required")
			}

			series, err := loadSeriesCached(app, csvPath)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}
			logger := logging.WithSymbol(app.Logger, series.Symbol)
			logger.Debug().Int("rows", series.Len()).Msg("Series loaded")

			spot := series.LatestClose()
			if strike == 0 {
				// Suggest an at-the-money strike rounded to the nearest 10.
				strike = math.Round(spot/10) * 10
			}

			curve, err := engine.ProtectivePutCurve(spot, shares, strike, premium, lowFrac, highFrac, points)
			if err != nil {
				return err
			}
			metrics := engine.HedgeMetricsFor(spot, strike, premium, shares)
			logging.LogAnalysis(logger, series.Symbol, spot, strike, premium, shares)

			if output.IsJSON() {
				return output.JSON(analyzeResult{
					Symbol:    series.Symbol,
					Spot:      spot,
					Shares:    shares,
					Strike:    strike,
					Premium:   premium,
					Duration:  duration,
					Metrics:   metrics,
					Curve:     curve,
					FirstDate: series.FirstDate().Format("2006-01-02"),
					LastDate:  series.LastDate().Format("2006-01-02"),
				})
			}

			cur := app.Config.UI.CurrencySymbol
			output.Bold("Protective Put - %s (%s)", series.Symbol, duration)
			output.Println()
			output.Printf("  Spot Price:     %s (close of %s)\n", FormatCurrency(cur, spot), series.LastDate().Format("02-Jan-2006"))
			output.Printf("  Shares:         %d\n", shares)
			output.Printf("  Strike (K):     %s\n", FormatCurrency(cur, strike))
			output.Printf("  Premium:        %s per share\n", FormatCurrency(cur, premium))
			output.Printf("  Premium Cost:   %s\n", FormatCurrency(cur, metrics.TotalPremiumCost))
			output.Println()

			RenderPayoffChart(output, curve.Prices,
				ChartSeries{Label: "Hedged", Values: curve.HedgedPL, Marker: '#'},
				ChartSeries{Label: "Unhedged", Values: curve.StockPL, Marker: '.'},
			)
			output.Println()

			output.Printf("  Breakeven: %s\n", FormatCurrency(cur, metrics.Breakeven))
			if metrics.MaxLoss >= 0 {
				output.Printf("  Max Loss:  %s\n", output.Red(FormatCurrency(cur, metrics.MaxLoss)))
			} else {
				output.Printf("  Min Profit: %s (strike plus premium above spot)\n", output.Green(FormatCurrency(cur, -metrics.MaxLoss)))
			}
			return nil
		},
	}

	cmd.Flags().String("csv", "", "price history CSV file (required)")
	cmd.Flags().Int("shares", 1, "number of shares held")
	cmd.Flags().Float64("strike", 0, "put strike price (default: spot rounded to 10)")
	cmd.Flags().Float64("premium", 0, "put premium per share")
	cmd.Flags().String("duration", string(models.OneMonth), "contract duration label")
	cmd.Flags().Float64("low", app.Config.Analysis.LowFrac, "grid lower bound as fraction of spot")
	cmd.Flags().Float64("high", app.Config.Analysis.HighFrac, "grid upper bound as fraction of spot")
	cmd.Flags().Int("points", app.Config.Analysis.GridPoints, "number of grid points")

	return cmd
}

// loadSeriesCached reads a CSV through the application series cache so
// repeated analyses of the same upload skip re-cleaning.
func loadSeriesCached(app *App, path string) (*models.PriceSeries, error) {
	key := cache.Key{Symbol: ingest.SymbolFromFilename(path)}
	return app.Cache.GetOrLoad(key, func(cache.Key) (*models.PriceSeries, error) {
		return ingest.LoadSeries(path)
	})
}
