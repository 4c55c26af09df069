package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hedge-analyzer/internal/analysis/indicators"
	"hedge-analyzer/internal/ingest"
	"hedge-analyzer/internal/logging"
	"hedge-analyzer/internal/normalize"
)

// addDataCommands adds data inspection commands.
func addDataCommands(rootCmd *cobra.Command, app *App) {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Price data commands",
		Long:  "Commands for inspecting and cleaning uploaded price data.",
	}
	dataCmd.AddCommand(newDataInspectCmd(app))
	rootCmd.AddCommand(dataCmd)
}

// inspectResult is the JSON shape of a data inspection.
type inspectResult struct {
	Symbol      string             `json:"symbol"`
	RawRows     int                `json:"raw_rows"`
	KeptRows    int                `json:"kept_rows"`
	DroppedRows int                `json:"dropped_rows"`
	FirstDate   string             `json:"first_date"`
	LastDate    string             `json:"last_date"`
	LatestClose float64            `json:"latest_close"`
	Indicators  map[string]float64 `json:"indicators,omitempty"`
}

func newDataInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Clean a price CSV and report what survived",
		Long: `Clean a price CSV and report how many rows were kept versus dropped,
the date range, and the latest close. With --indicators, also report the
latest moving-average and RSI values.`,
		Example: `  hedge data inspect --csv RELIANCE-EQ.csv
  hedge data inspect --csv INFOSYS-EQ.csv --indicators`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			csvPath, _ := cmd.Flags().GetString("csv")
			withIndicators, _ := cmd.Flags().GetBool("indicators")

			if csvPath == "" {
				output.Error("Price history CSV is required. Use --csv flag.")
				return fmt.Errorf("csv required")
			}

			f, err := os.Open(csvPath)
			if err != nil {
				output.Error("Cannot open %s: %v", csvPath, err)
				return err
			}
			defer f.Close()

			rows, err := ingest.ReadRows(f)
			if err != nil {
				output.Error("Cannot parse %s: %v", csvPath, err)
				return err
			}

			symbol := ingest.SymbolFromFilename(csvPath)
			series, err := normalize.Clean(symbol, rows)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}
			logging.LogImport(logging.WithSymbol(app.Logger, symbol), symbol, len(rows), series.Len())

			result := inspectResult{
				Symbol:      series.Symbol,
				RawRows:     len(rows),
				KeptRows:    series.Len(),
				DroppedRows: len(rows) - series.Len(),
				FirstDate:   series.FirstDate().Format("2006-01-02"),
				LastDate:    series.LastDate().Format("2006-01-02"),
				LatestClose: series.LatestClose(),
			}

			if withIndicators {
				values, err := indicators.DefaultEngine().CalculateAll(context.Background(), series.Points)
				if err == nil {
					result.Indicators = make(map[string]float64, len(values))
					for name, vs := range values {
						result.Indicators[name] = vs[len(vs)-1]
					}
				}
			}

			if output.IsJSON() {
				return output.JSON(result)
			}

			cur := app.Config.UI.CurrencySymbol
			output.Bold("Data Inspection - %s", result.Symbol)
			output.Println()
			output.Printf("  Rows:         %d kept, %d dropped of %d\n", result.KeptRows, result.DroppedRows, result.RawRows)
			output.Printf("  Date Range:   %s to %s\n", result.FirstDate, result.LastDate)
			output.Printf("  Latest Close: %s\n", FormatCurrency(cur, result.LatestClose))
			if len(result.Indicators) > 0 {
				output.Println()
				output.Info("  Latest indicator values:")
				for name, v := range result.Indicators {
					output.Printf("    %-8s %.2f\n", name, v)
				}
			}
			if result.DroppedRows > 0 {
				output.Warning("  %d rows were dropped during cleaning.", result.DroppedRows)
			}
			return nil
		},
	}

	cmd.Flags().String("csv", "", "price history CSV file (required)")
	cmd.Flags().Bool("indicators", false, "include latest indicator values")

	return cmd
}
