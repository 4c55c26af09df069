// Package cli provides the command-line interface for the hedge
// analysis application.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hedge-analyzer/internal/cache"
	"hedge-analyzer/internal/config"
	"hedge-analyzer/internal/logging"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Cache  *cache.SeriesCache
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Cache:  cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval),
	}

	rootCmd := &cobra.Command{
		Use:   "hedge",
		Short: "Protective put hedge analysis CLI",
		Long: `Hedge Analyzer computes protective put payoffs for a portfolio of stocks.

Feed it historical price CSVs, define share counts, and it cleans the
price series, computes the hedged versus unhedged payoff over a price
grid, and reports breakeven, maximum loss, and cross-hedge sizing.

Use 'hedge help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/hedge-analyzer)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newCrossHedgeCmd(app))
	addDataCommands(rootCmd, app)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			output.Printf("hedge version %s\n", Version)
		},
	}
}
