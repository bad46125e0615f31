package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rwyatt/fxjournal/config"
)

var rootCmd = &cobra.Command{
	Use:   "fxjournal",
	Short: "A personal forex trading journal with performance and risk analytics",
	Long: `fxjournal records forex trades and strategies and derives analytics from them.

It provides tools for:
  - Journaling trades with entry/exit, stop, target and notes
  - Performance metrics: win rate, profit factor, streaks, best/worst
  - Equity curve and per-pair performance series
  - Risk-based position sizing with policy checks
  - Strategy backtest tracking with verification at 100 backtests`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fxjournal.yaml)")
}

// loadConfig reads the configured (or default-path) config file, falling back
// to built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "./fxjournal.yaml"
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.LoadFromFile(path)
}
