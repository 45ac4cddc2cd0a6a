package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andleep/Trend-andleep8/config"
)

var rootCmd = &cobra.Command{
	Use:   "trendbot",
	Short: "A similarity-driven crypto backtesting and parameter research tool",
	Long: `Trendbot is a backtesting engine for a similarity-scored trend strategy.

It provides tools for:
  - Backtesting the Lorentzian-similarity strategy against historical candles
  - Randomized parameter search with reproducible seeds
  - Kelly-blended position sizing
  - Journaling trade ledgers and equity curves to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML or JSON config file")
}

// loadConfig resolves the effective configuration: defaults, optionally
// overridden by a config file named with --config.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
