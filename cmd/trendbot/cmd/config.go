package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Andleep/Trend-andleep8/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage configuration files for backtest and optimizer runs.

Examples:
  trendbot config init --output trendbot.yaml
  trendbot config validate --file trendbot.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	RunE:  runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "trendbot.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  trendbot backtest --config %s --candles data/candles.csv\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("Configuration valid: %s\n", configValidatePath)
	fmt.Printf("  Account: %s ($%.2f)\n", cfg.Account.Symbol, cfg.Account.Balance)
	fmt.Printf("  Strategy: score>=%.5f adx>%.0f tp=%.3f sl=%.3f lookback=%d\n",
		cfg.Strategy.ScoreThreshold, cfg.Strategy.ADXThreshold,
		cfg.Strategy.TakeProfitPct, cfg.Strategy.StopLossPct, cfg.Strategy.Lookback)
	fmt.Printf("  Optimizer: %d iterations, %d workers\n", cfg.Optimizer.Iterations, cfg.Optimizer.Workers)
	fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	return nil
}
