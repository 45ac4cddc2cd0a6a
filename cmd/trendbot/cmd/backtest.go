package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andleep/Trend-andleep8/backtest"
	"github.com/Andleep/Trend-andleep8/config"
	"github.com/Andleep/Trend-andleep8/journal"
	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/sim"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a single backtest over historical candle data",
	Long: `Backtest replays a CSV of historical candles through the similarity
strategy with a fixed parameter set and prints the resulting performance
report.

Example:
  trendbot backtest --candles data/ethusdt_1h.csv --symbol ETHUSDT`,
	RunE: runBacktest,
}

var (
	btCandlesPath string
	btSymbol      string
	btBalance     float64
	btJournalType string
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btCandlesPath, "candles", "d", "", "path to candle CSV (time,open,high,low,close,volume) (required)")
	backtestCmd.Flags().StringVarP(&btSymbol, "symbol", "s", "", "instrument symbol (overrides config)")
	backtestCmd.Flags().Float64VarP(&btBalance, "balance", "b", 0, "starting balance (overrides config)")
	backtestCmd.Flags().StringVarP(&btJournalType, "journal", "j", "", "journal backend: csv, sqlite or none (overrides config)")

	backtestCmd.MarkFlagRequired("candles")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if btSymbol != "" {
		cfg.Account.Symbol = btSymbol
	}
	if btBalance > 0 {
		cfg.Account.Balance = btBalance
	}
	if btJournalType != "" {
		cfg.Journal.Type = btJournalType
	}

	bars, err := market.LoadCSV(btCandlesPath)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	res := backtest.Simulate(bars, cfg.Account.Symbol, params)
	backtest.PrintResult(os.Stdout, cfg.Account.Symbol, params, res)

	return persistResult(cfg, bars, params, res)
}

// persistResult writes the run to the configured journal backend, if any.
func persistResult(cfg *config.Config, bars []market.Bar, params sim.Params, res backtest.Result) error {
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	runID, err := journal.WriteResult(j, cfg.Account.Symbol, bars, params, res)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	fmt.Printf("\nRun journaled: %s\n", runID)
	return nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "", "none":
		return nil, nil
	case "csv":
		j, err := journal.NewCSV(cfg.Journal.RunsFile, cfg.Journal.LedgerFile, cfg.Journal.EquityFile)
		if err != nil {
			return nil, fmt.Errorf("open csv journal: %w", err)
		}
		return j, nil
	case "sqlite":
		j, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite journal: %w", err)
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q (supported: csv, sqlite, none)", cfg.Journal.Type)
	}
}
