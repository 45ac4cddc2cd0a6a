package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Andleep/Trend-andleep8/backtest"
	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/optimize"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Random-search strategy parameters over historical data",
	Long: `Optimize runs many randomized backtests over the same candle data and
reports the parameter set with the highest terminal balance.

Interrupting the search (Ctrl-C) stops dispatching new iterations and
returns the best result found so far.

Example:
  trendbot optimize --candles data/ethusdt_1h.csv --iterations 200 --seed 42`,
	RunE: runOptimize,
}

var (
	optCandlesPath string
	optSymbol      string
	optIterations  int
	optWorkers     int
	optSeed        int64
	optVerbose     bool
	optJournalType string
)

func init() {
	rootCmd.AddCommand(optimizeCmd)

	optimizeCmd.Flags().StringVarP(&optCandlesPath, "candles", "d", "", "path to candle CSV (time,open,high,low,close,volume) (required)")
	optimizeCmd.Flags().StringVarP(&optSymbol, "symbol", "s", "", "instrument symbol (overrides config)")
	optimizeCmd.Flags().IntVarP(&optIterations, "iterations", "n", 0, "number of random draws (overrides config)")
	optimizeCmd.Flags().IntVarP(&optWorkers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	optimizeCmd.Flags().Int64Var(&optSeed, "seed", 0, "rng seed (0 = time-seeded)")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "log every iteration")
	optimizeCmd.Flags().StringVarP(&optJournalType, "journal", "j", "", "journal backend for the winning run: csv, sqlite or none")

	optimizeCmd.MarkFlagRequired("candles")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if optSymbol != "" {
		cfg.Account.Symbol = optSymbol
	}
	if optIterations > 0 {
		cfg.Optimizer.Iterations = optIterations
	}
	if optWorkers > 0 {
		cfg.Optimizer.Workers = optWorkers
	}
	if optSeed != 0 {
		cfg.Optimizer.Seed = optSeed
	}
	if optJournalType != "" {
		cfg.Journal.Type = optJournalType
	}

	bars, err := market.LoadCSV(optCandlesPath)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	logger, err := buildLogger(optVerbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Searching %d parameter sets over %d bars (%s)\n\n",
		cfg.Optimizer.Iterations, len(bars), cfg.Account.Symbol)

	best, err := optimize.Search(ctx, bars, cfg.Account.Symbol, optimize.Options{
		Iterations: cfg.Optimizer.Iterations,
		Workers:    cfg.Optimizer.Workers,
		Seed:       cfg.Optimizer.Seed,
		Base:       cfg.Params(),
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	backtest.PrintResult(os.Stdout, cfg.Account.Symbol, best.Params, best.Result)
	return persistResult(cfg, bars, best.Params, best.Result)
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
