package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Andleep/Trend-andleep8/sim"
)

// Config represents the complete backtester configuration.
type Config struct {
	Account   AccountConfig   `json:"account" yaml:"account"`
	Strategy  StrategyConfig  `json:"strategy" yaml:"strategy"`
	Execution ExecutionConfig `json:"execution" yaml:"execution"`
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	Symbol  string  `json:"symbol" yaml:"symbol"`
	Balance float64 `json:"balance" yaml:"balance"`
}

// StrategyConfig contains the searched strategy parameters.
type StrategyConfig struct {
	ScoreThreshold float64 `json:"score_threshold" yaml:"score_threshold"`
	ADXThreshold   float64 `json:"adx_threshold" yaml:"adx_threshold"`
	TakeProfitPct  float64 `json:"take_profit_pct" yaml:"take_profit_pct"`
	StopLossPct    float64 `json:"stop_loss_pct" yaml:"stop_loss_pct"`
	RiskPerTrade   float64 `json:"risk_per_trade" yaml:"risk_per_trade"`
	Lookback       int     `json:"lookback" yaml:"lookback"`
	KellyWeight    float64 `json:"kelly_weight" yaml:"kelly_weight"`
}

// ExecutionConfig contains the friction model held fixed across runs.
type ExecutionConfig struct {
	Commission float64 `json:"commission" yaml:"commission"`
	Slippage   float64 `json:"slippage" yaml:"slippage"`
	MinAmount  float64 `json:"min_amount" yaml:"min_amount"`
}

// OptimizerConfig contains parameter search settings.
type OptimizerConfig struct {
	Iterations int   `json:"iterations" yaml:"iterations"`
	Workers    int   `json:"workers" yaml:"workers"`
	Seed       int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// JournalConfig contains result persistence settings.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv", "sqlite", or "none"
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	LedgerFile string `json:"ledger_file,omitempty" yaml:"ledger_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Params assembles the simulation parameter record from the config.
func (c *Config) Params() sim.Params {
	return sim.Params{
		ScoreThreshold: c.Strategy.ScoreThreshold,
		ADXThreshold:   c.Strategy.ADXThreshold,
		TakeProfitPct:  c.Strategy.TakeProfitPct,
		StopLossPct:    c.Strategy.StopLossPct,
		RiskPerTrade:   c.Strategy.RiskPerTrade,
		Lookback:       c.Strategy.Lookback,
		KellyWeight:    c.Strategy.KellyWeight,
		Commission:     c.Execution.Commission,
		Slippage:       c.Execution.Slippage,
		MinAmount:      c.Execution.MinAmount,
		InitialBalance: c.Account.Balance,
	}
}

// LoadFromFile loads configuration from a file (YAML first, JSON fallback).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Symbol == "" {
		return fmt.Errorf("account.symbol is required")
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Optimizer.Iterations <= 0 {
		return fmt.Errorf("optimizer.iterations must be positive")
	}
	if c.Optimizer.Workers < 0 {
		return fmt.Errorf("optimizer.workers must be non-negative")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.LedgerFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal runs_file, ledger_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults, mirroring
// sim.DefaultParams.
func Default() *Config {
	p := sim.DefaultParams()
	return &Config{
		Account: AccountConfig{
			Symbol:  "ETHUSDT",
			Balance: p.InitialBalance,
		},
		Strategy: StrategyConfig{
			ScoreThreshold: p.ScoreThreshold,
			ADXThreshold:   p.ADXThreshold,
			TakeProfitPct:  p.TakeProfitPct,
			StopLossPct:    p.StopLossPct,
			RiskPerTrade:   p.RiskPerTrade,
			Lookback:       p.Lookback,
			KellyWeight:    p.KellyWeight,
		},
		Execution: ExecutionConfig{
			Commission: p.Commission,
			Slippage:   p.Slippage,
			MinAmount:  p.MinAmount,
		},
		Optimizer: OptimizerConfig{
			Iterations: 50,
			Workers:    0, // 0 = GOMAXPROCS
		},
		Journal: JournalConfig{
			Type:       "csv",
			RunsFile:   "./runs.csv",
			LedgerFile: "./ledger.csv",
			EquityFile: "./equity.csv",
		},
	}
}
