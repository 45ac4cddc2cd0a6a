package sim

import "fmt"

// Params is the full parameter record for one simulation run. Commission
// and slippage are fractions of committed amount and fill price
// respectively.
type Params struct {
	ScoreThreshold float64 // minimum similarity score for an entry
	ADXThreshold   float64 // trend-strength floor
	TakeProfitPct  float64
	StopLossPct    float64
	RiskPerTrade   float64
	Commission     float64
	Slippage       float64
	Lookback       int // similarity history window, in bars
	MinAmount      float64
	KellyWeight    float64 // alpha blend between fixed risk and Kelly edge
	InitialBalance float64
}

// DefaultParams returns the baseline parameter set.
func DefaultParams() Params {
	return Params{
		ScoreThreshold: 0.0005,
		ADXThreshold:   8,
		TakeProfitPct:  0.03,
		StopLossPct:    0.015,
		RiskPerTrade:   0.05,
		Commission:     0.0008,
		Slippage:       0.0005,
		Lookback:       500,
		MinAmount:      0.01,
		KellyWeight:    0.6,
		InitialBalance: 10.0,
	}
}

// Validate checks the parameter record for values that would make a run
// meaningless.
func (p Params) Validate() error {
	if p.InitialBalance <= 0 {
		return fmt.Errorf("initial balance must be positive, got %v", p.InitialBalance)
	}
	if p.TakeProfitPct <= 0 {
		return fmt.Errorf("take profit pct must be positive, got %v", p.TakeProfitPct)
	}
	if p.StopLossPct <= 0 || p.StopLossPct >= 1 {
		return fmt.Errorf("stop loss pct must be in (0,1), got %v", p.StopLossPct)
	}
	if p.RiskPerTrade <= 0 || p.RiskPerTrade > 1 {
		return fmt.Errorf("risk per trade must be in (0,1], got %v", p.RiskPerTrade)
	}
	if p.Commission < 0 || p.Slippage < 0 {
		return fmt.Errorf("commission and slippage must be non-negative")
	}
	if p.Lookback <= 0 {
		return fmt.Errorf("lookback must be positive, got %d", p.Lookback)
	}
	if p.KellyWeight < 0 || p.KellyWeight > 1 {
		return fmt.Errorf("kelly weight must be in [0,1], got %v", p.KellyWeight)
	}
	return nil
}
