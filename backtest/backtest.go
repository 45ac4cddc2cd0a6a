// Package backtest is the outer surface of the engine: it prepares
// features, runs one simulation, and evaluates the result. Callers own
// presentation and persistence of the Result.
package backtest

import (
	"github.com/Andleep/Trend-andleep8/indicators"
	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/sim"
	"github.com/Andleep/Trend-andleep8/stats"
)

// Result is the full outcome of one simulation run: scalar statistics
// plus the complete ledger and equity curve. Produced once per run and
// not mutated afterwards.
type Result struct {
	FinalBalance float64
	TotalTrades  int
	WinRate      float64
	TotalProfit  float64
	MaxDrawdown  float64
	RiskAdjusted float64

	Ledger []sim.LedgerEntry
	Equity []float64
}

// Simulate runs the full pipeline over a raw bar series: feature
// preparation, the bar-by-bar engine, and the performance evaluator.
// The input slice is not mutated.
func Simulate(bars []market.Bar, symbol string, params sim.Params) Result {
	return SimulatePrepared(indicators.Prepare(bars), symbol, params)
}

// SimulatePrepared runs one simulation over bars whose feature columns
// are already filled. Callers that run many simulations over the same
// series (the optimizer) prepare once and reuse the slice read-only.
func SimulatePrepared(prepared []market.Bar, symbol string, params sim.Params) Result {
	run := sim.New(params).Run(prepared, symbol)
	rep := stats.Evaluate(params.InitialBalance, run.Ledger, run.Equity)

	return Result{
		FinalBalance: run.FinalBalance,
		TotalTrades:  rep.TotalTrades,
		WinRate:      rep.WinRate,
		TotalProfit:  rep.TotalProfit,
		MaxDrawdown:  rep.MaxDrawdown,
		RiskAdjusted: rep.RiskAdjusted,
		Ledger:       run.Ledger,
		Equity:       run.Equity,
	}
}
