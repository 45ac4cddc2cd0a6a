// Package stats reduces a completed ledger and equity curve to scalar
// performance numbers. Everything here is computed from the ledger/equity
// contract alone, never re-derived from raw bars.
package stats

import (
	"math"

	"github.com/Andleep/Trend-andleep8/sim"
)

// epsilon guards the risk-adjusted return against zero variance.
const epsilon = 1e-9

// annualization for the risk-adjusted return, assuming daily bars.
var annualFactor = math.Sqrt(252)

// Report carries the run statistics.
type Report struct {
	TotalTrades  int     // closed trades (TP, SL, forced CLOSE)
	WinRate      float64 // fraction of closed trades with positive profit
	TotalProfit  float64 // sum of realized profit, net of commission
	MaxDrawdown  float64 // peak-to-trough equity decline, fraction of peak
	RiskAdjusted float64 // sharpe-style ratio over trade profits
}

// Evaluate computes the Report for one run. With no closed trades the win
// rate is 0; with fewer than two closed trades the risk-adjusted return
// is reported as 0 (undefined otherwise).
func Evaluate(initial float64, ledger []sim.LedgerEntry, equity []float64) Report {
	var profits []float64
	for _, le := range ledger {
		if le.Action.Closes() {
			profits = append(profits, le.Profit)
		}
	}

	rep := Report{TotalTrades: len(profits)}

	wins := 0
	for _, p := range profits {
		rep.TotalProfit += p
		if p > 0 {
			wins++
		}
	}
	if len(profits) > 0 {
		rep.WinRate = float64(wins) / float64(len(profits))
	}

	rep.MaxDrawdown = MaxDrawdown(equity, initial)

	if len(profits) > 1 {
		m := mean(profits)
		rep.RiskAdjusted = m / (stddev(profits, m) + epsilon) * annualFactor
	}
	return rep
}

// MaxDrawdown returns the largest observed (peak-value)/peak over the
// equity curve, in [0, 1]. An empty curve falls back to a single sample
// at the initial balance, which yields 0. Drawdown is 0 wherever the
// running peak is non-positive.
func MaxDrawdown(equity []float64, initial float64) float64 {
	if len(equity) == 0 {
		equity = []float64{initial}
	}
	peak := math.Inf(-1)
	maxDD := 0.0
	for _, v := range equity {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation.
func stddev(xs []float64, mean float64) float64 {
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}
