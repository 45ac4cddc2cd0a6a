package backtest

import (
	"fmt"
	"io"

	"github.com/Andleep/Trend-andleep8/sim"
)

// PrintResult writes a human-readable summary of a run.
func PrintResult(w io.Writer, symbol string, params sim.Params, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Symbol:          %s\n", symbol)
	fmt.Fprintf(w, "Bars (equity):   %d\n", len(r.Equity))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parameters")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Score Threshold: %.6f\n", params.ScoreThreshold)
	fmt.Fprintf(w, "ADX Threshold:   %.1f\n", params.ADXThreshold)
	fmt.Fprintf(w, "Take Profit:     %.2f%%\n", params.TakeProfitPct*100)
	fmt.Fprintf(w, "Stop Loss:       %.2f%%\n", params.StopLossPct*100)
	fmt.Fprintf(w, "Risk per Trade:  %.2f%%\n", params.RiskPerTrade*100)
	fmt.Fprintf(w, "Lookback:        %d\n", params.Lookback)
	fmt.Fprintf(w, "Commission:      %.4f%%\n", params.Commission*100)
	fmt.Fprintf(w, "Slippage:        %.4f%%\n", params.Slippage*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Balance:   %.6f\n", params.InitialBalance)
	fmt.Fprintf(w, "Final Balance:   %.6f\n", r.FinalBalance)
	fmt.Fprintf(w, "Total Profit:    %.6f\n", r.TotalProfit)
	fmt.Fprintf(w, "Closed Trades:   %d\n", r.TotalTrades)
	fmt.Fprintf(w, "Win Rate:        %.2f%%\n", r.WinRate*100)
	fmt.Fprintf(w, "Max Drawdown:    %.2f%%\n", r.MaxDrawdown*100)
	fmt.Fprintf(w, "Risk-Adjusted:   %.4f\n", r.RiskAdjusted)
	fmt.Fprintln(w)
}
