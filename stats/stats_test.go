package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Andleep/Trend-andleep8/sim"
)

func closeEntry(action sim.Action, profit float64) sim.LedgerEntry {
	return sim.LedgerEntry{Action: action, Profit: profit, Amount: 1}
}

func TestEvaluate_Empty(t *testing.T) {
	t.Parallel()

	rep := Evaluate(100, nil, nil)
	assert.Equal(t, 0, rep.TotalTrades)
	assert.Equal(t, 0.0, rep.WinRate)
	assert.Equal(t, 0.0, rep.TotalProfit)
	assert.Equal(t, 0.0, rep.MaxDrawdown)
	assert.Equal(t, 0.0, rep.RiskAdjusted)
}

func TestEvaluate_CountsOnlyCloses(t *testing.T) {
	t.Parallel()

	ledger := []sim.LedgerEntry{
		{Action: sim.ActionBuy, Amount: 5},
		closeEntry(sim.ActionTakeProfit, 2.0),
		{Action: sim.ActionBuy, Amount: 5},
		closeEntry(sim.ActionStopLoss, -1.0),
		{Action: sim.ActionBuy, Amount: 5},
		closeEntry(sim.ActionClose, 0.5),
	}

	rep := Evaluate(100, ledger, []float64{100, 101, 101.5})

	assert.Equal(t, 3, rep.TotalTrades)
	assert.InDelta(t, 2.0/3.0, rep.WinRate, 1e-12)
	assert.InDelta(t, 1.5, rep.TotalProfit, 1e-12)
}

func TestEvaluate_SingleTradeNoRiskAdjusted(t *testing.T) {
	t.Parallel()

	ledger := []sim.LedgerEntry{closeEntry(sim.ActionTakeProfit, 1.0)}
	rep := Evaluate(100, ledger, []float64{100, 101})
	assert.Equal(t, 1, rep.TotalTrades)
	assert.Equal(t, 0.0, rep.RiskAdjusted)
}

func TestEvaluate_RiskAdjustedSign(t *testing.T) {
	t.Parallel()

	winning := []sim.LedgerEntry{
		closeEntry(sim.ActionTakeProfit, 1.0),
		closeEntry(sim.ActionTakeProfit, 2.0),
		closeEntry(sim.ActionStopLoss, -0.5),
	}
	losing := []sim.LedgerEntry{
		closeEntry(sim.ActionStopLoss, -1.0),
		closeEntry(sim.ActionStopLoss, -2.0),
		closeEntry(sim.ActionTakeProfit, 0.5),
	}

	assert.Greater(t, Evaluate(100, winning, nil).RiskAdjusted, 0.0)
	assert.Less(t, Evaluate(100, losing, nil).RiskAdjusted, 0.0)
}

func TestEvaluate_RiskAdjustedValue(t *testing.T) {
	t.Parallel()

	// Profits 1 and 3: mean 2, population stddev 1.
	ledger := []sim.LedgerEntry{
		closeEntry(sim.ActionTakeProfit, 1.0),
		closeEntry(sim.ActionTakeProfit, 3.0),
	}
	rep := Evaluate(100, ledger, nil)
	assert.InDelta(t, 2.0*math.Sqrt(252), rep.RiskAdjusted, 1e-6)
}

func TestMaxDrawdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		equity  []float64
		initial float64
		want    float64
	}{
		{"empty curve", nil, 100, 0},
		{"monotone rise", []float64{100, 110, 120}, 100, 0},
		{"single dip", []float64{100, 120, 90, 130}, 100, 0.25},
		{"deepest of two dips", []float64{100, 80, 100, 50, 100}, 100, 0.5},
		{"flat", []float64{100, 100, 100}, 100, 0},
		{"trough at end", []float64{100, 200, 100}, 100, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, MaxDrawdown(tt.equity, tt.initial), 1e-12)
		})
	}
}
