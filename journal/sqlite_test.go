package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andleep/Trend-andleep8/backtest"
	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/sim"
)

func tempSQLite(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func sampleResult() ([]market.Bar, sim.Params, backtest.Result) {
	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	bars := []market.Bar{
		{Time: base, Close: 100},
		{Time: base.Add(time.Hour), Close: 101},
		{Time: base.Add(2 * time.Hour), Close: 103},
	}
	params := sim.DefaultParams()
	res := backtest.Result{
		FinalBalance: 10.15,
		TotalTrades:  1,
		WinRate:      1.0,
		TotalProfit:  0.15,
		Ledger: []sim.LedgerEntry{
			{Time: base, Action: sim.ActionBuy, Price: 100, Amount: 0.5},
			{Time: base.Add(2 * time.Hour), Action: sim.ActionTakeProfit, Price: 103, Profit: 0.15, Commission: 0.0004, Amount: 0.5},
		},
		Equity: []float64{10, 10.005, 10.15},
	}
	return bars, params, res
}

func TestSQLite_WriteResultRoundtrip(t *testing.T) {
	t.Parallel()

	j := tempSQLite(t)
	bars, params, res := sampleResult()

	runID, err := WriteResult(j, "ETHUSDT", bars, params, res)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	rec, err := j.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "ETHUSDT", rec.Symbol)
	assert.Equal(t, 3, rec.Bars)
	assert.InDelta(t, 10.15, rec.FinalBalance, 1e-12)
	assert.InDelta(t, params.ScoreThreshold, rec.ScoreThreshold, 1e-12)
	assert.Equal(t, params.Lookback, rec.Lookback)

	ledger, err := j.ListLedger(runID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, "BUY", ledger[0].Action)
	assert.Equal(t, "TP", ledger[1].Action)
	assert.InDelta(t, 0.15, ledger[1].Profit, 1e-12)

	equity, err := j.ListEquity(runID)
	require.NoError(t, err)
	require.Len(t, equity, 3)
	assert.Equal(t, bars[2].Time.UTC(), equity[2].Time.UTC())
	assert.InDelta(t, 10.15, equity[2].Value, 1e-12)
}

func TestSQLite_GetRunNotFound(t *testing.T) {
	t.Parallel()

	j := tempSQLite(t)
	_, err := j.GetRun("no-such-run")
	assert.Error(t, err)
}

func TestSQLite_DistinctRunIDs(t *testing.T) {
	t.Parallel()

	j := tempSQLite(t)
	bars, params, res := sampleResult()

	a, err := WriteResult(j, "ETHUSDT", bars, params, res)
	require.NoError(t, err)
	b, err := WriteResult(j, "ETHUSDT", bars, params, res)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
