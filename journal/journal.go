// Package journal persists backtest results. It sits on the caller side
// of the engine boundary: the core produces in-memory results and the CLI
// decides whether and where to record them.
package journal

import (
	"time"

	"github.com/Andleep/Trend-andleep8/backtest"
	"github.com/Andleep/Trend-andleep8/internal/id"
	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/sim"
)

// RunRecord summarizes one simulation run.
type RunRecord struct {
	RunID   string
	Created time.Time
	Symbol  string
	Bars    int

	ScoreThreshold float64
	ADXThreshold   float64
	TakeProfitPct  float64
	StopLossPct    float64
	RiskPerTrade   float64
	Lookback       int

	InitialBalance float64
	FinalBalance   float64
	TotalTrades    int
	WinRate        float64
	TotalProfit    float64
	MaxDrawdown    float64
	RiskAdjusted   float64
}

// LedgerRow is one ledger entry tagged with its run and sequence.
type LedgerRow struct {
	RunID      string
	Seq        int
	Time       time.Time
	Action     string
	Price      float64
	Profit     float64
	Commission float64
	Amount     float64
}

// EquityRow is one equity sample tagged with its run and sequence.
type EquityRow struct {
	RunID string
	Seq   int
	Time  time.Time
	Value float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordLedger(LedgerRow) error
	RecordEquity(EquityRow) error
	Close() error
}

// WriteResult records a full backtest result under a fresh run ID and
// returns the ID. Equity rows borrow their timestamps from the bar
// series, one sample per bar.
func WriteResult(j Journal, symbol string, bars []market.Bar, params sim.Params, res backtest.Result) (string, error) {
	runID := id.New()

	rec := RunRecord{
		RunID:          runID,
		Created:        time.Now().UTC(),
		Symbol:         symbol,
		Bars:           len(bars),
		ScoreThreshold: params.ScoreThreshold,
		ADXThreshold:   params.ADXThreshold,
		TakeProfitPct:  params.TakeProfitPct,
		StopLossPct:    params.StopLossPct,
		RiskPerTrade:   params.RiskPerTrade,
		Lookback:       params.Lookback,
		InitialBalance: params.InitialBalance,
		FinalBalance:   res.FinalBalance,
		TotalTrades:    res.TotalTrades,
		WinRate:        res.WinRate,
		TotalProfit:    res.TotalProfit,
		MaxDrawdown:    res.MaxDrawdown,
		RiskAdjusted:   res.RiskAdjusted,
	}
	if err := j.RecordRun(rec); err != nil {
		return "", err
	}

	for i, le := range res.Ledger {
		row := LedgerRow{
			RunID:      runID,
			Seq:        i,
			Time:       le.Time,
			Action:     string(le.Action),
			Price:      le.Price,
			Profit:     le.Profit,
			Commission: le.Commission,
			Amount:     le.Amount,
		}
		if err := j.RecordLedger(row); err != nil {
			return "", err
		}
	}

	for i, v := range res.Equity {
		row := EquityRow{RunID: runID, Seq: i, Value: v}
		if i < len(bars) {
			row.Time = bars[i].Time
		}
		if err := j.RecordEquity(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}
