package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal writes runs, ledger rows, and equity samples to three CSV
// files, flushing after every record so partial runs are still readable.
type CSVJournal struct {
	runs   *csv.Writer
	ledger *csv.Writer
	equity *csv.Writer

	rf, lf, ef *os.File
}

func NewCSV(runsPath, ledgerPath, equityPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	lf, err := os.Create(ledgerPath)
	if err != nil {
		rf.Close()
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		rf.Close()
		lf.Close()
		return nil, err
	}

	rw := csv.NewWriter(rf)
	lw := csv.NewWriter(lf)
	ew := csv.NewWriter(ef)

	if err := rw.Write([]string{
		"run_id", "created", "symbol", "bars",
		"score_threshold", "adx_threshold", "take_profit_pct", "stop_loss_pct", "risk_per_trade", "lookback",
		"initial_balance", "final_balance", "total_trades", "win_rate", "total_profit", "max_drawdown", "risk_adjusted",
	}); err != nil {
		return nil, err
	}
	if err := lw.Write([]string{"run_id", "seq", "time", "action", "price", "profit", "commission", "amount"}); err != nil {
		return nil, err
	}
	if err := ew.Write([]string{"run_id", "seq", "time", "value"}); err != nil {
		return nil, err
	}

	j := &CSVJournal{runs: rw, ledger: lw, equity: ew, rf: rf, lf: lf, ef: ef}
	j.flush()
	return j, j.err()
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	j.runs.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.Symbol,
		strconv.Itoa(r.Bars),
		f(r.ScoreThreshold), f(r.ADXThreshold), f(r.TakeProfitPct), f(r.StopLossPct), f(r.RiskPerTrade),
		strconv.Itoa(r.Lookback),
		f(r.InitialBalance), f(r.FinalBalance),
		strconv.Itoa(r.TotalTrades),
		f(r.WinRate), f(r.TotalProfit), f(r.MaxDrawdown), f(r.RiskAdjusted),
	})
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordLedger(row LedgerRow) error {
	j.ledger.Write([]string{
		row.RunID,
		strconv.Itoa(row.Seq),
		row.Time.Format(time.RFC3339),
		row.Action,
		f(row.Price), f(row.Profit), f(row.Commission), f(row.Amount),
	})
	j.ledger.Flush()
	return j.ledger.Error()
}

func (j *CSVJournal) RecordEquity(row EquityRow) error {
	j.equity.Write([]string{
		row.RunID,
		strconv.Itoa(row.Seq),
		row.Time.Format(time.RFC3339),
		f(row.Value),
	})
	j.equity.Flush()
	return j.equity.Error()
}

func (j *CSVJournal) Close() error {
	j.flush()
	if err := j.err(); err != nil {
		return err
	}
	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.lf.Close(); err != nil {
		return err
	}
	return j.ef.Close()
}

func (j *CSVJournal) flush() {
	j.runs.Flush()
	j.ledger.Flush()
	j.equity.Flush()
}

func (j *CSVJournal) err() error {
	if err := j.runs.Error(); err != nil {
		return err
	}
	if err := j.ledger.Error(); err != nil {
		return err
	}
	return j.equity.Error()
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
