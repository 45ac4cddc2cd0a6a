package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, symbol, bars,
		 score_threshold, adx_threshold, take_profit_pct, stop_loss_pct, risk_per_trade, lookback,
		 initial_balance, final_balance, total_trades, win_rate, total_profit, max_drawdown, risk_adjusted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Symbol, r.Bars,
		r.ScoreThreshold, r.ADXThreshold, r.TakeProfitPct, r.StopLossPct, r.RiskPerTrade, r.Lookback,
		r.InitialBalance, r.FinalBalance, r.TotalTrades, r.WinRate, r.TotalProfit, r.MaxDrawdown, r.RiskAdjusted,
	)
	return err
}

func (j *SQLiteJournal) RecordLedger(row LedgerRow) error {
	_, err := j.db.Exec(`
		INSERT INTO ledger
		(run_id, seq, time, action, price, profit, commission, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.RunID, row.Seq, row.Time, row.Action, row.Price, row.Profit, row.Commission, row.Amount,
	)
	return err
}

func (j *SQLiteJournal) RecordEquity(row EquityRow) error {
	_, err := j.db.Exec(`
		INSERT INTO equity
		(run_id, seq, time, value)
		VALUES (?, ?, ?, ?)`,
		row.RunID, row.Seq, row.Time, row.Value,
	)
	return err
}

// GetRun loads one run summary by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	var r RunRecord
	err := j.db.QueryRow(`
		SELECT run_id, created, symbol, bars,
		       score_threshold, adx_threshold, take_profit_pct, stop_loss_pct, risk_per_trade, lookback,
		       initial_balance, final_balance, total_trades, win_rate, total_profit, max_drawdown, risk_adjusted
		FROM runs WHERE run_id = ?`, runID,
	).Scan(
		&r.RunID, &r.Created, &r.Symbol, &r.Bars,
		&r.ScoreThreshold, &r.ADXThreshold, &r.TakeProfitPct, &r.StopLossPct, &r.RiskPerTrade, &r.Lookback,
		&r.InitialBalance, &r.FinalBalance, &r.TotalTrades, &r.WinRate, &r.TotalProfit, &r.MaxDrawdown, &r.RiskAdjusted,
	)
	if err == sql.ErrNoRows {
		return r, fmt.Errorf("run %q not found", runID)
	}
	return r, err
}

// ListLedger returns the ledger rows of a run in sequence order.
func (j *SQLiteJournal) ListLedger(runID string) ([]LedgerRow, error) {
	rows, err := j.db.Query(`
		SELECT run_id, seq, time, action, price, profit, commission, amount
		FROM ledger WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LedgerRow
	for rows.Next() {
		var r LedgerRow
		if err := rows.Scan(&r.RunID, &r.Seq, &r.Time, &r.Action, &r.Price, &r.Profit, &r.Commission, &r.Amount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListEquity returns the equity curve of a run in sequence order.
func (j *SQLiteJournal) ListEquity(runID string) ([]EquityRow, error) {
	rows, err := j.db.Query(`
		SELECT run_id, seq, time, value
		FROM equity WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquityRow
	for rows.Next() {
		var r EquityRow
		if err := rows.Scan(&r.RunID, &r.Seq, &r.Time, &r.Value); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
