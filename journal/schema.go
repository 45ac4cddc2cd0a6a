package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	bars INTEGER NOT NULL,
	score_threshold REAL NOT NULL,
	adx_threshold REAL NOT NULL,
	take_profit_pct REAL NOT NULL,
	stop_loss_pct REAL NOT NULL,
	risk_per_trade REAL NOT NULL,
	lookback INTEGER NOT NULL,
	initial_balance REAL NOT NULL,
	final_balance REAL NOT NULL,
	total_trades INTEGER NOT NULL,
	win_rate REAL NOT NULL,
	total_profit REAL NOT NULL,
	max_drawdown REAL NOT NULL,
	risk_adjusted REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS ledger (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	time DATETIME NOT NULL,
	action TEXT NOT NULL,
	price REAL NOT NULL,
	profit REAL NOT NULL,
	commission REAL NOT NULL,
	amount REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE TABLE IF NOT EXISTS equity (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	time DATETIME NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_ledger_run ON ledger(run_id);
CREATE INDEX IF NOT EXISTS idx_equity_run ON equity(run_id);
`
