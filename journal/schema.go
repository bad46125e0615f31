// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	pair TEXT NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	lot_size REAL NOT NULL,
	stop_loss REAL,
	take_profit REAL,
	entry_time DATETIME NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	exit_price REAL,
	exit_time DATETIME,
	close_reason TEXT NOT NULL DEFAULT '',
	risk_reward TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time);
CREATE INDEX IF NOT EXISTS idx_trades_exit_time ON trades(exit_time);
`
