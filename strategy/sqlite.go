package strategy

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS strategies (
	strategy_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	entry_rules TEXT NOT NULL,
	exit_rules TEXT NOT NULL,
	risk_per_trade REAL NOT NULL DEFAULT 0,
	timeframe TEXT NOT NULL DEFAULT '',
	backtest_count INTEGER NOT NULL DEFAULT 0,
	is_verified INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS backtests (
	backtest_id TEXT PRIMARY KEY,
	strategy_id TEXT NOT NULL REFERENCES strategies(strategy_id),
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	date DATETIME NOT NULL,
	outcome TEXT NOT NULL DEFAULT '',
	pnl_pct REAL NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_backtests_strategy ON backtests(strategy_id);
`

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Save persists a strategy and its backtests in one transaction. The
// strategy row is replaced; backtest rows are append-only, so existing ones
// are left untouched and only new IDs are inserted. This keeps the count
// crossing the threshold and the verified flag atomic on disk.
func (s *SQLite) Save(st Strategy) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	verified := 0
	if st.Verification.Verified() {
		verified = 1
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO strategies
		(strategy_id, name, description, entry_rules, exit_rules, risk_per_trade, timeframe, backtest_count, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.ID, st.Name, st.Description, st.EntryRules, st.ExitRules,
		st.RiskPerTrade, st.Timeframe, st.Verification.Count(), verified,
	)
	if err != nil {
		return err
	}

	for _, b := range st.Backtests {
		_, err = tx.Exec(`
			INSERT OR IGNORE INTO backtests
			(backtest_id, strategy_id, entry_price, exit_price, date, outcome, pnl_pct, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, st.ID, b.EntryPrice, b.ExitPrice, b.Date, b.Outcome, b.PnLPct, b.Notes,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLite) Get(strategyID string) (Strategy, error) {
	row := s.db.QueryRow(`
		SELECT strategy_id, name, description, entry_rules, exit_rules, risk_per_trade, timeframe, backtest_count, is_verified
		FROM strategies
		WHERE strategy_id = ?`, strategyID)

	st, err := scanStrategy(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Strategy{}, fmt.Errorf("strategy %q not found", strategyID)
		}
		return Strategy{}, err
	}

	backtests, err := s.listBacktests(strategyID)
	if err != nil {
		return Strategy{}, err
	}
	st.Backtests = backtests
	return st, nil
}

func (s *SQLite) List() ([]Strategy, error) {
	rows, err := s.db.Query(`
		SELECT strategy_id, name, description, entry_rules, exit_rules, risk_per_trade, timeframe, backtest_count, is_verified
		FROM strategies
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Strategy
	for rows.Next() {
		st, err := scanStrategy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		backtests, err := s.listBacktests(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Backtests = backtests
	}
	return out, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) listBacktests(strategyID string) ([]BacktestResult, error) {
	rows, err := s.db.Query(`
		SELECT backtest_id, entry_price, exit_price, date, outcome, pnl_pct, notes
		FROM backtests
		WHERE strategy_id = ?
		ORDER BY backtest_id ASC`, strategyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BacktestResult
	for rows.Next() {
		var b BacktestResult
		if err := rows.Scan(&b.ID, &b.EntryPrice, &b.ExitPrice, &b.Date, &b.Outcome, &b.PnLPct, &b.Notes); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStrategy(row rowScanner) (Strategy, error) {
	var (
		st       Strategy
		count    int
		verified int
	)

	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.EntryRules,
		&st.ExitRules,
		&st.RiskPerTrade,
		&st.Timeframe,
		&count,
		&verified,
	)
	if err != nil {
		return Strategy{}, err
	}

	st.Verification = Resume(count, verified != 0)
	return st, nil
}
