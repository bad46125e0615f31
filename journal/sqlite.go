package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Add(t Trade) error {
	_, err := s.db.Exec(`
		INSERT INTO trades
		(trade_id, pair, direction, entry_price, lot_size, stop_loss, take_profit, entry_time, notes,
		 status, exit_price, exit_time, close_reason, risk_reward)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Pair, string(t.Direction), t.EntryPrice, t.LotSize,
		nullFloat(t.StopLoss), nullFloat(t.TakeProfit), t.EntryTime, t.Notes,
		string(t.Status), nullFloat(t.ExitPrice), nullTime(t.ExitTime),
		t.CloseReason, t.RiskRewardRatio,
	)
	return err
}

// Update replaces the stored row for a trade. Used when a trade is closed.
func (s *SQLite) Update(t Trade) error {
	res, err := s.db.Exec(`
		UPDATE trades
		SET pair = ?, direction = ?, entry_price = ?, lot_size = ?, stop_loss = ?,
		    take_profit = ?, entry_time = ?, notes = ?, status = ?, exit_price = ?,
		    exit_time = ?, close_reason = ?, risk_reward = ?
		WHERE trade_id = ?`,
		t.Pair, string(t.Direction), t.EntryPrice, t.LotSize,
		nullFloat(t.StopLoss), nullFloat(t.TakeProfit), t.EntryTime, t.Notes,
		string(t.Status), nullFloat(t.ExitPrice), nullTime(t.ExitTime),
		t.CloseReason, t.RiskRewardRatio, t.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", t.ID)
	}
	return nil
}

func (s *SQLite) Get(tradeID string) (Trade, error) {
	row := s.db.QueryRow(selectTrades+` WHERE trade_id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return Trade{}, err
	}
	return t, nil
}

func (s *SQLite) List() ([]Trade, error) {
	rows, err := s.db.Query(selectTrades + ` ORDER BY entry_time ASC`)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

func (s *SQLite) ListClosedBetween(start, end time.Time) ([]Trade, error) {
	rows, err := s.db.Query(selectTrades+`
		WHERE status = ? AND exit_time >= ? AND exit_time < ?
		ORDER BY exit_time ASC`, string(StatusClosed), start, end)
	if err != nil {
		return nil, err
	}
	return collectTrades(rows)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

const selectTrades = `
	SELECT trade_id, pair, direction, entry_price, lot_size, stop_loss, take_profit,
	       entry_time, notes, status, exit_price, exit_time, close_reason, risk_reward
	FROM trades`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var (
		t         Trade
		direction string
		status    string
		stop      sql.NullFloat64
		take      sql.NullFloat64
		exit      sql.NullFloat64
		exitTime  sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.Pair,
		&direction,
		&t.EntryPrice,
		&t.LotSize,
		&stop,
		&take,
		&t.EntryTime,
		&t.Notes,
		&status,
		&exit,
		&exitTime,
		&t.CloseReason,
		&t.RiskRewardRatio,
	)
	if err != nil {
		return Trade{}, err
	}

	t.Direction = Direction(direction)
	t.Status = Status(status)
	if stop.Valid {
		v := stop.Float64
		t.StopLoss = &v
	}
	if take.Valid {
		v := take.Float64
		t.TakeProfit = &v
	}
	if exit.Valid {
		v := exit.Float64
		t.ExitPrice = &v
	}
	if exitTime.Valid {
		t.ExitTime = exitTime.Time
	}
	return t, nil
}

func collectTrades(rows *sql.Rows) ([]Trade, error) {
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
