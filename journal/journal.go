// Package journal holds the trade record model, realized P/L arithmetic and
// the trade stores. All derivation (metrics, series) is computed fresh from
// the stored collection; the stores never interpret trades beyond persistence.
package journal

import "time"

// Store is the persistence boundary for trades. Implementations own the
// canonical collection; callers get copies and hand back updated records.
type Store interface {
	Add(Trade) error
	Update(Trade) error
	Get(tradeID string) (Trade, error)
	// List returns all trades ordered by entry time ascending.
	List() ([]Trade, error)
	// ListClosedBetween returns closed trades with exit time in [start, end),
	// ordered by exit time ascending.
	ListClosedBetween(start, end time.Time) ([]Trade, error)
	Close() error
}
