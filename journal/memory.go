package journal

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Store. It backs tests and makes the engine usable
// without a database file; the journal assumes a single logical writer, the
// mutex only keeps reads consistent with the latest write.
type Memory struct {
	mu     sync.RWMutex
	trades []Trade
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Add(t Trade) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.trades {
		if existing.ID == t.ID {
			return fmt.Errorf("trade %q already exists", t.ID)
		}
	}
	m.trades = append(m.trades, t)
	return nil
}

func (m *Memory) Update(t Trade) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.trades {
		if existing.ID == t.ID {
			m.trades[i] = t
			return nil
		}
	}
	return fmt.Errorf("trade %q not found", t.ID)
}

func (m *Memory) Get(tradeID string) (Trade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.trades {
		if t.ID == tradeID {
			return t, nil
		}
	}
	return Trade{}, fmt.Errorf("trade %q not found", tradeID)
}

func (m *Memory) List() ([]Trade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Trade, len(m.trades))
	copy(out, m.trades)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryTime.Before(out[j].EntryTime)
	})
	return out, nil
}

func (m *Memory) ListClosedBetween(start, end time.Time) ([]Trade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Trade
	for _, t := range m.trades {
		if t.Status != StatusClosed {
			continue
		}
		if t.ExitTime.Before(start) || !t.ExitTime.Before(end) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExitTime.Before(out[j].ExitTime)
	})
	return out, nil
}

func (m *Memory) Close() error {
	return nil
}
