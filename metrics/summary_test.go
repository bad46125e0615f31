package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rwyatt/fxjournal/journal"
)

func closedAt(pair string, dir journal.Direction, entry, exit, lots float64, exitTime time.Time) journal.Trade {
	e := exit
	return journal.Trade{
		ID: pair + exitTime.String(), Pair: pair, Direction: dir,
		EntryPrice: entry, LotSize: lots,
		EntryTime: exitTime.Add(-time.Hour),
		Status:    journal.StatusClosed,
		ExitPrice: &e, ExitTime: exitTime,
	}
}

// buyPnL builds a closed BUY trade with the given realized P/L (0.01 lots,
// so 1 pip of EUR/USD = 10 cents keeps the arithmetic readable).
func buyPnL(pnl float64, exitTime time.Time) journal.Trade {
	// pnl = (exit - entry) * lots * 100000; with lots=0.01 → exit = entry + pnl/1000
	entry := 1.1000
	return closedAt("EUR/USD", journal.Buy, entry, entry+pnl/1000, 0.01, exitTime)
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, Aggregate(nil))
	assert.Equal(t, Summary{}, Aggregate([]journal.Trade{}))
}

func TestAggregateOnlyOpenTrades(t *testing.T) {
	t.Parallel()

	open := journal.Trade{
		ID: "o", Pair: "EUR/USD", Direction: journal.Buy,
		EntryPrice: 1.1, LotSize: 0.1, Status: journal.StatusOpen,
	}
	assert.Equal(t, Summary{}, Aggregate([]journal.Trade{open, open}))
}

func TestAggregateBasics(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		buyPnL(100, t0),
		buyPnL(-40, t0.Add(time.Hour)),
		buyPnL(60, t0.Add(2*time.Hour)),
		buyPnL(20, t0.Add(3*time.Hour)),
	}

	s := Aggregate(trades)

	assert.Equal(t, 4, s.TotalTrades)
	assert.InDelta(t, 75.0, s.WinRate, 1e-9)
	assert.InDelta(t, 180.0, s.TotalProfit, 1e-6)
	assert.InDelta(t, 40.0, s.TotalLoss, 1e-6)
	assert.InDelta(t, 35.0, s.AverageProfitLoss, 1e-6) // (180-40)/4
	assert.InDelta(t, 4.5, s.ProfitFactor, 1e-6)       // 180/40
	assert.InDelta(t, 100.0, s.BestTrade, 1e-6)
	assert.InDelta(t, -40.0, s.WorstTrade, 1e-6)
	assert.Equal(t, 2, s.ConsecutiveWins)
	assert.Equal(t, 1, s.ConsecutiveLosses)
}

func TestAggregateProfitFactorNoLosses(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		buyPnL(50, t0),
		buyPnL(30, t0.Add(time.Hour)),
	}

	s := Aggregate(trades)
	// Degenerates to gross profit instead of dividing by zero.
	assert.InDelta(t, 80.0, s.ProfitFactor, 1e-6)
	assert.Zero(t, s.TotalLoss)
}

func TestAggregateZeroPnLCountsAsLoss(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		buyPnL(50, t0),
		buyPnL(0, t0.Add(time.Hour)),
	}

	s := Aggregate(trades)
	assert.InDelta(t, 50.0, s.WinRate, 1e-9) // 1 win of 2
	assert.Equal(t, 1, s.ConsecutiveLosses)
	assert.InDelta(t, 0.0, s.WorstTrade, 1e-9)
	assert.InDelta(t, 0.0, s.TotalLoss, 1e-9)
}

func TestAggregateStreakReset(t *testing.T) {
	t.Parallel()

	// Three wins, then a loss: win streak resets, loss streak starts at 1.
	trades := []journal.Trade{
		buyPnL(10, t0),
		buyPnL(10, t0.Add(1*time.Hour)),
		buyPnL(10, t0.Add(2*time.Hour)),
		buyPnL(-10, t0.Add(3*time.Hour)),
		buyPnL(10, t0.Add(4*time.Hour)),
	}

	s := Aggregate(trades)
	assert.Equal(t, 3, s.ConsecutiveWins)
	assert.Equal(t, 1, s.ConsecutiveLosses)
}

func TestAggregateWinsPlusLossesEqualClosed(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		buyPnL(10, t0),
		buyPnL(-5, t0.Add(1*time.Hour)),
		buyPnL(0, t0.Add(2*time.Hour)),
		buyPnL(7, t0.Add(3*time.Hour)),
	}

	s := Aggregate(trades)
	wins := int(math.Round(s.WinRate / 100 * float64(s.TotalTrades)))
	assert.Equal(t, 2, wins)
	assert.Equal(t, 4, s.TotalTrades)
}

func TestAggregateSkipsNaN(t *testing.T) {
	t.Parallel()

	bad := closedAt("EUR/USD", journal.Buy, math.NaN(), 1.2, 0.1, t0)
	trades := []journal.Trade{buyPnL(10, t0), bad}

	s := Aggregate(trades)
	assert.Equal(t, 1, s.TotalTrades)
	assert.InDelta(t, 10.0, s.TotalProfit, 1e-6)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.23, Round2(1.2345), 1e-12)
	assert.InDelta(t, -1.24, Round2(-1.235), 1e-12)
	assert.InDelta(t, 0.0, Round2(0.0001), 1e-12)
}

func TestSummaryRounded(t *testing.T) {
	t.Parallel()

	s := Summary{WinRate: 66.6666, ProfitFactor: 1.23456, TotalProfit: 10.005}
	r := s.Rounded()
	assert.InDelta(t, 66.67, r.WinRate, 1e-12)
	assert.InDelta(t, 1.23, r.ProfitFactor, 1e-12)
	// Internal state stays full precision.
	assert.InDelta(t, 66.6666, s.WinRate, 1e-12)
}
