package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/rwyatt/fxjournal/journal"
)

// EquityPoint is one point on the cumulative equity curve: the running P/L
// total after all trades that closed on Date.
type EquityPoint struct {
	Date  time.Time
	Label string
	Value float64
}

// PairStat is one bar of the per-pair performance chart. Positive carries
// the sign flag the chart colors by; NoData marks the placeholder entry
// emitted when there is nothing to chart.
type PairStat struct {
	Pair     string
	PnL      float64
	Positive bool
	NoData   bool
}

const dateLabel = "2006-01-02"

// EquityCurve builds the cumulative P/L series over closed trades, ordered
// by exit time, one point per distinct exit date. Callers always get at
// least one point: an empty closed set yields a single zero point.
func EquityCurve(trades []journal.Trade) []EquityPoint {
	closed := closedWithPnL(trades)
	if len(closed) == 0 {
		return []EquityPoint{{Value: 0, Label: "0"}}
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].ExitTime.Before(closed[j].ExitTime)
	})

	var (
		points     []EquityPoint
		cumulative float64
	)
	for _, t := range closed {
		cumulative += journal.ComputePnL(t)
		day := exitDay(t.ExitTime)
		label := t.ExitTime.Format(dateLabel)

		if n := len(points); n > 0 && points[n-1].Label == label {
			points[n-1].Value = cumulative
			continue
		}
		points = append(points, EquityPoint{Date: day, Label: label, Value: cumulative})
	}
	return points
}

// PairPerformance sums closed-trade P/L per pair, in sorted pair order.
// An empty closed set yields a single placeholder entry, never an empty
// series.
func PairPerformance(trades []journal.Trade) []PairStat {
	closed := closedWithPnL(trades)
	if len(closed) == 0 {
		return []PairStat{{Pair: "No Data", Positive: true, NoData: true}}
	}

	totals := make(map[string]float64)
	for _, t := range closed {
		totals[t.Pair] += journal.ComputePnL(t)
	}

	pairs := make([]string, 0, len(totals))
	for pair := range totals {
		pairs = append(pairs, pair)
	}
	sort.Strings(pairs)

	out := make([]PairStat, 0, len(pairs))
	for _, pair := range pairs {
		pnl := totals[pair]
		out = append(out, PairStat{
			Pair:     pair,
			PnL:      pnl,
			Positive: pnl >= 0,
		})
	}
	return out
}

// exitDay is midnight of the exit time's own calendar day, in its own
// location, so Date and Label always name the same day.
func exitDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// closedWithPnL filters to closed trades whose P/L is available (not NaN).
func closedWithPnL(trades []journal.Trade) []journal.Trade {
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Status != journal.StatusClosed {
			continue
		}
		if math.IsNaN(journal.ComputePnL(t)) {
			continue
		}
		out = append(out, t)
	}
	return out
}
