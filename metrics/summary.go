// Package metrics derives performance statistics and chart series from the
// trade history. Everything here is recomputed from scratch on each call;
// there is no incremental state to drift.
package metrics

import (
	"math"

	"github.com/rwyatt/fxjournal/journal"
)

// Summary is the aggregate view of a closed-trade history. TotalProfit and
// TotalLoss are gross, non-negative accumulators; ConsecutiveWins/Losses are
// the maximum streaks seen.
type Summary struct {
	TotalTrades       int
	WinRate           float64
	AverageProfitLoss float64
	ProfitFactor      float64
	BestTrade         float64
	WorstTrade        float64
	ConsecutiveWins   int
	ConsecutiveLosses int
	TotalProfit       float64
	TotalLoss         float64
}

// Aggregate computes a Summary over the closed trades in input order. Open
// trades are ignored; trades whose P/L is NaN (unparseable numerics) are
// skipped entirely rather than folded in as zero. An empty closed set yields
// the zero Summary, never an error.
//
// A P/L of exactly zero counts as a loss for win-rate and streak purposes;
// only strictly positive P/L is a win.
func Aggregate(trades []journal.Trade) Summary {
	var (
		closed      int
		totalProfit float64
		totalLoss   float64
		wins        int
		runWins     int
		runLosses   int
		maxWins     int
		maxLosses   int
		best        = math.Inf(-1)
		worst       = math.Inf(1)
	)

	for _, t := range trades {
		if t.Status != journal.StatusClosed {
			continue
		}
		pnl := journal.ComputePnL(t)
		if math.IsNaN(pnl) {
			continue
		}
		closed++

		if pnl > 0 {
			totalProfit += pnl
			wins++
			runWins++
			runLosses = 0
			if runWins > maxWins {
				maxWins = runWins
			}
			if pnl > best {
				best = pnl
			}
		} else {
			totalLoss += math.Abs(pnl)
			runLosses++
			runWins = 0
			if runLosses > maxLosses {
				maxLosses = runLosses
			}
			if pnl < worst {
				worst = pnl
			}
		}
	}

	if closed == 0 {
		return Summary{}
	}

	profitFactor := totalProfit
	if totalLoss != 0 {
		profitFactor = totalProfit / totalLoss
	}

	s := Summary{
		TotalTrades:       closed,
		WinRate:           float64(wins) / float64(closed) * 100,
		AverageProfitLoss: (totalProfit - totalLoss) / float64(closed),
		ProfitFactor:      profitFactor,
		ConsecutiveWins:   maxWins,
		ConsecutiveLosses: maxLosses,
		TotalProfit:       totalProfit,
		TotalLoss:         totalLoss,
	}
	if !math.IsInf(best, -1) {
		s.BestTrade = best
	}
	if !math.IsInf(worst, 1) {
		s.WorstTrade = worst
	}
	return s
}

// Round2 rounds to 2 decimals. Applied only at the presentation boundary
// so long histories aggregate at full precision.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Rounded returns a presentation copy with all money/rate fields at 2
// decimals.
func (s Summary) Rounded() Summary {
	s.WinRate = Round2(s.WinRate)
	s.AverageProfitLoss = Round2(s.AverageProfitLoss)
	s.ProfitFactor = Round2(s.ProfitFactor)
	s.BestTrade = Round2(s.BestTrade)
	s.WorstTrade = Round2(s.WorstTrade)
	s.TotalProfit = Round2(s.TotalProfit)
	s.TotalLoss = Round2(s.TotalLoss)
	return s
}
