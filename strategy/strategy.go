// Package strategy holds trading strategy records and the backtest
// verification state machine: a strategy starts unverified, accumulates
// manually recorded backtests, and latches verified at the threshold. The
// transition is one-way; verified strategies reject further submissions.
package strategy

import (
	"fmt"
	"math"
	"time"

	"github.com/rwyatt/fxjournal/pkg/id"
)

// VerificationThreshold is the number of recorded backtests at which a
// strategy is considered verified.
const VerificationThreshold = 100

// Verification is the strategy's progress toward verified status. The fields
// are unexported so the count can only grow and verified can only latch;
// there is no path back to unverified.
type Verification struct {
	count    int
	verified bool
}

// Resume rebuilds verification state from storage. A count at or past the
// threshold implies verified regardless of the stored flag, and a stored
// verified flag is honored even if the count disagrees; the invariant only
// tightens, never loosens.
func Resume(count int, verified bool) Verification {
	if count < 0 {
		count = 0
	}
	return Verification{
		count:    count,
		verified: verified || count >= VerificationThreshold,
	}
}

func (v Verification) Count() int     { return v.count }
func (v Verification) Verified() bool { return v.verified }

// record counts one accepted backtest and latches verified when the
// incremented count crosses the threshold, in the same step.
func (v *Verification) record() {
	v.count++
	if v.count >= VerificationThreshold {
		v.verified = true
	}
}

// BacktestResult is one manually recorded backtest. Results are immutable
// and append-only; PnLPct is the user-supplied percentage outcome.
type BacktestResult struct {
	ID         string
	EntryPrice float64
	ExitPrice  float64
	Date       time.Time
	Outcome    string
	PnLPct     float64
	Notes      string
}

// Strategy is a saved trading plan plus its verification progress.
type Strategy struct {
	ID           string
	Name         string
	Description  string
	EntryRules   string
	ExitRules    string
	RiskPerTrade float64
	Timeframe    string
	Verification Verification
	Backtests    []BacktestResult
}

// New creates an unverified strategy. Name, entry rules and exit rules are
// required.
func New(name, description, entryRules, exitRules string, riskPerTrade float64, timeframe string) (Strategy, error) {
	if name == "" {
		return Strategy{}, fmt.Errorf("strategy name is required")
	}
	if entryRules == "" {
		return Strategy{}, fmt.Errorf("entry rules are required")
	}
	if exitRules == "" {
		return Strategy{}, fmt.Errorf("exit rules are required")
	}

	return Strategy{
		ID:           id.New(),
		Name:         name,
		Description:  description,
		EntryRules:   entryRules,
		ExitRules:    exitRules,
		RiskPerTrade: riskPerTrade,
		Timeframe:    timeframe,
	}, nil
}

// SubmitBacktest appends a backtest result and advances verification in one
// step: there is no intermediate state where the count has crossed the
// threshold but the strategy is not yet verified. The receiver's strategy is
// not mutated; the caller persists the returned copy atomically.
//
// Verified strategies are immutable to further backtests and return
// *RejectedError, leaving the strategy unchanged.
func SubmitBacktest(s Strategy, r BacktestResult) (Strategy, error) {
	if s.Verification.Verified() {
		return Strategy{}, &RejectedError{StrategyID: s.ID, Name: s.Name}
	}

	var bad []string
	if !validPrice(r.EntryPrice) {
		bad = append(bad, "entryPrice")
	}
	if !validPrice(r.ExitPrice) {
		bad = append(bad, "exitPrice")
	}
	if r.Date.IsZero() {
		bad = append(bad, "date")
	}
	if len(bad) > 0 {
		return Strategy{}, &ValidationError{Fields: bad}
	}

	if r.ID == "" {
		r.ID = id.New()
	}

	backtests := make([]BacktestResult, len(s.Backtests), len(s.Backtests)+1)
	copy(backtests, s.Backtests)
	s.Backtests = append(backtests, r)
	s.Verification.record()
	return s, nil
}

func validPrice(x float64) bool {
	return x != 0 && !math.IsNaN(x) && !math.IsInf(x, 0)
}
