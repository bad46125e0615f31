// journal/trade.go
package journal

import (
	"fmt"
	"math"
	"time"

	"github.com/rwyatt/fxjournal/market"
	"github.com/rwyatt/fxjournal/pkg/id"
)

type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// CloseReasons is the fixed vocabulary offered when closing a trade.
var CloseReasons = []string{
	"Take Profit Hit",
	"Stop Loss Hit",
	"Manual Close - Profit",
	"Manual Close - Loss",
	"Technical Analysis",
	"News Impact",
	"Risk Management",
}

// RiskRewardLabels is the fixed vocabulary of planned R:R labels.
var RiskRewardLabels = []string{"1:1", "1:2", "1:3", "1:4", "1:5"}

// Trade is one journal entry. It is created open, closed exactly once, and
// never deleted. ExitPrice, ExitTime, CloseReason and RiskRewardRatio are set
// only by Close; StopLoss and TakeProfit are nil when the trader did not set
// them.
type Trade struct {
	ID         string
	Pair       string
	Direction  Direction
	EntryPrice float64
	LotSize    float64
	StopLoss   *float64
	TakeProfit *float64
	EntryTime  time.Time
	Notes      string

	Status          Status
	ExitPrice       *float64
	ExitTime        time.Time
	CloseReason     string
	RiskRewardRatio string
}

// Open creates a new open trade with a fresh ID and the given entry time.
func Open(pair string, dir Direction, entry, lots float64, now time.Time) (Trade, error) {
	if pair == "" {
		return Trade{}, fmt.Errorf("pair is required")
	}
	if !market.ValidPair(pair) {
		return Trade{}, fmt.Errorf("pair %q is not a supported instrument", pair)
	}
	if dir != Buy && dir != Sell {
		return Trade{}, fmt.Errorf("direction must be %s or %s", Buy, Sell)
	}
	if !isFinite(entry) || entry <= 0 {
		return Trade{}, fmt.Errorf("entry price must be a positive number")
	}
	if !isFinite(lots) || lots <= 0 {
		return Trade{}, fmt.Errorf("lot size must be a positive number")
	}

	return Trade{
		ID:         id.New(),
		Pair:       pair,
		Direction:  dir,
		EntryPrice: entry,
		LotSize:    lots,
		EntryTime:  now,
		Status:     StatusOpen,
	}, nil
}

// CloseRequest carries everything the close form requires. All three of
// ExitPrice, Reason and RiskReward are mandatory.
type CloseRequest struct {
	ExitPrice  float64
	Reason     string
	RiskReward string
	ExitTime   time.Time
}

// Close returns a closed copy of the trade. The receiver is not mutated;
// the caller persists the returned record.
func (t Trade) Close(req CloseRequest) (Trade, error) {
	if t.Status == StatusClosed {
		return Trade{}, fmt.Errorf("trade %s is already closed", t.ID)
	}
	if !isFinite(req.ExitPrice) || req.ExitPrice <= 0 {
		return Trade{}, fmt.Errorf("exit price must be a positive number")
	}
	if req.Reason == "" {
		return Trade{}, fmt.Errorf("close reason is required")
	}
	if req.RiskReward == "" {
		return Trade{}, fmt.Errorf("risk/reward label is required")
	}

	exit := req.ExitPrice
	t.Status = StatusClosed
	t.ExitPrice = &exit
	t.ExitTime = req.ExitTime
	t.CloseReason = req.Reason
	t.RiskRewardRatio = req.RiskReward
	return t, nil
}

// ValidCloseReason reports whether the reason is in the fixed vocabulary.
func ValidCloseReason(reason string) bool {
	for _, r := range CloseReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// ValidRiskReward reports whether the label is in the fixed vocabulary.
func ValidRiskReward(label string) bool {
	for _, r := range RiskRewardLabels {
		if r == label {
			return true
		}
	}
	return false
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
