// Package risk sizes positions from an account snapshot and proposed trade
// levels, and checks sized trades against a risk policy. Every calculation is
// independent; nothing here holds state between calls.
package risk

import (
	"math"

	"github.com/rwyatt/fxjournal/market"
)

// AccountSnapshot is the read-only account state the calculator works from.
// It is supplied by the caller (profile/config); the engine never writes it.
type AccountSnapshot struct {
	Balance     float64
	Currency    string
	Leverage    string
	MarginLevel float64
	Equity      float64
	ProfitLoss  float64
}

// Inputs are the user-entered trade parameters.
type Inputs struct {
	RiskPercentage float64
	EntryPrice     float64
	StopLoss       float64
	TakeProfit     float64
	Pair           string
}

// Result is a complete sizing projection. PotentialLoss equals RiskAmount by
// construction: the lot size is chosen so the stop caps loss at the risked
// amount.
type Result struct {
	LotSize         float64
	PipValue        float64
	RiskAmount      float64
	StopPips        float64
	TargetPips      float64
	PotentialLoss   float64
	PotentialProfit float64
	RiskRewardRatio float64
}

// pipsPerPrice converts a 4-decimal price distance into pips.
const pipsPerPrice = 10000

// Calculate validates the inputs and produces a sizing projection, or an
// error and no result. Validation failures come back as *ValidationError
// naming every offending field; entry == stop comes back as
// *DegenerateInputError rather than leaking Inf or NaN.
func Calculate(acct AccountSnapshot, in Inputs) (Result, error) {
	var bad []string
	if !finite(acct.Balance) || acct.Balance <= 0 {
		bad = append(bad, "balance")
	}
	if !finite(in.RiskPercentage) || in.RiskPercentage <= 0 {
		bad = append(bad, "riskPercentage")
	}
	if !finite(in.EntryPrice) || in.EntryPrice <= 0 {
		bad = append(bad, "entryPrice")
	}
	if !finite(in.StopLoss) || in.StopLoss <= 0 {
		bad = append(bad, "stopLoss")
	}
	if !finite(in.TakeProfit) || in.TakeProfit <= 0 {
		bad = append(bad, "takeProfit")
	}
	if len(bad) > 0 {
		return Result{}, &ValidationError{Fields: bad}
	}

	stopPips := math.Abs(in.EntryPrice-in.StopLoss) * pipsPerPrice
	if stopPips == 0 {
		return Result{}, &DegenerateInputError{Reason: "entry price equals stop loss"}
	}

	riskAmount := acct.Balance * in.RiskPercentage / 100
	pipValue := riskAmount / stopPips
	lotSize := pipValue / market.PipValue(in.Pair)

	targetPips := math.Abs(in.TakeProfit-in.EntryPrice) * pipsPerPrice
	potentialProfit := targetPips * pipValue

	return Result{
		LotSize:         lotSize,
		PipValue:        pipValue,
		RiskAmount:      riskAmount,
		StopPips:        stopPips,
		TargetPips:      targetPips,
		PotentialLoss:   riskAmount,
		PotentialProfit: potentialProfit,
		RiskRewardRatio: potentialProfit / riskAmount,
	}, nil
}

// Rounded returns a presentation copy with money and ratio fields at 2
// decimals.
func (r Result) Rounded() Result {
	r.LotSize = round2(r.LotSize)
	r.PipValue = round2(r.PipValue)
	r.RiskAmount = round2(r.RiskAmount)
	r.StopPips = round2(r.StopPips)
	r.TargetPips = round2(r.TargetPips)
	r.PotentialLoss = round2(r.PotentialLoss)
	r.PotentialProfit = round2(r.PotentialProfit)
	r.RiskRewardRatio = round2(r.RiskRewardRatio)
	return r
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
