package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationCodes(d Decision) []string {
	codes := make([]string, 0, len(d.Violations))
	for _, v := range d.Violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func TestEvaluateAllowed(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	in := Inputs{RiskPercentage: 1.0}
	res := Result{RiskRewardRatio: 2.0, LotSize: 0.4}

	d := Evaluate(p, in, res)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Violations)
}

func TestEvaluateRiskOverDefault(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy() // default 1%, max 2%
	in := Inputs{RiskPercentage: 1.5}
	res := Result{RiskRewardRatio: 2.0}

	d := Evaluate(p, in, res)
	assert.False(t, d.Allowed)
	assert.Equal(t, []string{"RISK_OVER_DEFAULT"}, violationCodes(d))
}

func TestEvaluateRiskTooHigh(t *testing.T) {
	t.Parallel()

	p := DefaultPolicy()
	in := Inputs{RiskPercentage: 3.0}
	res := Result{RiskRewardRatio: 2.0}

	d := Evaluate(p, in, res)
	require.False(t, d.Allowed)
	codes := violationCodes(d)
	assert.Contains(t, codes, "RISK_TOO_HIGH")
	assert.NotContains(t, codes, "RISK_OVER_DEFAULT", "hard cap subsumes the override warning")
}

func TestEvaluateCollectsMultiple(t *testing.T) {
	t.Parallel()

	p := Policy{DefaultRiskPct: 1, MaxRiskPct: 2, MinRR: 1.5, MaxLotSize: 0.5}
	in := Inputs{RiskPercentage: 3.0}
	res := Result{RiskRewardRatio: 1.0, LotSize: 1.2}

	d := Evaluate(p, in, res)
	assert.False(t, d.Allowed)
	assert.ElementsMatch(t,
		[]string{"RISK_TOO_HIGH", "RR_TOO_LOW", "LOT_TOO_LARGE"},
		violationCodes(d))
}

func TestEvaluateLotCapDisabled(t *testing.T) {
	t.Parallel()

	p := Policy{DefaultRiskPct: 1, MaxRiskPct: 2, MinRR: 1.0, MaxLotSize: 0}
	in := Inputs{RiskPercentage: 0.5}
	res := Result{RiskRewardRatio: 1.5, LotSize: 99}

	d := Evaluate(p, in, res)
	assert.True(t, d.Allowed)
}
