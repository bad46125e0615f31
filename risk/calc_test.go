package risk

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateReferenceCase(t *testing.T) {
	t.Parallel()

	// 50-pip stop, 2% of 10000: risk 200, pip value 4, 0.40 lots;
	// 100-pip target doubles the risk for RR 2.0.
	acct := AccountSnapshot{Balance: 10000, Currency: "USD"}
	in := Inputs{
		RiskPercentage: 2,
		EntryPrice:     1.1000,
		StopLoss:       1.0950,
		TakeProfit:     1.1100,
		Pair:           "EUR/USD",
	}

	res, err := Calculate(acct, in)
	require.NoError(t, err)

	assert.InDelta(t, 200.0, res.RiskAmount, 1e-6)
	assert.InDelta(t, 50.0, res.StopPips, 1e-6)
	assert.InDelta(t, 4.0, res.PipValue, 1e-6)
	assert.InDelta(t, 0.40, res.LotSize, 1e-6)
	assert.InDelta(t, 200.0, res.PotentialLoss, 1e-6)
	assert.InDelta(t, 100.0, res.TargetPips, 1e-6)
	assert.InDelta(t, 400.0, res.PotentialProfit, 1e-6)
	assert.InDelta(t, 2.0, res.RiskRewardRatio, 1e-6)
}

func TestCalculateYenPairUsesTablePipValue(t *testing.T) {
	t.Parallel()

	acct := AccountSnapshot{Balance: 10000}
	in := Inputs{
		RiskPercentage: 2,
		EntryPrice:     1.1000,
		StopLoss:       1.0950,
		TakeProfit:     1.1100,
		Pair:           "USD/JPY",
	}

	res, err := Calculate(acct, in)
	require.NoError(t, err)

	// Same pip value per pip of risk, but lot size divides by 9.30 not 10.
	assert.InDelta(t, 4.0/9.30, res.LotSize, 1e-9)
}

func TestCalculateUnknownPairFallsBack(t *testing.T) {
	t.Parallel()

	acct := AccountSnapshot{Balance: 10000}
	in := Inputs{
		RiskPercentage: 2,
		EntryPrice:     1.1000,
		StopLoss:       1.0950,
		TakeProfit:     1.1100,
		Pair:           "EUR/GBP",
	}

	res, err := Calculate(acct, in)
	require.NoError(t, err)
	assert.InDelta(t, 0.40, res.LotSize, 1e-9)
}

func TestCalculateValidationNamesEveryBadField(t *testing.T) {
	t.Parallel()

	acct := AccountSnapshot{Balance: 0}
	in := Inputs{
		RiskPercentage: math.NaN(),
		EntryPrice:     1.1,
		StopLoss:       0,
		TakeProfit:     1.12,
	}

	_, err := Calculate(acct, in)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"balance", "riskPercentage", "stopLoss"}, verr.Fields)
}

func TestCalculateZeroDistanceStop(t *testing.T) {
	t.Parallel()

	acct := AccountSnapshot{Balance: 10000}
	in := Inputs{
		RiskPercentage: 2,
		EntryPrice:     1.1000,
		StopLoss:       1.1000,
		TakeProfit:     1.1100,
		Pair:           "EUR/USD",
	}

	_, err := Calculate(acct, in)
	require.Error(t, err)

	var derr *DegenerateInputError
	assert.True(t, errors.As(err, &derr))

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "degenerate input is not a validation error")
}

func TestCalculateNoPartialResultOnError(t *testing.T) {
	t.Parallel()

	res, err := Calculate(AccountSnapshot{}, Inputs{})
	require.Error(t, err)
	assert.Equal(t, Result{}, res)
}

func TestResultRounded(t *testing.T) {
	t.Parallel()

	res := Result{LotSize: 0.40444, RiskRewardRatio: 1.99999, PotentialProfit: 399.996}
	r := res.Rounded()
	assert.InDelta(t, 0.40, r.LotSize, 1e-12)
	assert.InDelta(t, 2.00, r.RiskRewardRatio, 1e-12)
	assert.InDelta(t, 400.0, r.PotentialProfit, 1e-12)
}
