package strategy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() BacktestResult {
	return BacktestResult{
		EntryPrice: 1.1000,
		ExitPrice:  1.1050,
		Date:       time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Outcome:    "Win",
		PnLPct:     1.2,
	}
}

func newStrategy(t *testing.T) Strategy {
	t.Helper()
	s, err := New("London Breakout", "asia range break", "break of range high", "opposite side or 2R", 1.0, "H1")
	require.NoError(t, err)
	return s
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New("", "", "entry", "exit", 1, "H1")
	assert.Error(t, err)
	_, err = New("name", "", "", "exit", 1, "H1")
	assert.Error(t, err)
	_, err = New("name", "", "entry", "", 1, "H1")
	assert.Error(t, err)
}

func TestNewStartsUnverified(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Verification.Verified())
	assert.Zero(t, s.Verification.Count())
	assert.Empty(t, s.Backtests)
}

func TestSubmitBacktest(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)

	updated, err := SubmitBacktest(s, validResult())
	require.NoError(t, err)

	assert.Equal(t, 1, updated.Verification.Count())
	require.Len(t, updated.Backtests, 1)
	assert.NotEmpty(t, updated.Backtests[0].ID)
	assert.False(t, updated.Verification.Verified())

	// Original unchanged: the caller persists the returned copy.
	assert.Zero(t, s.Verification.Count())
	assert.Empty(t, s.Backtests)
}

func TestSubmitBacktestValidation(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)

	r := validResult()
	r.EntryPrice = 0
	r.Date = time.Time{}

	_, err := SubmitBacktest(s, r)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"entryPrice", "date"}, verr.Fields)
}

func TestVerificationLatchesAtThreshold(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	var err error
	for i := 0; i < VerificationThreshold-1; i++ {
		s, err = SubmitBacktest(s, validResult())
		require.NoError(t, err)
	}

	assert.Equal(t, 99, s.Verification.Count())
	assert.False(t, s.Verification.Verified())

	// The 100th submission crosses the threshold and verifies atomically.
	s, err = SubmitBacktest(s, validResult())
	require.NoError(t, err)
	assert.Equal(t, 100, s.Verification.Count())
	assert.True(t, s.Verification.Verified())
	assert.Len(t, s.Backtests, 100)
}

func TestVerifiedRejectsFurtherSubmissions(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	s.Verification = Resume(VerificationThreshold, true)

	before := s
	_, err := SubmitBacktest(s, validResult())
	require.Error(t, err)

	var rerr *RejectedError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, s.ID, rerr.StrategyID)

	// Strategy unchanged by the rejected submission.
	assert.Equal(t, before.Verification.Count(), s.Verification.Count())
	assert.Len(t, s.Backtests, len(before.Backtests))
}

func TestResume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		count        int
		verified     bool
		wantCount    int
		wantVerified bool
	}{
		{"fresh", 0, false, 0, false},
		{"partial", 42, false, 42, false},
		{"at threshold implies verified", 100, false, 100, true},
		{"stored flag honored", 50, true, 50, true},
		{"negative clamped", -3, false, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := Resume(tt.count, tt.verified)
			assert.Equal(t, tt.wantCount, v.Count())
			assert.Equal(t, tt.wantVerified, v.Verified())
		})
	}
}

func TestBacktestCountMatchesResults(t *testing.T) {
	t.Parallel()

	s := newStrategy(t)
	var err error
	for i := 0; i < 7; i++ {
		s, err = SubmitBacktest(s, validResult())
		require.NoError(t, err)
	}
	assert.Equal(t, len(s.Backtests), s.Verification.Count())
}
