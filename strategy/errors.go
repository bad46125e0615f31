package strategy

import (
	"fmt"
	"strings"
)

// RejectedError is returned when a backtest is submitted to a strategy that
// is already verified. Verified is terminal for submissions.
type RejectedError struct {
	StrategyID string
	Name       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("strategy %q is verified and no longer accepts backtests", e.Name)
}

// ValidationError reports the missing required fields of a submitted
// backtest result.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}
