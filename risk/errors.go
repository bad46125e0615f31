package risk

import (
	"fmt"
	"strings"
)

// ValidationError reports the missing or non-numeric input fields. Every bad
// field is collected and named; nothing is computed when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// DegenerateInputError marks inputs that make the computation mathematically
// undefined, as opposed to merely malformed. The canonical case is a
// zero-distance stop: risk cannot be sized against it.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s", e.Reason)
}
