package workflow

import (
	"fmt"
)

// InvalidInputError reports a structurally invalid argument: wrong persona
// pair arity, duplicate personas, or a persona outside the session's
// selected pair. The message names the offending value.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

func invalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
