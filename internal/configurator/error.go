package configurator

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrSubmissionInFlight     = errors.New("submission already in progress")
)

// ValidationError is a local, pre-submission failure. It blocks the action
// and never reaches the network; the user recovers by editing input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
