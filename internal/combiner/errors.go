package combiner

import (
	"errors"
	"fmt"

	"github.com/draganm/something/internal/models"
)

// FailureError ends a run. Diagnostic is printed as is before exiting with Status.
type FailureError struct {
	State      models.State
	Diagnostic string
	Status     models.Existence
	Score      models.Existence
	Err        error
}

// Error implements the error interface
func (e *FailureError) Error() string {
	return fmt.Sprintf("combiner failed in state %s (status %d, score %d): %v", e.State, e.Status, e.Score, e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// AsFailure extracts a FailureError from err
func AsFailure(err error) (*FailureError, bool) {
	var fe *FailureError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
