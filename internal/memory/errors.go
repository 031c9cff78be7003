package memory

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrAllocationFailure indicates that a buffer could not be obtained
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrInvalidSize indicates a zero or negative size request
	ErrInvalidSize = errors.New("invalid size")

	// ErrSizeExceedsMaximum indicates a request larger than the allocator allows
	ErrSizeExceedsMaximum = errors.New("size exceeds maximum")

	// ErrRefused indicates the allocator declined the request on purpose
	ErrRefused = errors.New("allocation refused")
)

// AllocationError describes a failed allocation request
type AllocationError struct {
	Size   int
	Reason string
	Err    error
}

// Error implements the error interface
func (e *AllocationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: cannot allocate %d bytes %q: %v", ErrAllocationFailure, e.Size, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: cannot allocate %d bytes: %v", ErrAllocationFailure, e.Size, e.Err)
}

// Unwrap exposes both the cause and the allocation failure sentinel
func (e *AllocationError) Unwrap() []error {
	return []error{ErrAllocationFailure, e.Err}
}

// IsAllocationFailure checks if the error indicates a buffer could not be obtained
func IsAllocationFailure(err error) bool {
	return errors.Is(err, ErrAllocationFailure)
}

// IsSizeExceedsMaximum checks if the error is due to an oversized request
func IsSizeExceedsMaximum(err error) bool {
	return errors.Is(err, ErrSizeExceedsMaximum)
}

func newAllocationError(size int, reason string, err error) *AllocationError {
	return &AllocationError{Size: size, Reason: reason, Err: err}
}
