package memory

import "github.com/draganm/something/internal/metrics"

// FailingAllocator refuses the Nth request (1-based) and delegates the rest
type FailingAllocator struct {
	Allocator Allocator
	FailOn    int

	count int
}

// NewFailingAllocator wraps next so that request number failOn is refused.
// A failOn of 0 or less never fails.
func NewFailingAllocator(next Allocator, failOn int) *FailingAllocator {
	return &FailingAllocator{Allocator: next, FailOn: failOn}
}

// Allocate implements Allocator
func (f *FailingAllocator) Allocate(size int, reason string) (*Buffer, error) {
	f.count++
	if f.FailOn > 0 && f.count == f.FailOn {
		err := newAllocationError(size, reason, ErrRefused)
		metrics.RecordAllocation(size, err)
		return nil, err
	}
	return f.Allocator.Allocate(size, reason)
}
