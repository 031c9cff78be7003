// Package memory hands out fixed-capacity buffers and tracks their release.
package memory

import (
	"github.com/draganm/something/internal/metrics"
	"github.com/draganm/something/internal/models"
)

// DefaultMax is the largest request HeapAllocator grants unless told otherwise.
// It covers the combined buffer, which is twice a line buffer.
const DefaultMax = 2 * models.MaxSizeOfAnything

// Allocator is the interface for obtaining buffers
type Allocator interface {
	// Allocate returns a zero-filled buffer of exactly size bytes.
	// Every request must state why the memory is needed.
	Allocate(size int, reason string) (*Buffer, error)
}

// Buffer is owned, fixed-capacity byte storage
type Buffer struct {
	data    []byte
	reason  string
	release func(*Buffer)
}

// NewBuffer wraps data as a buffer. release, if not nil, runs once on Release.
func NewBuffer(data []byte, reason string, release func(*Buffer)) *Buffer {
	return &Buffer{data: data, reason: reason, release: release}
}

// Cap returns the buffer capacity in bytes, or 0 once released
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Bytes returns the whole backing storage
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reason returns the justification given when the buffer was requested
func (b *Buffer) Reason() string {
	return b.reason
}

// Released reports whether Release has been called
func (b *Buffer) Released() bool {
	return b.data == nil
}

// Release gives the storage back. Calling it more than once is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.data == nil {
		return
	}
	clear(b.data)
	b.data = nil
	if b.release != nil {
		b.release(b)
	}
}

// HeapAllocator allocates buffers on the Go heap, up to Max bytes each
type HeapAllocator struct {
	Max int

	live      int
	liveBytes int
}

// NewHeapAllocator creates an allocator refusing requests above limit
func NewHeapAllocator(limit int) *HeapAllocator {
	if limit <= 0 {
		limit = DefaultMax
	}
	return &HeapAllocator{Max: limit}
}

// Allocate implements Allocator
func (a *HeapAllocator) Allocate(size int, reason string) (*Buffer, error) {
	var err error
	switch {
	case size <= 0:
		err = newAllocationError(size, reason, ErrInvalidSize)
	case size > a.Max:
		err = newAllocationError(size, reason, ErrSizeExceedsMaximum)
	}
	metrics.RecordAllocation(size, err)
	if err != nil {
		return nil, err
	}

	a.live++
	a.liveBytes += size
	return NewBuffer(make([]byte, size), reason, func(*Buffer) {
		a.live--
		a.liveBytes -= size
		metrics.LiveBuffers.Dec()
	}), nil
}

// Live returns the number of buffers handed out and not yet released
func (a *HeapAllocator) Live() int {
	return a.live
}

// LiveBytes returns the capacity of all unreleased buffers
func (a *HeapAllocator) LiveBytes() int {
	return a.liveBytes
}
