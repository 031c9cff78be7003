package memory

// MockAllocator is a mock implementation of the Allocator interface for testing
type MockAllocator struct {
	// Configurable behavior
	AllocateFunc func(size int, reason string) (*Buffer, error)

	// Requests records every call in order
	Requests []Request
}

// Request is a single recorded allocation call
type Request struct {
	Size   int
	Reason string
}

// NewMockAllocator creates a mock that behaves like an unbounded heap
func NewMockAllocator() *MockAllocator {
	return &MockAllocator{}
}

// Allocate records the request and delegates to AllocateFunc if set
func (m *MockAllocator) Allocate(size int, reason string) (*Buffer, error) {
	m.Requests = append(m.Requests, Request{Size: size, Reason: reason})
	if m.AllocateFunc != nil {
		return m.AllocateFunc(size, reason)
	}
	if size <= 0 {
		return nil, newAllocationError(size, reason, ErrInvalidSize)
	}
	return NewBuffer(make([]byte, size), reason, nil), nil
}
