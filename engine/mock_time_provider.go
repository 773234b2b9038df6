package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-driven clock for tests
// Lock-free so a running sweep task can read it while the test advances it
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // Nanoseconds past base
}

// NewMockTimeProvider creates a mock clock reading startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps the clock to t, earlier times are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

// Advance moves the clock forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return m.base.Add(time.Duration(m.offset.Add(int64(d))))
}
