package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a clock that only moves when told to
// Loop tests pair it with a scripted event source: an expired input wait advances the
// clock by the requested timeout, an instant event leaves it untouched, so ball ticks
// fire exactly when the deadlines say
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t; moving backwards leaves every deadline further away
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance stands in for a wait of d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
