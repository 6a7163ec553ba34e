package engine

import "time"

// TimeProvider is the clock the loop reads once at the top of each Step;
// both deadlines are derived from that single reading
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the wall clock; time.Now carries a monotonic reading,
// so deadline arithmetic is unaffected by clock adjustments
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
