package engine

import "time"

// Deadline is a named point in time the loop waits for
type Deadline struct {
	name string
	at   time.Time
}

// NewDeadline creates a deadline due at t
func NewDeadline(name string, t time.Time) Deadline {
	return Deadline{name: name, at: t}
}

// Due reports whether now has reached the deadline
func (d Deadline) Due(now time.Time) bool {
	return !now.Before(d.at)
}

// Remaining returns the time left until the deadline, never negative
func (d Deadline) Remaining(now time.Time) time.Duration {
	return max(d.at.Sub(now), 0)
}

// At returns the deadline instant
func (d Deadline) At() time.Time {
	return d.at
}

// Set moves the deadline
func (d *Deadline) Set(t time.Time) {
	d.at = t
}

func (d Deadline) String() string {
	return d.name + "@" + d.at.Format("15:04:05.000")
}

// Earliest returns whichever deadline comes first
func Earliest(a, b Deadline) Deadline {
	if b.at.Before(a.at) {
		return b
	}
	return a
}
