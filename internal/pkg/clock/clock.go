// Package clock abstracts time so the workflow's generated dates can be
// pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System is the production clock backed by time.Now.
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	Instant time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{Instant: t}
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
