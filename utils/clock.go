package utils

import "time"

// Clock tells the current time. Services take one so that tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystemClock returns a clock backed by time.Now in UTC
func NewSystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// NewFixedClock returns a clock that always reports t
func NewFixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}
