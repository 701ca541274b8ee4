package domain

import "time"

// Clock supplies the current wall-clock time to the restaurant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function into a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the process clock in local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
