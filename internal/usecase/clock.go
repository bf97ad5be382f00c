package usecase

import "time"

// Clock supplies the current time. The "today" queue is computed in the
// location of the returned time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the local wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always returns t.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
