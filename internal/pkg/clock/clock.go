package clock

import "time"

// Clock supplies the current instant to services, so business logic never
// reads the wall clock directly and tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystemClock returns a Clock backed by the system wall clock (UTC).
func NewSystemClock() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to an instant, for tests. Mutate Instant to
// advance it.
type Fixed struct {
	Instant time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}
