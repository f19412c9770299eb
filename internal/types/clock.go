package types

import "time"

// Clock abstracts wall-clock reads and the simulated network latency sleeps so
// services stay deterministic under test. The real implementation is the only
// place the process touches time directly.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

// NewRealClock returns a Clock backed by the system clock. Now always returns
// UTC so date math is location independent.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
