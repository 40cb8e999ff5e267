package reveal

import "time"

// Timer is a handle to a single scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// Clock schedules callbacks. The engine never sleeps; every transition is a
// callback scheduled through a Clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by time.AfterFunc. Callbacks run on their
// own goroutines.
func RealClock() Clock {
	return realClock{}
}
