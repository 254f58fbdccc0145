// Package latency provides pluggable delay strategies used to simulate the
// round-trip time of a remote backend.
package latency

import "time"

// Strategy blocks the caller for some amount of time. Waits cannot be cancelled.
type Strategy interface {
	Wait()
}

type fixed struct {
	d time.Duration
}

// Fixed returns a strategy that sleeps for d on every call.
func Fixed(d time.Duration) Strategy {
	if d <= 0 {
		return None()
	}
	return fixed{d: d}
}

func (f fixed) Wait() {
	time.Sleep(f.d)
}

type none struct{}

// None returns a strategy that never waits.
func None() Strategy {
	return none{}
}

func (none) Wait() {}
