package reveal

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced Clock for tests and offline rendering.
// Callbacks run synchronously inside Advance, in deadline order, on the
// caller's goroutine.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	clock *FakeClock
	at    time.Time
	seq   uint64
	fn    func()
}

// NewFakeClock creates a fake clock starting at the given time
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake time
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run once the clock has been advanced by d
func (c *FakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &fakeTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls inside the window, including timers scheduled by those callbacks.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		if next.at.After(c.now) {
			c.now = next.at
		}
		c.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of scheduled timers that have not fired or
// been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// popDueLocked removes and returns the earliest timer due at or before
// target. Ties resolve in scheduling order.
func (c *FakeClock) popDueLocked(target time.Time) *fakeTimer {
	idx := -1
	for i, t := range c.timers {
		if t.at.After(target) {
			continue
		}
		if idx < 0 || t.at.Before(c.timers[idx].at) ||
			(t.at.Equal(c.timers[idx].at) && t.seq < c.timers[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	t := c.timers[idx]
	c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
	return t
}

func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
