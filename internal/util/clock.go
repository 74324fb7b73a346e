package util

import (
	"sync"
	"time"
)

type Clock interface {
	NowUtc() time.Time
}

type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (c *RealClock) NowUtc() time.Time {
	return time.Now().UTC()
}

type StubClock struct {
	now  time.Time
	lock sync.Mutex
}

func NewStubClock() *StubClock {
	clock := &StubClock{}
	clock.UpdateNow()
	return clock
}

func (c *StubClock) NowUtc() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *StubClock) SetNow(now time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = now.UTC()
}

// Advance moves the stub forward by d and returns the new time.
func (c *StubClock) Advance(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (c *StubClock) UpdateNow() time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	c.SetNow(now)
	return now
}

// OneMonthAgo returns midnight, in now's location, of the same day-of-month one
// calendar month before now. The store passes NowUtc, so that is UTC midnight. Overflowing days roll forward (March 31 -> March 3).
func OneMonthAgo(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, now.Location())
}
