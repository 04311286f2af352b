package testutils

import (
	"sync"
	"time"

	"github.com/sarilacivert/matchcenter-service/phase"
)

// FakeClock is a manual time source for phase tests. AfterFunc callbacks
// fire synchronously from Advance, tickers fire from Tick.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	tickers []*FakeTicker
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) phase.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{deadline: c.now.Add(d), f: f}
	c.timers = append(c.timers, timer)

	return timer
}

func (c *FakeClock) NewTicker(d time.Duration) phase.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	ticker := &FakeTicker{ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, ticker)

	return ticker
}

// Advance moves the clock forward and fires every timer whose deadline has
// passed, in registration order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now

	var due []*fakeTimer
	remaining := c.timers[:0]
	for _, timer := range c.timers {
		if !timer.stopped && !timer.deadline.After(now) {
			due = append(due, timer)
			continue
		}
		remaining = append(remaining, timer)
	}
	c.timers = remaining
	c.mu.Unlock()

	for _, timer := range due {
		timer.f()
	}
}

// Tick delivers one tick on every active ticker.
func (c *FakeClock) Tick() {
	c.mu.Lock()
	now := c.now
	tickers := make([]*FakeTicker, len(c.tickers))
	copy(tickers, c.tickers)
	c.mu.Unlock()

	for _, ticker := range tickers {
		ticker.tick(now)
	}
}

type fakeTimer struct {
	deadline time.Time
	f        func()
	stopped  bool
}

func (t *fakeTimer) Stop() bool {
	stopped := t.stopped
	t.stopped = true

	return !stopped
}

type FakeTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (t *FakeTicker) C() <-chan time.Time {
	return t.ch
}

func (t *FakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
}

func (t *FakeTicker) tick(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	select {
	case t.ch <- now:
	default:
	}
}
