// Package clock supplies the current time to code that stamps bookings and
// status events.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// NewRealClock reports wall-clock time in UTC.
func NewRealClock() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Fixed always reports the same instant until moved with Advance.
type Fixed struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
