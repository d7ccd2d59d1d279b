package timer

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
)

// Ensure Clock implements the interface.
var _ driven.Scheduler = (*Clock)(nil)

// Clock schedules callbacks on a clockwork clock.
// Fired callbacks are not run on the timer goroutine; they are passed to
// the dispatch function, which must run them on the UI thread.
type Clock struct {
	clock    clockwork.Clock
	dispatch func(func())
}

// NewClock creates a Clock. A nil clock uses the real wall clock; a nil
// dispatch runs callbacks directly on the timer goroutine.
func NewClock(clock clockwork.Clock, dispatch func(func())) *Clock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	return &Clock{clock: clock, dispatch: dispatch}
}

// AfterFunc implements driven.Scheduler.
func (c *Clock) AfterFunc(d time.Duration, fn func()) {
	c.clock.AfterFunc(d, func() {
		c.dispatch(fn)
	})
}

// Channel returns a dispatch function that queues callbacks on ch, and
// is the usual bridge into an event loop that drains ch.
func Channel(ch chan<- func()) func(func()) {
	return func(fn func()) {
		ch <- fn
	}
}
