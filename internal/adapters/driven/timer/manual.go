package timer

import (
	"sort"
	"time"

	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
)

// Ensure Manual implements the interface.
var _ driven.Scheduler = (*Manual)(nil)

// Manual is a virtual clock. Callbacks run synchronously inside Advance,
// in deadline order, ties broken by scheduling order.
type Manual struct {
	now     time.Duration
	seq     int
	pending []manualTimer
}

type manualTimer struct {
	deadline time.Duration
	seq      int
	fn       func()
}

// NewManual creates a virtual clock at elapsed time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements driven.Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	m.seq++
	m.pending = append(m.pending, manualTimer{
		deadline: m.now + max(d, 0),
		seq:      m.seq,
		fn:       fn,
	})
}

// Advance moves the clock forward by d and runs every callback that
// becomes due, including callbacks scheduled by those callbacks.
// Returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + max(d, 0)
	fired := 0

	for {
		next, ok := m.popDue(target)
		if !ok {
			break
		}
		m.now = next.deadline
		next.fn()
		fired++
	}

	m.now = target
	return fired
}

// popDue removes and returns the earliest timer due at or before target.
func (m *Manual) popDue(target time.Duration) (manualTimer, bool) {
	if len(m.pending) == 0 {
		return manualTimer{}, false
	}

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].deadline != m.pending[j].deadline {
			return m.pending[i].deadline < m.pending[j].deadline
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	if m.pending[0].deadline > target {
		return manualTimer{}, false
	}

	next := m.pending[0]
	m.pending = m.pending[1:]
	return next, true
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Elapsed returns the virtual time since creation.
func (m *Manual) Elapsed() time.Duration {
	return m.now
}
