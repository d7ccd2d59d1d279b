package timer

import "sync"

// Loop serialises work so that host events and timer callbacks never run
// concurrently. Headless adapters use it in place of a UI thread.
// Do must not be called from inside a function already running on the loop.
type Loop struct {
	mu sync.Mutex
}

// Do runs fn on the loop.
func (l *Loop) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}
