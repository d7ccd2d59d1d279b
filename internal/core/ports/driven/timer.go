package driven

import "time"

// Scheduler runs one-shot deferred callbacks.
// Callbacks must be delivered on the same logical thread as host events.
// There is no cancellation: a callback that fires late must be harmless.
type Scheduler interface {
	// AfterFunc calls fn once after delay d.
	AfterFunc(d time.Duration, fn func())
}
