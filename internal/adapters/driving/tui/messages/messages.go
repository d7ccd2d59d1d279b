// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// TimerFired carries a scheduled callback onto the update loop.
type TimerFired struct {
	Fn func()
}

// PageChanged is sent when the watched page file is written.
type PageChanged struct{}

// WatchStopped is sent when the page watcher can no longer deliver changes.
type WatchStopped struct {
	Err error
}

// LinkFollowed is sent when a click on a link element is not suppressed.
type LinkFollowed struct {
	ElementID string
	Href      string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
