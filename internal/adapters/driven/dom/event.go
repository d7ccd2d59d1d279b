package dom

import "github.com/custodia-labs/hovertip/internal/core/domain"

// Ensure Event implements the interface.
var _ domain.Event = (*Event)(nil)

// Event is a synthetic pointer or click event.
type Event struct {
	// Client is the pointer position in viewport coordinates.
	Client domain.Point

	// DefaultPrevented is set when a handler cancels the default action.
	DefaultPrevented bool

	// PropagationStopped is set when a handler stops propagation.
	PropagationStopped bool
}

// NewEvent creates an event at viewport position (x, y).
func NewEvent(x, y int) *Event {
	return &Event{Client: domain.Point{X: x, Y: y}}
}

// ClientPosition implements domain.Event.
func (e *Event) ClientPosition() domain.Point {
	return e.Client
}

// Suppress implements domain.Event.
func (e *Event) Suppress() {
	e.DefaultPrevented = true
	e.PropagationStopped = true
}
