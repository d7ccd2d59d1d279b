package domain

const unknownDescription = "unknown"

// State is the observable state of a tooltip controller.
type State int

const (
	// StateHidden means no annotation is attached.
	StateHidden State = iota
	// StateVisible means an annotation is attached and tracks pointer events.
	StateVisible
	// StatePinned means pointer driven show, move and hide are suppressed.
	StatePinned
)

// String returns the string representation.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateVisible:
		return "visible"
	case StatePinned:
		return "pinned"
	default:
		return unknownDescription
	}
}

// EventKind identifies a host element event the controller listens to.
type EventKind int

const (
	// EventEnter fires when the pointer enters the host element.
	EventEnter EventKind = iota
	// EventLeave fires when the pointer leaves the host element.
	EventLeave
	// EventMove fires when the pointer moves over the host element.
	EventMove
	// EventClick fires when the host element is clicked.
	EventClick
)

// EventKinds lists every event kind in dispatch order.
var EventKinds = []EventKind{EventEnter, EventLeave, EventMove, EventClick}

// String returns the string representation.
func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventMove:
		return "move"
	case EventClick:
		return "click"
	default:
		return unknownDescription
	}
}

// ParseEventKind parses the string form of an event kind.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range EventKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, ErrUnsupportedType
}

// Event is a pointer or click event supplied by the host environment.
type Event interface {
	// ClientPosition returns the pointer position in viewport coordinates.
	ClientPosition() Point

	// Suppress cancels the event's default action and stops its propagation.
	Suppress()
}
