package dom

import (
	"strings"

	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
)

// Ensure Element implements the interface.
var _ driven.HostElement = (*Element)(nil)

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p domain.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Element is a host element with text content and page bounds.
type Element struct {
	id     string
	text   string
	link   string
	bounds Rect

	listeners map[domain.EventKind][]driven.Handler
}

// ID implements driven.HostElement.
func (e *Element) ID() string {
	return e.id
}

// On implements driven.HostElement.
func (e *Element) On(kind domain.EventKind, h driven.Handler) {
	e.listeners[kind] = append(e.listeners[kind], h)
}

// Text returns the element text.
func (e *Element) Text() string {
	return e.text
}

// Lines returns the element text split into lines.
func (e *Element) Lines() []string {
	return strings.Split(e.text, "\n")
}

// Link returns the navigation target of the element, if any.
// A click whose default action is not prevented follows it.
func (e *Element) Link() string {
	return e.link
}

// Bounds returns the element box in page coordinates.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// Listeners returns the number of handlers registered for kind.
func (e *Element) Listeners(kind domain.EventKind) int {
	return len(e.listeners[kind])
}

// dispatch runs every handler registered for kind in registration order.
func (e *Element) dispatch(kind domain.EventKind, ev *Event) {
	for _, h := range e.listeners[kind] {
		h(ev)
	}
}
