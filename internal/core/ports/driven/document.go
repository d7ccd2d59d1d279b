package driven

import "github.com/custodia-labs/hovertip/internal/core/domain"

// Document is the live page a tooltip mutates.
// Implementations are not required to be safe for concurrent use; callers
// deliver every event and timer callback on a single logical UI thread.
type Document interface {
	// ElementByID resolves a host element by identifier.
	// Returns false if no such element exists.
	ElementByID(id string) (HostElement, bool)

	// CreateAnnotation creates a detached annotation element.
	CreateAnnotation() Annotation

	// Attach inserts the annotation into the page.
	Attach(a Annotation)

	// Detach removes the annotation from the page.
	// Detaching an annotation that is not attached is a no-op.
	Detach(a Annotation)

	// ScrollReadings returns the page scroll offsets in preference order:
	// window, root element, body element.
	ScrollReadings() []domain.ScrollReading
}

// Handler receives events registered on a host element.
type Handler func(e domain.Event)

// HostElement is a page element a tooltip binds to.
type HostElement interface {
	// ID returns the element identifier.
	ID() string

	// On registers a handler for the given event kind.
	On(kind domain.EventKind, h Handler)
}

// Annotation is the floating element that displays tooltip content.
type Annotation interface {
	// ID returns the annotation element identifier.
	ID() string

	// SetClass assigns the style class name.
	SetClass(class string)

	// SetContent assigns the displayed text or markup.
	SetContent(content string)

	// SetVisible toggles visibility without detaching.
	SetVisible(visible bool)

	// MoveTo positions the top-left corner at an absolute page position.
	MoveTo(p domain.Point)
}
