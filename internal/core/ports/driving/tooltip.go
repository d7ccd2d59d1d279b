package driving

import "github.com/custodia-labs/hovertip/internal/core/domain"

// Tooltip controls the annotation of one host element.
// The operations are wired to host events at construction and may also
// be called directly. None of them report errors.
type Tooltip interface {
	// Show creates and attaches the annotation at the event position.
	// No-op while pinned.
	Show(e domain.Event)

	// Hide detaches and discards the annotation.
	// No-op while pinned or when nothing is shown.
	Hide()

	// Move repositions the annotation to the event position.
	// No-op while pinned, when follow is disabled or when nothing is shown.
	Move(e domain.Event)

	// TogglePin flips the pinned flag and suppresses the event.
	TogglePin(e domain.Event)

	// State returns the current state.
	State() domain.State

	// Pinned reports whether the tooltip is pinned.
	Pinned() bool

	// Config returns the resolved configuration.
	Config() domain.Config

	// AnnotationID returns the identifier of the displayed annotation.
	// Returns false when hidden.
	AnnotationID() (string, bool)
}

// TooltipRegistry attaches tooltips to the elements of one document.
type TooltipRegistry interface {
	// Attach constructs a tooltip for opts.ElementID.
	// Returns an error wrapping domain.ErrHostNotFound if the host is missing
	// and domain.ErrAlreadyExists if the host already has a tooltip.
	Attach(opts domain.Options) (Tooltip, error)

	// Get returns the tooltip bound to an element.
	Get(elementID string) (Tooltip, bool)

	// List returns all tooltips in attach order.
	List() []Tooltip
}
