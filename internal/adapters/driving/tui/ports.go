// Package tui provides an interactive terminal page whose elements carry
// hover tooltips. It implements a driving adapter following hexagonal
// architecture principles: terminal mouse input becomes host events on a
// dom.Document and attached annotations are drawn over the page.
package tui

import (
	"fmt"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
)

// Loader rebuilds the page and its tooltips, typically from a page file.
type Loader func() (*dom.Document, driving.TooltipRegistry, error)

// Ports aggregates everything the TUI drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document is the page rendered and hit tested.
	Document *dom.Document

	// Tooltips holds the tooltips attached to Document.
	Tooltips driving.TooltipRegistry

	// Timers delivers scheduled callbacks. Every scheduler feeding the
	// registry must dispatch onto this channel so callbacks run on the
	// update loop.
	Timers <-chan func()

	// Reload rebuilds the page. Optional.
	Reload Loader

	// WatchPath is a page file whose writes trigger Reload. Optional.
	WatchPath string

	// Markdown renders tooltip content as markdown.
	Markdown bool
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocument
	}
	if p.Tooltips == nil {
		return ErrMissingTooltips
	}
	if p.Timers == nil {
		return ErrMissingTimers
	}
	if p.WatchPath != "" && p.Reload == nil {
		return fmt.Errorf("%w: watching %s without a reload function", ErrInvalidPorts, p.WatchPath)
	}
	return nil
}
