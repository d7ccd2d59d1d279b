package mcp

import (
	"github.com/custodia-labs/hovertip/internal/adapters/driven/dom"
	"github.com/custodia-labs/hovertip/internal/adapters/driven/timer"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document is the headless page.
	Document *dom.Document

	// Tooltips holds the tooltips attached to Document.
	Tooltips driving.TooltipRegistry

	// Loop serialises tool calls with timer callbacks. Schedulers feeding
	// Tooltips must dispatch through the same loop.
	Loop *timer.Loop
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocument
	}
	if p.Tooltips == nil {
		return ErrMissingTooltips
	}
	if p.Loop == nil {
		return ErrMissingLoop
	}
	return nil
}
