package services

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
	"github.com/custodia-labs/hovertip/internal/logger"
)

// Ensure Registry implements the interface.
var _ driving.TooltipRegistry = (*Registry)(nil)

// Registry attaches tooltips to the elements of one document.
// Each host element carries at most one tooltip.
type Registry struct {
	doc       driven.Document
	scheduler driven.Scheduler

	order []*Controller
	byID  map[string]*Controller
}

// NewRegistry creates a registry for doc. The scheduler is shared by
// every tooltip and may be nil.
func NewRegistry(doc driven.Document, scheduler driven.Scheduler) *Registry {
	return &Registry{
		doc:       doc,
		scheduler: scheduler,
		byID:      make(map[string]*Controller),
	}
}

// Attach implements driving.TooltipRegistry.
func (r *Registry) Attach(opts domain.Options) (driving.Tooltip, error) {
	if _, exists := r.byID[opts.ElementID]; exists && opts.ElementID != "" {
		return nil, fmt.Errorf("tooltip for %q: %w", opts.ElementID, domain.ErrAlreadyExists)
	}

	c, err := NewController(r.doc, r.scheduler, opts)
	if err != nil {
		return nil, err
	}

	r.order = append(r.order, c)
	r.byID[opts.ElementID] = c
	logger.Debug("attached tooltip to %s", opts.ElementID)

	return c, nil
}

// AttachAll attaches every option set. Failures do not stop the remaining
// attachments; they are joined into the returned error.
func (r *Registry) AttachAll(opts []domain.Options) (int, error) {
	var (
		attached int
		errs     []error
	)

	for _, o := range opts {
		if _, err := r.Attach(o); err != nil {
			logger.Warn("skipping tooltip: %v", err)
			errs = append(errs, err)
			continue
		}
		attached++
	}

	return attached, errors.Join(errs...)
}

// Get implements driving.TooltipRegistry.
func (r *Registry) Get(elementID string) (driving.Tooltip, bool) {
	c, ok := r.byID[elementID]
	if !ok {
		return nil, false
	}
	return c, true
}

// List implements driving.TooltipRegistry.
func (r *Registry) List() []driving.Tooltip {
	out := make([]driving.Tooltip, len(r.order))
	for i, c := range r.order {
		out[i] = c
	}
	return out
}
