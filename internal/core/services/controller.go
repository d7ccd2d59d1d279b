package services

import (
	"fmt"

	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
	"github.com/custodia-labs/hovertip/internal/core/ports/driving"
	"github.com/custodia-labs/hovertip/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.Tooltip = (*Controller)(nil)

// Controller owns the lifecycle of at most one annotation for a host element.
//
// The annotation reference is non-nil if and only if the annotation is
// attached to the document. A fresh annotation is created on every show
// and discarded on every hide.
type Controller struct {
	config    domain.Config
	doc       driven.Document
	scheduler driven.Scheduler
	host      driven.HostElement

	annotation driven.Annotation
	pinned     bool
}

// NewController binds a tooltip to the host element named by opts.ElementID.
// Unset options take their defaults. If the host does not resolve in doc,
// no controller is returned and the error wraps domain.ErrHostNotFound.
// The scheduler may be nil, in which case auto-dismiss is disabled.
func NewController(doc driven.Document, scheduler driven.Scheduler, opts domain.Options) (*Controller, error) {
	cfg := opts.Resolve()
	if cfg.ElementID == "" {
		return nil, domain.ErrElementIDRequired
	}

	host, ok := doc.ElementByID(cfg.ElementID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrHostNotFound, cfg.ElementID)
	}

	if _, ok := cfg.AutoDismiss(); ok && scheduler == nil {
		logger.Warn("tooltip %s: no scheduler, auto-dismiss disabled", cfg.ElementID)
	}

	c := &Controller{
		config:    cfg,
		doc:       doc,
		scheduler: scheduler,
		host:      host,
	}
	c.bind()

	return c, nil
}

// bind registers the controller on its host element.
// Enter and leave are always wired; move and click only when enabled.
func (c *Controller) bind() {
	c.host.On(domain.EventEnter, c.Show)
	c.host.On(domain.EventLeave, func(domain.Event) { c.Hide() })

	if c.config.EnableMove {
		c.host.On(domain.EventMove, c.Move)
	}
	if c.config.EnableLock {
		c.host.On(domain.EventClick, c.TogglePin)
	}
}

// Show implements driving.Tooltip.
func (c *Controller) Show(e domain.Event) {
	if c.pinned {
		logger.Debug("tooltip %s: show suppressed, pinned", c.config.ElementID)
		return
	}

	// Re-entry without a leave replaces the previous annotation.
	if c.annotation != nil {
		c.detach()
	}

	a := c.doc.CreateAnnotation()
	a.SetClass(c.config.Class)
	a.SetContent(c.config.Content)
	a.SetVisible(false)

	pos := c.position(e)
	a.MoveTo(pos)
	c.doc.Attach(a)
	a.SetVisible(true)
	c.annotation = a

	logger.Debug("tooltip %s: show %s at (%d,%d)", c.config.ElementID, a.ID(), pos.X, pos.Y)

	if delay, ok := c.config.AutoDismiss(); ok && c.scheduler != nil {
		// The callback goes through Hide, which checks the pin flag itself.
		c.scheduler.AfterFunc(delay, c.Hide)
	}
}

// Move implements driving.Tooltip.
func (c *Controller) Move(e domain.Event) {
	if c.annotation == nil || c.pinned || !c.config.EnableMove {
		return
	}

	pos := c.position(e)
	c.annotation.MoveTo(pos)
}

// Hide implements driving.Tooltip.
func (c *Controller) Hide() {
	if c.pinned {
		logger.Debug("tooltip %s: hide suppressed, pinned", c.config.ElementID)
		return
	}
	if c.annotation == nil {
		return
	}

	logger.Debug("tooltip %s: hide %s", c.config.ElementID, c.annotation.ID())
	c.detach()
}

// TogglePin implements driving.Tooltip.
// The event may be nil when called directly.
func (c *Controller) TogglePin(e domain.Event) {
	c.pinned = !c.pinned

	if e != nil {
		e.Suppress()
	}

	logger.Debug("tooltip %s: pinned=%t", c.config.ElementID, c.pinned)
}

// State implements driving.Tooltip.
func (c *Controller) State() domain.State {
	switch {
	case c.pinned:
		return domain.StatePinned
	case c.annotation != nil:
		return domain.StateVisible
	default:
		return domain.StateHidden
	}
}

// Pinned implements driving.Tooltip.
func (c *Controller) Pinned() bool {
	return c.pinned
}

// Config implements driving.Tooltip.
func (c *Controller) Config() domain.Config {
	return c.config
}

// AnnotationID implements driving.Tooltip.
func (c *Controller) AnnotationID() (string, bool) {
	if c.annotation == nil {
		return "", false
	}
	return c.annotation.ID(), true
}

func (c *Controller) detach() {
	c.annotation.SetVisible(false)
	c.doc.Detach(c.annotation)
	c.annotation = nil
}

// position is the pointer viewport position plus offset plus page scroll.
func (c *Controller) position(e domain.Event) domain.Point {
	var client domain.Point
	if e != nil {
		client = e.ClientPosition()
	}

	scroll := domain.ResolveScroll(c.doc.ScrollReadings()...)
	return client.Add(c.config.Offset()).Add(scroll)
}
