package domain

import "time"

// Default values applied when an Options field is left unset.
const (
	// DefaultOffsetX is the horizontal distance in pixels from the pointer.
	DefaultOffsetX = 16

	// DefaultOffsetY is the vertical distance in pixels from the pointer.
	DefaultOffsetY = 16

	// DefaultClass is the style class assigned to annotation elements.
	DefaultClass = "tooltip"

	// DefaultContent is shown when no content is configured.
	DefaultContent = "Empty tooltip!"
)

// Config is the resolved configuration of one tooltip.
// It is a value type and is never mutated after construction.
type Config struct {
	// ElementID identifies the host element in the document.
	ElementID string

	// EnableLock wires click-to-pin on the host element.
	EnableLock bool

	// EnableMove makes the annotation follow the pointer.
	EnableMove bool

	// OffsetX and OffsetY are added to the pointer position.
	OffsetX int
	OffsetY int

	// Class is the style class name of the annotation element.
	Class string

	// Content is the plain text or markup displayed in the annotation.
	Content string

	// FadeOut is the auto-dismiss delay. Zero or negative disables it.
	FadeOut time.Duration
}

// DefaultConfig returns the configuration used for every unset option.
func DefaultConfig() Config {
	return Config{
		EnableLock: true,
		EnableMove: true,
		OffsetX:    DefaultOffsetX,
		OffsetY:    DefaultOffsetY,
		Class:      DefaultClass,
		Content:    DefaultContent,
	}
}

// Offset returns the configured pointer offset.
func (c Config) Offset() Point {
	return Point{X: c.OffsetX, Y: c.OffsetY}
}

// AutoDismiss returns the auto-dismiss delay and whether it is enabled.
// It is enabled only when a delay is present and greater than zero.
func (c Config) AutoDismiss() (time.Duration, bool) {
	if c.FadeOut <= 0 {
		return 0, false
	}
	return c.FadeOut, true
}

// Options holds caller supplied overrides. A nil field keeps its default.
type Options struct {
	ElementID  string
	EnableLock *bool
	EnableMove *bool
	OffsetX    *int
	OffsetY    *int
	Class      *string
	Content    *string
	FadeOut    *time.Duration
}

// Resolve merges the options against DefaultConfig.
func (o Options) Resolve() Config {
	c := DefaultConfig()
	c.ElementID = o.ElementID

	if o.EnableLock != nil {
		c.EnableLock = *o.EnableLock
	}
	if o.EnableMove != nil {
		c.EnableMove = *o.EnableMove
	}
	if o.OffsetX != nil {
		c.OffsetX = *o.OffsetX
	}
	if o.OffsetY != nil {
		c.OffsetY = *o.OffsetY
	}
	if o.Class != nil {
		c.Class = *o.Class
	}
	if o.Content != nil {
		c.Content = *o.Content
	}
	if o.FadeOut != nil {
		c.FadeOut = *o.FadeOut
	}

	return c
}

// Bool returns a pointer to b, for building Options literals.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// String returns a pointer to s.
func String(s string) *string { return &s }

// Duration returns a pointer to d.
func Duration(d time.Duration) *time.Duration { return &d }

// Millis returns a pointer to a duration of ms milliseconds.
func Millis(ms int) *time.Duration {
	d := time.Duration(ms) * time.Millisecond
	return &d
}
