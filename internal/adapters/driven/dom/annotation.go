package dom

import (
	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
)

// Ensure Annotation implements the interface.
var _ driven.Annotation = (*Annotation)(nil)

// Annotation is a floating element appended to the document body.
type Annotation struct {
	id       string
	class    string
	content  string
	visible  bool
	position domain.Point
}

// ID implements driven.Annotation.
func (a *Annotation) ID() string { return a.id }

// SetClass implements driven.Annotation.
func (a *Annotation) SetClass(class string) { a.class = class }

// SetContent implements driven.Annotation.
func (a *Annotation) SetContent(content string) { a.content = content }

// SetVisible implements driven.Annotation.
func (a *Annotation) SetVisible(visible bool) { a.visible = visible }

// MoveTo implements driven.Annotation.
func (a *Annotation) MoveTo(p domain.Point) { a.position = p }

// Class returns the style class name.
func (a *Annotation) Class() string { return a.class }

// Content returns the displayed content.
func (a *Annotation) Content() string { return a.content }

// Visible reports whether the annotation is marked visible.
func (a *Annotation) Visible() bool { return a.visible }

// Position returns the absolute page position of the top-left corner.
func (a *Annotation) Position() domain.Point { return a.position }
