package dom

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/custodia-labs/hovertip/internal/core/domain"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
)

// Ensure Document implements the interface.
var _ driven.Document = (*Document)(nil)

// Document is an in-memory page: host elements laid out top to bottom,
// a body holding attached annotations, and three scroll readings.
type Document struct {
	title    string
	elements map[string]*Element
	order    []*Element
	body     []*Annotation
	scroll   [3]domain.ScrollReading
	nextRow  int
}

// NewDocument creates an empty document. The window scroll reading is
// available and zero; root and body readings are unavailable.
func NewDocument(title string) *Document {
	d := &Document{
		title:    title,
		elements: make(map[string]*Element),
	}
	for i := range d.scroll {
		d.scroll[i].Source = domain.ScrollSource(i)
	}
	d.SetScroll(domain.ScrollWindow, 0, 0)
	return d
}

// Title returns the document title.
func (d *Document) Title() string {
	return d.title
}

// Append adds a text element below the previous one, separated by a blank
// line. Its bounds cover the widest line and every line of text.
func (d *Document) Append(id, text, link string) (*Element, error) {
	el := &Element{id: id, text: text, link: link}

	width := 0
	lines := el.Lines()
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}

	if err := d.AddElement(el, Rect{X: 0, Y: d.nextRow, W: width, H: len(lines)}); err != nil {
		return nil, err
	}
	return el, nil
}

// AddElement adds el with explicit page bounds.
func (d *Document) AddElement(el *Element, bounds Rect) error {
	if el.id == "" {
		return fmt.Errorf("adding element: %w", domain.ErrElementIDRequired)
	}
	if _, exists := d.elements[el.id]; exists {
		return fmt.Errorf("element %q: %w", el.id, domain.ErrAlreadyExists)
	}

	el.bounds = bounds
	el.listeners = make(map[domain.EventKind][]driven.Handler)
	d.elements[el.id] = el
	d.order = append(d.order, el)
	d.nextRow = max(d.nextRow, bounds.Y+bounds.H+1)

	return nil
}

// NewElement creates a detached element for use with AddElement.
func NewElement(id, text, link string) *Element {
	return &Element{id: id, text: text, link: link}
}

// ElementByID implements driven.Document.
func (d *Document) ElementByID(id string) (driven.HostElement, bool) {
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// Element returns the concrete element with the given id.
func (d *Document) Element(id string) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Elements returns all elements in insertion order.
func (d *Document) Elements() []*Element {
	return slices.Clone(d.order)
}

// Height returns the number of page rows covered by elements.
func (d *Document) Height() int {
	h := 0
	for _, el := range d.order {
		h = max(h, el.bounds.Y+el.bounds.H)
	}
	return h
}

// HitTest returns the last added element whose bounds contain p.
func (d *Document) HitTest(p domain.Point) (*Element, bool) {
	for i := len(d.order) - 1; i >= 0; i-- {
		if d.order[i].bounds.Contains(p) {
			return d.order[i], true
		}
	}
	return nil, false
}

// Dispatch delivers an event of the given kind to the element with id.
func (d *Document) Dispatch(id string, kind domain.EventKind, ev *Event) error {
	el, ok := d.elements[id]
	if !ok {
		return fmt.Errorf("element %q: %w", id, domain.ErrNotFound)
	}
	if ev == nil {
		ev = &Event{}
	}

	el.dispatch(kind, ev)
	return nil
}

// CreateAnnotation implements driven.Document.
func (d *Document) CreateAnnotation() driven.Annotation {
	return &Annotation{id: uuid.New().String()}
}

// Attach implements driven.Document. Annotations created by other
// implementations are ignored.
func (d *Document) Attach(a driven.Annotation) {
	an, ok := a.(*Annotation)
	if !ok || slices.Contains(d.body, an) {
		return
	}
	d.body = append(d.body, an)
}

// Detach implements driven.Document.
func (d *Document) Detach(a driven.Annotation) {
	an, ok := a.(*Annotation)
	if !ok {
		return
	}
	d.body = slices.DeleteFunc(d.body, func(x *Annotation) bool { return x == an })
}

// Attached returns the annotations currently in the body, oldest first.
func (d *Document) Attached() []*Annotation {
	return slices.Clone(d.body)
}

// Annotation returns the attached annotation with the given id.
func (d *Document) Annotation(id string) (*Annotation, bool) {
	for _, a := range d.body {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// SetScroll makes a scroll source available and sets both axes.
func (d *Document) SetScroll(src domain.ScrollSource, x, y int) {
	d.setReading(domain.ScrollReading{Source: src, X: x, Y: y, HasX: true, HasY: true})
}

// ClearScroll marks a scroll source as unavailable.
func (d *Document) ClearScroll(src domain.ScrollSource) {
	d.setReading(domain.ScrollReading{Source: src})
}

func (d *Document) setReading(r domain.ScrollReading) {
	if r.Source < domain.ScrollWindow || r.Source > domain.ScrollBody {
		return
	}
	d.scroll[r.Source] = r
}

// ScrollReadings implements driven.Document.
func (d *Document) ScrollReadings() []domain.ScrollReading {
	return slices.Clone(d.scroll[:])
}
