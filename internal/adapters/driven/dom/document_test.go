package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hovertip/internal/core/domain"
)

func TestNewDocument_Defaults(t *testing.T) {
	d := NewDocument("demo")

	assert.Equal(t, "demo", d.Title())
	assert.Empty(t, d.Elements())
	assert.Empty(t, d.Attached())
	assert.Equal(t, 0, d.Height())

	readings := d.ScrollReadings()
	require.Len(t, readings, 3)
	assert.Equal(t, domain.ScrollReading{Source: domain.ScrollWindow, HasX: true, HasY: true}, readings[0])
	assert.Equal(t, domain.ScrollReading{Source: domain.ScrollRoot}, readings[1])
	assert.Equal(t, domain.ScrollReading{Source: domain.ScrollBody}, readings[2])
}

func TestDocument_AppendLayout(t *testing.T) {
	d := NewDocument("")

	first, err := d.Append("text1", "some text...", "")
	require.NoError(t, err)
	second, err := d.Append("img1", "an image\n[ghost.png]", "")
	require.NoError(t, err)
	third, err := d.Append("anchor1", "a link", "somewhere_else")
	require.NoError(t, err)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 12, H: 1}, first.Bounds())
	assert.Equal(t, Rect{X: 0, Y: 2, W: 11, H: 2}, second.Bounds())
	assert.Equal(t, Rect{X: 0, Y: 5, W: 6, H: 1}, third.Bounds())
	assert.Equal(t, "somewhere_else", third.Link())
	assert.Equal(t, 6, d.Height())
}

func TestDocument_AddElementErrors(t *testing.T) {
	d := NewDocument("")

	_, err := d.Append("", "x", "")
	assert.ErrorIs(t, err, domain.ErrElementIDRequired)

	_, err = d.Append("p1", "x", "")
	require.NoError(t, err)
	_, err = d.Append("p1", "y", "")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestDocument_ElementByID(t *testing.T) {
	d := NewDocument("")
	_, err := d.Append("p1", "x", "")
	require.NoError(t, err)

	host, ok := d.ElementByID("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", host.ID())

	_, ok = d.ElementByID("missing")
	assert.False(t, ok)
}

func TestDocument_HitTest(t *testing.T) {
	d := NewDocument("")
	_, err := d.Append("p1", "hello", "")
	require.NoError(t, err)
	_, err = d.Append("p2", "world", "")
	require.NoError(t, err)

	el, ok := d.HitTest(domain.Point{X: 4, Y: 0})
	require.True(t, ok)
	assert.Equal(t, "p1", el.ID())

	el, ok = d.HitTest(domain.Point{X: 0, Y: 2})
	require.True(t, ok)
	assert.Equal(t, "p2", el.ID())

	_, ok = d.HitTest(domain.Point{X: 5, Y: 0})
	assert.False(t, ok, "right edge is exclusive")

	_, ok = d.HitTest(domain.Point{X: 0, Y: 1})
	assert.False(t, ok, "gap row")
}

func TestDocument_Dispatch(t *testing.T) {
	d := NewDocument("")
	el, err := d.Append("p1", "x", "")
	require.NoError(t, err)

	var got []domain.Point
	el.On(domain.EventMove, func(e domain.Event) { got = append(got, e.ClientPosition()) })
	el.On(domain.EventMove, func(e domain.Event) { e.Suppress() })

	ev := NewEvent(3, 4)
	require.NoError(t, d.Dispatch("p1", domain.EventMove, ev))

	assert.Equal(t, []domain.Point{{X: 3, Y: 4}}, got)
	assert.True(t, ev.DefaultPrevented)
	assert.True(t, ev.PropagationStopped)
	assert.Equal(t, 2, el.Listeners(domain.EventMove))
	assert.Equal(t, 0, el.Listeners(domain.EventClick))

	err = d.Dispatch("missing", domain.EventMove, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, d.Dispatch("p1", domain.EventClick, nil))
}

func TestDocument_AttachDetach(t *testing.T) {
	d := NewDocument("")

	a := d.CreateAnnotation()
	b := d.CreateAnnotation()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Empty(t, d.Attached(), "created annotations start detached")

	d.Attach(a)
	d.Attach(a)
	d.Attach(b)
	require.Len(t, d.Attached(), 2)

	found, ok := d.Annotation(a.ID())
	require.True(t, ok)
	assert.Same(t, a, found)

	d.Detach(a)
	d.Detach(a)
	attached := d.Attached()
	require.Len(t, attached, 1)
	assert.Equal(t, b.ID(), attached[0].ID())

	_, ok = d.Annotation(a.ID())
	assert.False(t, ok)
}

func TestAnnotation_Setters(t *testing.T) {
	a := &Annotation{id: "a"}

	a.SetClass("tooltip")
	a.SetContent("<b>hi</b>")
	a.SetVisible(true)
	a.MoveTo(domain.Point{X: 66, Y: 76})

	assert.Equal(t, "tooltip", a.Class())
	assert.Equal(t, "<b>hi</b>", a.Content())
	assert.True(t, a.Visible())
	assert.Equal(t, domain.Point{X: 66, Y: 76}, a.Position())
}

func TestDocument_Scroll(t *testing.T) {
	d := NewDocument("")

	d.SetScroll(domain.ScrollRoot, 5, 6)
	d.ClearScroll(domain.ScrollWindow)
	d.SetScroll(domain.ScrollSource(7), 1, 1)

	readings := d.ScrollReadings()
	assert.False(t, readings[0].HasX)
	assert.Equal(t, domain.Point{X: 5, Y: 6}, domain.ResolveScroll(readings...))

	readings[1].X = 99
	assert.Equal(t, 5, d.ScrollReadings()[1].X, "readings are copied")
}
