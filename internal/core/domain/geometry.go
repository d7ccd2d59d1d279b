package domain

// Point is a pixel position. Pointer events report viewport coordinates;
// annotation positions are absolute page coordinates.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ScrollSource identifies a scroll-reporting mechanism of a document.
type ScrollSource int

const (
	// ScrollWindow is the window-level reading. It is preferred.
	ScrollWindow ScrollSource = iota
	// ScrollRoot is the root element reading.
	ScrollRoot
	// ScrollBody is the body element reading.
	ScrollBody
)

// String returns the string representation.
func (s ScrollSource) String() string {
	switch s {
	case ScrollWindow:
		return "window"
	case ScrollRoot:
		return "root"
	case ScrollBody:
		return "body"
	default:
		return unknownDescription
	}
}

// ScrollReading is the page scroll offset reported by one source.
// HasX and HasY report whether the source provides each axis.
type ScrollReading struct {
	Source ScrollSource
	X      int
	Y      int
	HasX   bool
	HasY   bool
}

// ResolveScroll computes the page scroll offset from readings ordered by
// preference. Each axis independently takes the first reading that
// provides it; an axis no reading provides is zero.
func ResolveScroll(readings ...ScrollReading) Point {
	var (
		p            Point
		haveX, haveY bool
	)

	for _, r := range readings {
		if !haveX && r.HasX {
			p.X, haveX = r.X, true
		}
		if !haveY && r.HasY {
			p.Y, haveY = r.Y, true
		}
		if haveX && haveY {
			break
		}
	}

	return p
}
