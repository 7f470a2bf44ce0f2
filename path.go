package convexaa

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a closed vector outline.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path contains no drawing commands.
// A path holding only MoveTo elements is empty.
func (p *Path) IsEmpty() bool {
	for _, elem := range p.elements {
		switch elem.(type) {
		case LineTo, QuadTo, CubicTo:
			return false
		}
	}
	return true
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform returns a copy of the path with every point mapped through m.
// The original path is left untouched.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    m.TransformPoint(p.start),
		current:  m.TransformPoint(p.current),
	}
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out.elements[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			out.elements[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			out.elements[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			out.elements[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		case Close:
			out.elements[i] = Close{}
		}
	}
	return out
}

// forEachClosed walks the first contour of the path as an always-closed
// command sequence. If the contour does not return to its starting point
// (whether or not an explicit Close is present), a synthetic closing
// LineTo back to the start is emitted before iteration ends.
//
// Only the first contour is visited: a convex outline is a single closed
// loop, and a second MoveTo ends iteration.
func (p *Path) forEachClosed(fn func(PathElement)) {
	var (
		start   Point
		current Point
		started bool
	)

	closeContour := func() {
		if current != start {
			fn(LineTo{Point: start})
			current = start
		}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if started {
				closeContour()
				return
			}
			start = e.Point
			current = e.Point
			started = true
			fn(e)
		case LineTo:
			if !started {
				continue
			}
			current = e.Point
			fn(e)
		case QuadTo:
			if !started {
				continue
			}
			current = e.Point
			fn(e)
		case CubicTo:
			if !started {
				continue
			}
			current = e.Point
			fn(e)
		case Close:
			if !started {
				continue
			}
			closeContour()
			return
		}
	}
	if started {
		closeContour()
	}
}
