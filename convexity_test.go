package convexaa

import (
	"math"
	"testing"
)

// makeRegularPolygon returns n points of a regular polygon centered at
// (cx, cy) with the given radius, in counter-clockwise order.
func makeRegularPolygon(n int, cx, cy, radius float64) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	return pts
}

// reversePoints returns the points in reverse order, flipping the
// winding direction.
func reversePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// makeStarPoints returns a concave star polygon.
func makeStarPoints(n int, cx, cy, outer, inner float64) []Point {
	pts := make([]Point, 2*n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := math.Pi * float64(i) / float64(n)
		pts[i] = Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

func TestAnalyzeConvexity(t *testing.T) {
	tests := []struct {
		name        string
		points      []Point
		wantConvex  bool
		wantWinding int
	}{
		{
			name:        "triangle ccw",
			points:      []Point{Pt(0, 0), Pt(1, 0), Pt(0.5, 1)},
			wantConvex:  true,
			wantWinding: 1,
		},
		{
			name:        "triangle cw",
			points:      []Point{Pt(0, 0), Pt(0.5, 1), Pt(1, 0)},
			wantConvex:  true,
			wantWinding: -1,
		},
		{
			name:        "square with collinear midpoints",
			points:      []Point{Pt(0, 0), Pt(0.5, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
			wantConvex:  true,
			wantWinding: 1,
		},
		{
			name:        "hexagon",
			points:      makeRegularPolygon(6, 0, 0, 10),
			wantConvex:  true,
			wantWinding: 1,
		},
		{
			name:        "hexagon reversed",
			points:      reversePoints(makeRegularPolygon(6, 0, 0, 10)),
			wantConvex:  true,
			wantWinding: -1,
		},
		{
			name:        "many-sided polygon",
			points:      makeRegularPolygon(100, 5, 5, 3),
			wantConvex:  true,
			wantWinding: 1,
		},
		{
			name:        "star is concave",
			points:      makeStarPoints(5, 0, 0, 10, 4),
			wantConvex:  false,
			wantWinding: 0,
		},
		{
			name:        "too few points",
			points:      []Point{Pt(0, 0), Pt(1, 1)},
			wantConvex:  false,
			wantWinding: 0,
		},
		{
			name:        "all collinear",
			points:      []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
			wantConvex:  false,
			wantWinding: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeConvexity(tt.points)
			if got.Convex != tt.wantConvex {
				t.Errorf("Convex = %v, want %v", got.Convex, tt.wantConvex)
			}
			if got.Winding != tt.wantWinding {
				t.Errorf("Winding = %d, want %d", got.Winding, tt.wantWinding)
			}
			if got.NumPoints != len(tt.points) {
				t.Errorf("NumPoints = %d, want %d", got.NumPoints, len(tt.points))
			}
		})
	}
}

func TestPathIsConvex(t *testing.T) {
	square := NewPath()
	square.MoveTo(0, 0)
	square.LineTo(1, 0)
	square.LineTo(1, 1)
	square.LineTo(0, 1)
	square.Close()
	if !square.IsConvex() {
		t.Error("square should be convex")
	}

	// A convex outline with a curved edge.
	lens := NewPath()
	lens.MoveTo(0, 0)
	lens.QuadraticTo(50, 40, 100, 0)
	lens.QuadraticTo(50, -40, 0, 0)
	lens.Close()
	if !lens.IsConvex() {
		t.Error("lens should be convex")
	}

	// Concave L shape.
	ell := NewPath()
	ell.MoveTo(0, 0)
	ell.LineTo(2, 0)
	ell.LineTo(2, 1)
	ell.LineTo(1, 1)
	ell.LineTo(1, 2)
	ell.LineTo(0, 2)
	ell.Close()
	if ell.IsConvex() {
		t.Error("L shape should not be convex")
	}
}

func TestPathDirection(t *testing.T) {
	ccw := NewPath()
	ccw.MoveTo(0, 0)
	ccw.LineTo(1, 0)
	ccw.LineTo(1, 1)
	ccw.LineTo(0, 1)
	ccw.Close()

	dir, ok := ccw.Direction()
	if !ok || dir != DirectionCCW {
		t.Errorf("Direction = %v, %v, want ccw, true", dir, ok)
	}

	cw := NewPath()
	cw.MoveTo(0, 0)
	cw.LineTo(0, 1)
	cw.LineTo(1, 1)
	cw.LineTo(1, 0)
	cw.Close()

	dir, ok = cw.Direction()
	if !ok || dir != DirectionCW {
		t.Errorf("Direction = %v, %v, want cw, true", dir, ok)
	}

	// Degenerate line cannot resolve.
	flat := NewPath()
	flat.MoveTo(0, 0)
	flat.LineTo(1, 0)
	flat.LineTo(2, 0)
	flat.Close()

	if _, ok = flat.Direction(); ok {
		t.Error("Direction should not resolve for a collinear outline")
	}
}
