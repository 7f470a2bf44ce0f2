package convexaa

import (
	"testing"
)

func TestPathIsEmpty(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}

	p.MoveTo(1, 2)
	if !p.IsEmpty() {
		t.Error("path with only MoveTo should be empty")
	}

	p.LineTo(3, 4)
	if p.IsEmpty() {
		t.Error("path with LineTo should not be empty")
	}

	p.Clear()
	if !p.IsEmpty() {
		t.Error("cleared path should be empty")
	}
}

func TestPathCurrentPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(5, 5)
	if got := p.CurrentPoint(); got != Pt(5, 5) {
		t.Errorf("CurrentPoint = %v, want (5,5)", got)
	}

	p.Close()
	if got := p.CurrentPoint(); got != Pt(1, 1) {
		t.Errorf("CurrentPoint after Close = %v, want (1,1)", got)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.QuadraticTo(2, 0, 2, 1)
	p.Close()

	tp := p.Transform(Translate(10, 20))

	elems := tp.Elements()
	if len(elems) != 4 {
		t.Fatalf("transformed path has %d elements, want 4", len(elems))
	}
	if mv, ok := elems[0].(MoveTo); !ok || mv.Point != Pt(10, 20) {
		t.Errorf("element 0 = %+v, want MoveTo(10,20)", elems[0])
	}
	if q, ok := elems[2].(QuadTo); !ok || q.Control != Pt(12, 20) || q.Point != Pt(12, 21) {
		t.Errorf("element 2 = %+v, want QuadTo((12,20),(12,21))", elems[2])
	}

	// Original untouched.
	if mv := p.Elements()[0].(MoveTo); mv.Point != Pt(0, 0) {
		t.Errorf("original mutated: %+v", mv)
	}
}

func TestForEachClosedSynthesizesClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 1)
	// No explicit Close.

	var lines []Point
	p.forEachClosed(func(elem PathElement) {
		if l, ok := elem.(LineTo); ok {
			lines = append(lines, l.Point)
		}
	})

	if len(lines) != 3 {
		t.Fatalf("got %d LineTo elements, want 3 (two explicit + synthetic close)", len(lines))
	}
	if lines[2] != Pt(0, 0) {
		t.Errorf("synthetic closing line ends at %v, want (0,0)", lines[2])
	}
}

func TestForEachClosedStopsAtSecondContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 1)
	p.Close()
	p.MoveTo(10, 10)
	p.LineTo(20, 10)

	var count int
	p.forEachClosed(func(PathElement) { count++ })

	// MoveTo + 2 LineTo + synthetic close, nothing from the second contour.
	if count != 4 {
		t.Errorf("visited %d elements, want 4", count)
	}
}

func TestPathFlattenPolygon(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 1)
	p.LineTo(0, 1)
	p.Close()

	pts := p.Flatten(0.25)
	if len(pts) != 4 {
		t.Fatalf("flattened square has %d points, want 4", len(pts))
	}
	want := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	for i, w := range want {
		if pts[i] != w {
			t.Errorf("point %d = %v, want %v", i, pts[i], w)
		}
	}
}

func TestPathFlattenCurveWithinTolerance(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)
	p.Close()

	const tol = 0.25
	pts := p.Flatten(tol)
	if len(pts) < 4 {
		t.Fatalf("curve flattened to only %d points", len(pts))
	}

	// Every flattened vertex must lie close to the true curve.
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	for _, pt := range pts[1:] {
		if pt == Pt(0, 0) {
			continue // closing vertex
		}
		best := pt.Distance(q.Eval(0))
		for i := 1; i <= 256; i++ {
			d := pt.Distance(q.Eval(float64(i) / 256))
			if d < best {
				best = d
			}
		}
		if best > tol {
			t.Errorf("flattened point %v is %v from curve, tolerance %v", pt, best, tol)
		}
	}
}
