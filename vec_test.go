package convexaa

import (
	"math"
	"testing"
)

const testEpsilon = 1e-9

func TestVec2Basics(t *testing.T) {
	v := V2(3, 4)

	if got := v.Length(); math.Abs(got-5) > testEpsilon {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq() = %v, want 25", got)
	}
	if got := v.Add(V2(1, -1)); got != V2(4, 3) {
		t.Errorf("Add = %v, want (4,3)", got)
	}
	if got := v.Sub(V2(1, 1)); got != V2(2, 3) {
		t.Errorf("Sub = %v, want (2,3)", got)
	}
	if got := v.Mul(2); got != V2(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := v.Neg(); got != V2(-3, -4) {
		t.Errorf("Neg = %v, want (-3,-4)", got)
	}
}

func TestVec2DotCross(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Vec2
		dot   float64
		cross float64
	}{
		{"orthogonal", V2(1, 0), V2(0, 1), 0, 1},
		{"parallel", V2(2, 0), V2(3, 0), 6, 0},
		{"opposite", V2(1, 0), V2(-1, 0), -1, 0},
		{"general", V2(1, 2), V2(3, 4), 11, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); math.Abs(got-tt.dot) > testEpsilon {
				t.Errorf("Dot = %v, want %v", got, tt.dot)
			}
			if got := tt.a.Cross(tt.b); math.Abs(got-tt.cross) > testEpsilon {
				t.Errorf("Cross = %v, want %v", got, tt.cross)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	v := V2(3, 4).Normalize()
	if !v.Approx(V2(0.6, 0.8), testEpsilon) {
		t.Errorf("Normalize = %v, want (0.6,0.8)", v)
	}

	// Zero vector normalizes to zero.
	if got := V2(0, 0).Normalize(); !got.IsZero() {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestVec2Orthog(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		side Side
		want Vec2
	}{
		{"right of +x", V2(1, 0), SideRight, V2(0, -1)},
		{"left of +x", V2(1, 0), SideLeft, V2(0, 1)},
		{"right of +y", V2(0, 1), SideRight, V2(1, 0)},
		{"left of +y", V2(0, 1), SideLeft, V2(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Orthog(tt.side); !got.Approx(tt.want, testEpsilon) {
				t.Errorf("Orthog(%v) = %v, want %v", tt.side, got, tt.want)
			}
		})
	}
}

func TestVec2OrthogPreservesLength(t *testing.T) {
	v := V2(3, -7)
	for _, side := range []Side{SideLeft, SideRight} {
		r := v.Orthog(side)
		if math.Abs(r.Length()-v.Length()) > testEpsilon {
			t.Errorf("Orthog changed length: %v -> %v", v.Length(), r.Length())
		}
		if math.Abs(v.Dot(r)) > testEpsilon {
			t.Errorf("Orthog not perpendicular: dot = %v", v.Dot(r))
		}
	}
}

func TestPointDistanceToLine(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		a, b Point
		want float64
	}{
		{"above horizontal", Pt(0.5, 2), Pt(0, 0), Pt(1, 0), 2},
		{"on the line", Pt(0.5, 0), Pt(0, 0), Pt(1, 0), 0},
		{"beyond endpoint", Pt(5, 1), Pt(0, 0), Pt(1, 0), 1},
		{"diagonal line", Pt(0, 1), Pt(0, 0), Pt(1, 1), math.Sqrt2 / 2},
		{"degenerate line", Pt(3, 4), Pt(1, 1), Pt(1, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.DistanceToLine(tt.a, tt.b); math.Abs(got-tt.want) > testEpsilon {
				t.Errorf("DistanceToLine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); !got.Approx(Pt(5, 10), testEpsilon) {
		t.Errorf("Lerp(0.5) = %v, want (5,10)", got)
	}
}
