package convexaa

import "math"

// Bezier curve types for outline decoding.
// Based on kurbo patterns, adapted for Go idioms.

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// derivEval evaluates the first derivative of the curve at parameter t.
func (c CubicBez) derivEval(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return Vec2{
		X: 3 * (d0.X*mt*mt + 2*d1.X*mt*t + d2.X*t*t),
		Y: 3 * (d0.Y*mt*mt + 2*d1.Y*mt*t + d2.Y*t*t),
	}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	scale := (t1 - t0) / 3.0
	p1 := p0.Add(c.derivEval(t0).Mul(scale))
	p2 := p3.Add(c.derivEval(t1).Mul(-scale))

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// ToQuads approximates the cubic with quadratic Bezier segments whose
// maximum deviation from the cubic stays within accuracy.
//
// The error of the best approximating quadratic is proportional to the
// cubic's third derivative, which is constant across the segment, so the
// error scales down as the third power of the number of subdivisions and
// subdividing t evenly suffices. Always produces at least one quadratic.
func (c CubicBez) ToQuads(accuracy float64) []QuadBez {
	// The magic number is the square of 36 / sqrt(3).
	// See: http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
	maxHypot2 := 432.0 * accuracy * accuracy
	v1 := Vec2{X: 3*c.P1.X - c.P0.X, Y: 3*c.P1.Y - c.P0.Y}
	v2 := Vec2{X: 3*c.P2.X - c.P3.X, Y: 3*c.P2.Y - c.P3.Y}
	err := v2.Sub(v1).LengthSq()

	n := int(math.Ceil(math.Sqrt(math.Cbrt(err / maxHypot2))))
	if n < 1 {
		n = 1
	}

	quads := make([]QuadBez, 0, n)
	for i := 0; i < n; i++ {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		seg := c.Subsegment(t0, t1)
		// Control point of the least-error quadratic for this span.
		q1 := Point{
			X: (3*seg.P1.X - seg.P0.X + 3*seg.P2.X - seg.P3.X) / 4,
			Y: (3*seg.P1.Y - seg.P0.Y + 3*seg.P2.Y - seg.P3.Y) / 4,
		}
		quads = append(quads, QuadBez{P0: seg.P0, P1: q1, P2: seg.P3})
	}
	return quads
}
