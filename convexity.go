package convexaa

// Direction is the winding direction of a closed outline.
type Direction int

const (
	// DirectionCW winds clockwise (negative signed area).
	DirectionCW Direction = iota
	// DirectionCCW winds counter-clockwise (positive signed area).
	DirectionCCW
)

func (d Direction) String() string {
	if d == DirectionCCW {
		return "ccw"
	}
	return "cw"
}

// convexityEpsilon is the tolerance for cross product comparisons.
// Values below this threshold are treated as zero (collinear edges).
const convexityEpsilon = 1e-10

// flattenTolerance is the maximum allowed deviation between a curve and
// its linear approximation when flattening for convexity and winding
// analysis, in device units.
const flattenTolerance = 0.25

// ConvexityResult provides detailed convexity analysis of a polygon.
type ConvexityResult struct {
	// Convex is true if the polygon is convex (all turns in the same direction).
	Convex bool

	// Winding is the winding direction: +1 for counter-clockwise,
	// -1 for clockwise, 0 for degenerate polygons (fewer than 3
	// non-collinear points).
	Winding int

	// NumPoints is the number of points analyzed.
	NumPoints int
}

// AnalyzeConvexity performs detailed convexity analysis of a polygon.
//
// Points should represent a single closed contour after curve flattening.
// The polygon is considered closed (last point connects back to first).
//
// The analysis checks that all cross products of consecutive edge vectors
// have the same sign, which guarantees convexity for simple polygons.
// Collinear edges (zero cross product) are permitted and do not break
// convexity.
//
// This is an O(n) algorithm.
func AnalyzeConvexity(points []Point) ConvexityResult {
	n := len(points)
	result := ConvexityResult{NumPoints: n}

	// A polygon needs at least 3 vertices to be convex.
	if n < 3 {
		return result
	}

	// Walk all consecutive edge pairs and check cross product sign
	// consistency. Edge i goes from points[i] to points[(i+1)%n].
	var positiveCount, negativeCount int

	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		p2 := points[(i+2)%n]

		e1 := p1.Sub(p0)
		e2 := p2.Sub(p1)

		cross := e1.Cross(e2)
		if cross > convexityEpsilon {
			positiveCount++
		} else if cross < -convexityEpsilon {
			negativeCount++
		}
		// cross ~= 0 means collinear edges, which are allowed.
	}

	// Degenerate: all edges are collinear (no turns at all).
	if positiveCount == 0 && negativeCount == 0 {
		return result
	}

	// Mixed signs: concave polygon.
	if positiveCount > 0 && negativeCount > 0 {
		return result
	}

	result.Convex = true
	if positiveCount > 0 {
		result.Winding = 1 // CCW
	} else {
		result.Winding = -1 // CW
	}
	return result
}

// IsConvex reports whether the path outline is convex.
// Curves are flattened before analysis. Degenerate outlines (fewer than
// 3 points, or all points collinear) are not convex.
func (p *Path) IsConvex() bool {
	return AnalyzeConvexity(p.Flatten(flattenTolerance)).Convex
}

// Direction computes the winding direction of the outline.
// Reports false when the direction cannot be resolved (degenerate or
// non-convex outlines).
func (p *Path) Direction() (Direction, bool) {
	res := AnalyzeConvexity(p.Flatten(flattenTolerance))
	switch res.Winding {
	case 1:
		return DirectionCCW, true
	case -1:
		return DirectionCW, true
	}
	return DirectionCW, false
}

// Flatten converts the first contour into a closed polygon, replacing
// curves with line segments that deviate at most tolerance from the
// true curve. The returned slice holds the polygon vertices in order;
// the last vertex connects back to the first implicitly.
func (p *Path) Flatten(tolerance float64) []Point {
	var pts []Point
	var current Point

	p.forEachClosed(func(elem PathElement) {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			pts = append(pts, current)
		case LineTo:
			current = e.Point
			pts = append(pts, current)
		case QuadTo:
			flattenQuad(QuadBez{P0: current, P1: e.Control, P2: e.Point}, tolerance*tolerance, func(pt Point) {
				pts = append(pts, pt)
			})
			current = e.Point
		case CubicTo:
			flattenCubic(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, tolerance*tolerance, func(pt Point) {
				pts = append(pts, pt)
			})
			current = e.Point
		}
	})

	// Drop a duplicated closing vertex so the polygon is open-coded.
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// flattenQuad recursively subdivides a quadratic until the control point
// deviation from the chord midpoint is within tolerance, then emits the
// curve endpoint.
func flattenQuad(q QuadBez, toleranceSq float64, fn func(pt Point)) {
	mid := q.Eval(0.5)
	chordMid := q.P0.Lerp(q.P2, 0.5)

	if mid.DistanceSquared(chordMid) <= toleranceSq {
		fn(q.P2)
		return
	}

	left := QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid}
	right := QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
	flattenQuad(left, toleranceSq, fn)
	flattenQuad(right, toleranceSq, fn)
}

// flattenCubic recursively subdivides a cubic until both control points
// are within tolerance of the chord, then emits the curve endpoint.
// The factor of 16 accounts for the cubic approximation error bound.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y

	distSq := ux*ux + uy*uy
	if s := vx*vx + vy*vy; s > distSq {
		distSq = s
	}

	if distSq <= 16*toleranceSq {
		fn(c.P3)
		return
	}

	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	flattenCubic(CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid}, toleranceSq, fn)
	flattenCubic(CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}, toleranceSq, fn)
}
