package convexaa

import "math"

// degenerateTolerance is the distance below which outline points are
// considered coincident or collinear, in device units. The coverage
// model measures distance from the outline, so a path thinner than this
// would be drawn far heavier than its true area warrants; such paths
// are rejected outright.
const degenerateTolerance = 1.0 / 16

// DegeneracyState is the classification stage of a [DegeneracyTest].
type DegeneracyState int

const (
	// DegeneracyInitial means no point has been observed yet.
	DegeneracyInitial DegeneracyState = iota
	// DegeneracySinglePoint means all points coincide within tolerance.
	DegeneracySinglePoint
	// DegeneracyCollinear means all points lie on one line within tolerance.
	DegeneracyCollinear
	// DegeneracyNone means the outline has genuine area. Absorbing state.
	DegeneracyNone
)

func (s DegeneracyState) String() string {
	switch s {
	case DegeneracyInitial:
		return "initial"
	case DegeneracySinglePoint:
		return "single-point"
	case DegeneracyCollinear:
		return "collinear"
	case DegeneracyNone:
		return "non-degenerate"
	}
	return "unknown"
}

// DegeneracyTest incrementally classifies an outline as it is decoded:
// point by point it decides whether the outline has collapsed to a
// single point, to a line, or has real area. The classifier only moves
// forward; once DegeneracyNone is reached further points are ignored.
//
// The zero value is ready to use.
type DegeneracyTest struct {
	stage DegeneracyState

	// anchor is the first observed point.
	anchor Point

	// lineNormal/lineC form the unit line equation
	// lineNormal.DotPoint(p) + lineC = 0 through the anchor and the
	// first point that escaped it. Valid from DegeneracyCollinear on.
	lineNormal Vec2
	lineC      float64
}

// Add feeds the next outline point to the classifier.
func (d *DegeneracyTest) Add(pt Point) {
	const tolSq = degenerateTolerance * degenerateTolerance

	switch d.stage {
	case DegeneracyInitial:
		d.anchor = pt
		d.stage = DegeneracySinglePoint
	case DegeneracySinglePoint:
		if pt.DistanceSquared(d.anchor) > tolSq {
			d.lineNormal = pt.Sub(d.anchor).Normalize().Orthog(SideLeft)
			d.lineC = -d.lineNormal.DotPoint(d.anchor)
			d.stage = DegeneracyCollinear
		}
	case DegeneracyCollinear:
		if math.Abs(d.lineNormal.DotPoint(pt)+d.lineC) > degenerateTolerance {
			d.stage = DegeneracyNone
		}
	case DegeneracyNone:
		// Absorbing.
	}
}

// Degenerate reports whether the points observed so far collapse to a
// point or a line.
func (d *DegeneracyTest) Degenerate() bool {
	return d.stage != DegeneracyNone
}

// Stage returns the current classification stage.
func (d *DegeneracyTest) Stage() DegeneracyState {
	return d.stage
}
