package convexaa

// SegmentKind discriminates the two segment variants.
type SegmentKind uint8

const (
	// SegmentLine is a straight edge holding one point.
	SegmentLine SegmentKind = iota
	// SegmentQuad is a quadratic curve edge holding two points
	// (control point, then endpoint).
	SegmentQuad
)

// Segment is one edge of the decoded outline: either a line or a
// quadratic curve. A segment stores only the points it introduces; its
// start point is the previous segment's endpoint. Segments form a
// closed, cyclically indexed sequence.
//
// Lines use Pts[0]/Norms[0]; quads use both slots, with Pts[0] the
// control point and Pts[1] the endpoint. Norms[i] is the outward unit
// normal of the edge ending at Pts[i]. Mid is the normalized outward
// bisector at the junction with the previous segment.
type Segment struct {
	Kind  SegmentKind
	Pts   [2]Point
	Norms [2]Vec2
	Mid   Vec2
}

// PointCount returns the number of points the segment introduces.
func (s *Segment) PointCount() int {
	if s.Kind == SegmentLine {
		return 1
	}
	return 2
}

// EndPoint returns the segment's endpoint.
func (s *Segment) EndPoint() Point {
	return s.Pts[s.PointCount()-1]
}

// EndNorm returns the outward normal at the segment's endpoint.
func (s *Segment) EndNorm() Vec2 {
	return s.Norms[s.PointCount()-1]
}
