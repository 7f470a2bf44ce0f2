package convexaa

// cubicToQuadTolerance is the maximum deviation allowed when reducing
// cubic curves to quadratic segments, in device units.
const cubicToQuadTolerance = 1.0

// decodeSegments turns the path's first contour into the closed segment
// sequence consumed by the tessellator. The contour is iterated as an
// always-closed command stream; cubics are reduced to quadratics first
// and each resulting quadratic is pushed independently.
//
// Every point the contour introduces (except the initial move anchor's
// duplicates) runs through the degeneracy classifier. Reports ok=false
// when the outline collapses to a point or a line, in which case nothing
// must be drawn.
func decodeSegments(path *Path) (segments []Segment, ok bool) {
	var test DegeneracyTest
	var current Point

	path.forEachClosed(func(elem PathElement) {
		switch e := elem.(type) {
		case MoveTo:
			test.Add(e.Point)
			current = e.Point
		case LineTo:
			test.Add(e.Point)
			segments = append(segments, Segment{
				Kind: SegmentLine,
				Pts:  [2]Point{e.Point},
			})
			current = e.Point
		case QuadTo:
			test.Add(e.Control)
			test.Add(e.Point)
			segments = append(segments, Segment{
				Kind: SegmentQuad,
				Pts:  [2]Point{e.Control, e.Point},
			})
			current = e.Point
		case CubicTo:
			test.Add(e.Control1)
			test.Add(e.Control2)
			test.Add(e.Point)
			cubic := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			for _, q := range cubic.ToQuads(cubicToQuadTolerance) {
				segments = append(segments, Segment{
					Kind: SegmentQuad,
					Pts:  [2]Point{q.P1, q.P2},
				})
			}
			current = e.Point
		}
	})

	if test.Degenerate() {
		return nil, false
	}
	return segments, true
}
