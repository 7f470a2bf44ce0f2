package convexaa

// Per-group buffer costs. A line edge group spans the fan point, two
// endpoints and two offset points; a quad group additionally offsets the
// middle control point; a corner wedge is the corner plus three offset
// points fanned into two triangles.
const (
	lineGroupVerts = 5
	lineGroupIdxs  = 9
	quadGroupVerts = 6
	quadGroupIdxs  = 12
	wedgeVerts     = 4
	wedgeIdxs      = 6
)

// computeVectors fills in the outward normals and junction bisectors for
// the whole segment sequence and returns the exact vertex/index counts
// the mesh will need, so buffers can be allocated once with no resizing.
//
// The outward side is determined by winding: normals rotate each edge
// direction to the right for CCW outlines and to the left for CW, which
// always faces away from the interior.
func computeVectors(segments []Segment, dir Direction) (vCount, iCount int) {
	count := len(segments)

	normSide := SideLeft
	if dir == DirectionCCW {
		normSide = SideRight
	}

	// Normals at every contained point.
	for a := 0; a < count; a++ {
		b := (a + 1) % count
		sega := &segments[a]
		segb := &segments[b]

		prev := sega.EndPoint()
		n := segb.PointCount()
		for p := 0; p < n; p++ {
			segb.Norms[p] = segb.Pts[p].Sub(prev).Normalize().Orthog(normSide)
			prev = segb.Pts[p]
		}
		if segb.Kind == SegmentLine {
			vCount += lineGroupVerts
			iCount += lineGroupIdxs
		} else {
			vCount += quadGroupVerts
			iCount += quadGroupIdxs
		}
	}

	// Bisectors where segments meet. Every junction gets a corner
	// wedge; shallow corners are not detected or merged.
	for a := 0; a < count; a++ {
		b := (a + 1) % count
		sega := &segments[a]
		segb := &segments[b]
		segb.Mid = segb.Norms[0].Add(sega.EndNorm()).Normalize()
		vCount += wedgeVerts
		iCount += wedgeIdxs
	}

	return vCount, iCount
}
