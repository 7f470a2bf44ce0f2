package convexaa

import "math"

// aaRampWidth is the width of the coverage fade band outside the
// outline, in device units.
const aaRampWidth = 1.0

// noConstraint marks a distance field that does not participate in
// clipping for the vertex (corner wedges and straight edges).
const noConstraint = -1.0

// neverClipped is a large-magnitude distance for offset vertices of
// curved edge groups: after interpolation the tangent-line clip can
// never reach them.
const neverClipped = -math.MaxFloat32 / 100

// outerCoverage is the texcoord V sentinel carried by offset vertices,
// interpolating coverage down to zero at the outer band edge.
const outerCoverage = -1.0

// buildVertices emits the whole mesh into verts and idxs, which must be
// sized exactly as computeVectors reported. Writes advance through both
// buffers with monotone cursors and fill them completely.
//
// Per junction a corner wedge is emitted, then the outgoing segment's
// edge group, walking the sequence cyclically.
func buildVertices(segments []Segment, fanPt Point, verts []Vertex, idxs []uint16) {
	v := 0
	i := 0

	count := len(segments)
	for a := 0; a < count; a++ {
		b := (a + 1) % count
		sega := &segments[a]
		segb := &segments[b]

		v, i = emitWedge(sega, segb, verts, idxs, v, i)
		if segb.Kind == SegmentLine {
			v, i = emitLineGroup(sega, segb, fanPt, verts, idxs, v, i)
		} else {
			v, i = emitQuadGroup(sega, segb, fanPt, verts, idxs, v, i)
		}
	}
}

// emitWedge writes the corner wedge at the junction between sega and
// segb: the corner itself plus three points one ramp-width outward along
// the incoming ending normal, the bisector, and the outgoing starting
// normal, fanned into two triangles around the corner.
func emitWedge(sega, segb *Segment, verts []Vertex, idxs []uint16, v, i int) (int, int) {
	corner := sega.EndPoint()

	verts[v+0].set(corner, 0, 0, noConstraint, noConstraint)
	verts[v+1].set(corner.Add(sega.EndNorm().Mul(aaRampWidth)), 0, outerCoverage, noConstraint, noConstraint)
	verts[v+2].set(corner.Add(segb.Mid.Mul(aaRampWidth)), 0, outerCoverage, noConstraint, noConstraint)
	verts[v+3].set(corner.Add(segb.Norms[0].Mul(aaRampWidth)), 0, outerCoverage, noConstraint, noConstraint)

	idxs[i+0] = uint16(v + 0)
	idxs[i+1] = uint16(v + 2)
	idxs[i+2] = uint16(v + 1)
	idxs[i+3] = uint16(v + 0)
	idxs[i+4] = uint16(v + 3)
	idxs[i+5] = uint16(v + 2)

	return v + wedgeVerts, i + wedgeIdxs
}

// emitLineGroup writes the edge group for a straight segment: one
// interior triangle from the fan point and a two-triangle fade strip
// extruded along the edge normal.
//
// The edge is drawn as a degenerate quad: U is 0 everywhere and V is the
// signed distance to the edge, so interpolation yields a linear coverage
// ramp from the fan point down to the outer band.
func emitLineGroup(sega, segb *Segment, fanPt Point, verts []Vertex, idxs []uint16, v, i int) (int, int) {
	p0 := sega.EndPoint()
	p1 := segb.Pts[0]
	norm := segb.Norms[0].Mul(aaRampWidth)

	dist := fanPt.DistanceToLine(p0, p1)

	verts[v+0].set(fanPt, 0, dist, noConstraint, noConstraint)
	verts[v+1].set(p0, 0, 0, noConstraint, noConstraint)
	verts[v+2].set(p1, 0, 0, noConstraint, noConstraint)
	verts[v+3].set(p0.Add(norm), 0, outerCoverage, noConstraint, noConstraint)
	verts[v+4].set(p1.Add(norm), 0, outerCoverage, noConstraint, noConstraint)

	idxs[i+0] = uint16(v + 0)
	idxs[i+1] = uint16(v + 2)
	idxs[i+2] = uint16(v + 1)

	idxs[i+3] = uint16(v + 3)
	idxs[i+4] = uint16(v + 1)
	idxs[i+5] = uint16(v + 2)

	idxs[i+6] = uint16(v + 4)
	idxs[i+7] = uint16(v + 3)
	idxs[i+8] = uint16(v + 2)

	return v + lineGroupVerts, i + lineGroupIdxs
}

// emitQuadGroup writes the edge group for a quadratic segment: the fan
// point, both endpoints, both endpoints offset along their own normals,
// and the control point offset along the averaged normal. D0/D1 carry
// each vertex's signed distance to the tangent lines at the curve
// endpoints; the fragment stage clips the implicit curve function by
// these to bound the influence region. Texcoords map positions into the
// canonical parametric space where the curve is u^2 - v = 0.
func emitQuadGroup(sega, segb *Segment, fanPt Point, verts []Vertex, idxs []uint16, v, i int) (int, int) {
	q0 := sega.EndPoint()
	q1 := segb.Pts[0]
	q2 := segb.Pts[1]

	midVec := segb.Norms[0].Add(segb.Norms[1]).Normalize()

	pos := [quadGroupVerts]Point{
		fanPt,
		q0,
		q2,
		q0.Add(segb.Norms[0].Mul(aaRampWidth)),
		q2.Add(segb.Norms[1].Mul(aaRampWidth)),
		q1.Add(midVec.Mul(aaRampWidth)),
	}

	// Signed distances to the tangent line at q0 ...
	c0 := segb.Norms[0].DotPoint(q0)
	d0 := [quadGroupVerts]float64{
		-segb.Norms[0].DotPoint(fanPt) + c0,
		0,
		-segb.Norms[0].DotPoint(q2) + c0,
		neverClipped,
		neverClipped,
		neverClipped,
	}

	// ... and at q2.
	c1 := segb.Norms[1].DotPoint(q2)
	d1 := [quadGroupVerts]float64{
		-segb.Norms[1].DotPoint(fanPt) + c1,
		-segb.Norms[1].DotPoint(q0) + c1,
		0,
		neverClipped,
		neverClipped,
		neverClipped,
	}

	toUV := quadUVMatrix(q0, q1, q2)
	for p := 0; p < quadGroupVerts; p++ {
		uv := toUV.TransformPoint(pos[p])
		verts[v+p].set(pos[p], uv.X, uv.Y, d0[p], d1[p])
	}

	idxs[i+0] = uint16(v + 3)
	idxs[i+1] = uint16(v + 1)
	idxs[i+2] = uint16(v + 2)
	idxs[i+3] = uint16(v + 4)
	idxs[i+4] = uint16(v + 3)
	idxs[i+5] = uint16(v + 2)

	idxs[i+6] = uint16(v + 5)
	idxs[i+7] = uint16(v + 3)
	idxs[i+8] = uint16(v + 4)

	idxs[i+9] = uint16(v + 0)
	idxs[i+10] = uint16(v + 2)
	idxs[i+11] = uint16(v + 1)

	return v + quadGroupVerts, i + quadGroupIdxs
}

// quadUVMatrix returns the affine transform mapping the quadratic's
// control polygon into canonical parametric space:
//
//	q0 -> (0, 0),  q1 -> (1/2, 0),  q2 -> (1, 1)
//
// In that space the curve is exactly the parabola u^2 - v = 0 and the
// fragment stage can evaluate coverage from the implicit function. For a
// degenerate (collinear) control polygon the zero matrix is returned,
// pinning every vertex onto the curve; coverage then falls entirely to
// the tangent-line distances.
func quadUVMatrix(q0, q1, q2 Point) Matrix {
	det := q0.X*(q1.Y-q2.Y) - q0.Y*(q1.X-q2.X) + (q1.X*q2.Y - q2.X*q1.Y)
	if math.Abs(det) < 1e-12 {
		return Matrix{}
	}
	invDet := 1.0 / det

	// Interpolation-plane coefficients for target values (u0,u1,u2)
	// over the triangle (q0,q1,q2), specialized to u=(0,1/2,1) and
	// v=(0,0,1).
	const u0, u1, u2 = 0.0, 0.5, 1.0
	const v0, v1, v2 = 0.0, 0.0, 1.0

	return Matrix{
		A: (u0*(q1.Y-q2.Y) + u1*(q2.Y-q0.Y) + u2*(q0.Y-q1.Y)) * invDet,
		B: (u0*(q2.X-q1.X) + u1*(q0.X-q2.X) + u2*(q1.X-q0.X)) * invDet,
		C: (u0*(q1.X*q2.Y-q2.X*q1.Y) + u1*(q2.X*q0.Y-q0.X*q2.Y) + u2*(q0.X*q1.Y-q1.X*q0.Y)) * invDet,
		D: (v0*(q1.Y-q2.Y) + v1*(q2.Y-q0.Y) + v2*(q0.Y-q1.Y)) * invDet,
		E: (v0*(q2.X-q1.X) + v1*(q0.X-q2.X) + v2*(q1.X-q0.X)) * invDet,
		F: (v0*(q1.X*q2.Y-q2.X*q1.Y) + v1*(q2.X*q0.Y-q0.X*q2.Y) + v2*(q0.X*q1.Y-q1.X*q0.Y)) * invDet,
	}
}
