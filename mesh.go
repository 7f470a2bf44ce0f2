package convexaa

// Vertex is one record of the emitted vertex buffer. The layout is
// fixed and uniform across all vertices:
//
//	position (X, Y)  — device-space coordinates
//	texcoord (U, V)  — coverage ramp (lines) or canonical curve space (quads)
//	D0, D1           — signed distances to the two endpoint tangent lines
//
// All fields are float32 so the buffer can be uploaded verbatim.
type Vertex struct {
	X, Y   float32
	U, V   float32
	D0, D1 float32
}

// VertexStride is the size of one Vertex in bytes.
const VertexStride = 24

// MaxVertices is the largest vertex count a single mesh can hold, fixed
// by the 16-bit index type.
const MaxVertices = 1 << 16

func (vt *Vertex) set(pos Point, u, v, d0, d1 float64) {
	vt.X = float32(pos.X)
	vt.Y = float32(pos.Y)
	vt.U = float32(u)
	vt.V = float32(v)
	vt.D0 = float32(d0)
	vt.D1 = float32(d1)
}

// Mesh is an indexed triangle list with anti-aliasing attributes.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Tessellate converts a convex path into an anti-aliased triangle mesh.
//
// Reports ok=false for empty or degenerate paths (nothing should be
// drawn) and for outlines too large for 16-bit indexing. Panics when the
// path is not convex or its winding direction cannot be resolved; those
// are caller contract violations.
func Tessellate(path *Path) (*Mesh, bool) {
	if path.IsEmpty() {
		return nil, false
	}

	segments, ok := decodeSegments(path)
	if !ok {
		Logger().Debug("convexaa: skipping degenerate path")
		return nil, false
	}

	dir, ok := path.Direction()
	if !ok {
		panic("convexaa: cannot resolve path winding direction")
	}

	fanPt := centerOfMass(segments)
	vCount, iCount := computeVectors(segments, dir)
	if vCount > MaxVertices {
		Logger().Warn("convexaa: mesh exceeds 16-bit index range",
			"vertices", vCount)
		return nil, false
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, vCount),
		Indices:  make([]uint16, iCount),
	}
	buildVertices(segments, fanPt, mesh.Vertices, mesh.Indices)
	return mesh, true
}
