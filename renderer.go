package convexaa

// Caps describes the capabilities of a render target that influence
// whether the renderer can service a path.
type Caps struct {
	// ShaderDerivatives reports whether the target's fragment stage can
	// evaluate screen-space derivatives. Curved edges need them to turn
	// the implicit curve function into a coverage value.
	ShaderDerivatives bool
}

// Target is the sink a Renderer draws into. A backend implements Target
// over its vertex and index buffers; backend/wgpu provides one for
// WebGPU devices.
//
// Reservations are two-phase: ReserveVertices then ReserveIndices. If the
// second reservation fails the renderer calls ReleaseVertices so the
// target can reclaim the first.
type Target interface {
	// Caps reports the target's capabilities.
	Caps() Caps

	// ViewTransform returns the current geometry transform.
	ViewTransform() Matrix

	// SetViewTransform replaces the geometry transform.
	SetViewTransform(m Matrix)

	// ConcatTextureTransform folds m into the target's texture
	// coordinate transforms.
	ConcatTextureTransform(m Matrix)

	// ReserveVertices returns a writable slice of n vertices, or false
	// if the target cannot hold them.
	ReserveVertices(n int) ([]Vertex, bool)

	// ReserveIndices returns a writable slice of n indices, or false if
	// the target cannot hold them. Index values are relative to the
	// start of the matching vertex reservation.
	ReserveIndices(n int) ([]uint16, bool)

	// ReleaseVertices returns the most recent vertex reservation
	// unused.
	ReleaseVertices()

	// DrawIndexed issues a draw covering the reserved ranges.
	DrawIndexed(vertexCount, indexCount int)
}

// Renderer tessellates convex paths into antialiased meshes and submits
// them to a Target.
//
// Geometry is tessellated in device space: the target's view transform
// is applied on the CPU and replaced with the identity for the draw, so
// the one-pixel fade band keeps its width regardless of scale. For the
// duration of the draw the inverse transform is folded into the texture
// transforms to keep any texture mapping fixed to the geometry; both
// transforms are restored before Draw returns.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// CanDraw reports whether the renderer is applicable to the given path,
// fill rule and anti-aliasing request on a target with the given caps.
// Coverage is computed per fragment, so non-antialiased fills are better
// served elsewhere and are rejected. It is a cheap applicability test,
// not a validation: a path accepted here can still be skipped by Draw if
// it degenerates under the view transform.
func (r *Renderer) CanDraw(caps Caps, path *Path, rule FillRule, antiAlias bool) bool {
	if !antiAlias {
		return false
	}
	if !caps.ShaderDerivatives {
		return false
	}
	if rule == FillHairline || rule.IsInverted() {
		return false
	}
	if path.IsEmpty() {
		return false
	}
	return path.IsConvex()
}

// Draw tessellates path into target. It reports false when the path
// produces no geometry: an empty path, a degenerate outline, a mesh
// exceeding the index range, or a failed buffer reservation. Callers
// should fall back to another fill strategy in that case.
//
// Draw panics if path is not convex; gate calls with CanDraw.
func (r *Renderer) Draw(target Target, path *Path) bool {
	if path.IsEmpty() {
		return false
	}

	view := target.ViewTransform()
	devPath := path.Transform(view)

	// Decode before anything else: an outline that collapses to a point
	// or a line is skipped without touching target state, and without
	// tripping the convexity contract (a collinear outline is not
	// convex, but it is not a caller error either).
	segments, ok := decodeSegments(devPath)
	if !ok {
		Logger().Debug("convexaa: skipping degenerate path")
		return false
	}

	if !path.IsConvex() {
		panic("convexaa: Draw called with a non-convex path")
	}

	dir, ok := devPath.Direction()
	if !ok {
		panic("convexaa: cannot resolve path winding direction")
	}

	fanPt := centerOfMass(segments)
	vCount, iCount := computeVectors(segments, dir)

	if vCount > MaxVertices {
		Logger().Warn("convexaa: mesh exceeds vertex limit",
			"vertices", vCount, "limit", MaxVertices)
		return false
	}

	// Neutralize the view for the draw and counter-map the texture
	// transform; both are restored on every exit below.
	target.SetViewTransform(Identity())
	defer target.SetViewTransform(view)
	if inv, ok := view.TryInvert(); ok {
		target.ConcatTextureTransform(inv)
		defer target.ConcatTextureTransform(view)
	}

	verts, ok := target.ReserveVertices(vCount)
	if !ok {
		Logger().Debug("convexaa: vertex reservation failed", "vertices", vCount)
		return false
	}
	idxs, ok := target.ReserveIndices(iCount)
	if !ok {
		target.ReleaseVertices()
		Logger().Debug("convexaa: index reservation failed", "indices", iCount)
		return false
	}

	buildVertices(segments, fanPt, verts, idxs)
	target.DrawIndexed(vCount, iCount)
	return true
}
