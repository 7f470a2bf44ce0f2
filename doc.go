// Package convexaa tessellates convex vector outlines into anti-aliased
// triangle meshes for GPU rendering.
//
// # Overview
//
// convexaa is a Pure Go tessellation library for the GoGPU ecosystem. It
// takes a closed, convex path (lines, quadratic and cubic Beziers) and
// produces an indexed triangle mesh whose per-vertex attributes encode
// signed-distance fields. A fragment shader evaluates those attributes to
// compute exact anti-aliased coverage, so no multisampling and no stencil
// buffer are needed for convex fills.
//
// # Quick Start
//
//	import "github.com/gogpu/convexaa"
//
//	path := convexaa.NewPath()
//	path.MoveTo(0, 0)
//	path.LineTo(100, 0)
//	path.LineTo(100, 100)
//	path.LineTo(0, 100)
//	path.Close()
//
//	mesh, ok := convexaa.Tessellate(path)
//	if ok {
//	    // upload mesh.Vertices / mesh.Indices and draw
//	}
//
// For direct GPU submission, implement [Target] (or use backend/wgpu)
// and drive the pipeline through [Renderer]:
//
//	r := convexaa.NewRenderer()
//	if r.CanDraw(target.Caps(), path, convexaa.FillWinding, true) {
//	    r.Draw(target, path)
//	}
//
// # Mesh structure
//
// Triangles radiate from an interior fan point (the area-weighted
// centroid). Each path segment contributes an edge group that fades
// coverage to zero over a one-unit band outside the outline, and each
// junction between segments contributes a corner wedge along the miter
// bisector. Straight edges carry a linear coverage ramp in the texture
// coordinate; curved edges carry canonical-space coordinates for the
// quadratic implicit function u^2 - v, clipped by two tangent-line
// distances.
//
// # Scope
//
// Only convex, non-degenerate outlines are handled. Paths whose points
// collapse to a single point or line (within a 1/16 unit tolerance) are
// detected and skipped entirely; under a distance-based coverage model
// they would render as overemphasized thin slivers. Concave paths,
// stroking and fill-rule composition are out of scope.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package convexaa

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
