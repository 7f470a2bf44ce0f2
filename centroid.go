package convexaa

import (
	"fmt"
	"math"
)

// centroidAreaEpsilon is the signed-area magnitude below which the
// segment polygon is treated as numerically flat and the centroid falls
// back to the vertex mean.
const centroidAreaEpsilon = 1e-9

// centerOfMass computes the area-weighted centroid of the polygon formed
// by the segment endpoints. This is the interior fan point all mesh
// triangles radiate from.
//
// Uses the shoelace formula over consecutive (wrapping) endpoint pairs.
// If the polygon has (nearly) no area the unweighted mean of the
// endpoints is returned instead. Degenerate outlines are rejected before
// this runs, so a NaN centroid can only mean an upstream contract breach
// and panics.
func centerOfMass(segments []Segment) Point {
	var area float64
	var center Point
	count := len(segments)

	for i := 0; i < count; i++ {
		pi := segments[i].EndPoint()
		pj := segments[(i+1)%count].EndPoint()
		t := pi.X*pj.Y - pj.X*pi.Y
		area += t
		center.X += (pi.X + pj.X) * t
		center.Y += (pi.Y + pj.Y) * t
	}

	var c Point
	if math.Abs(area) < centroidAreaEpsilon {
		// Flat polygon despite passing the pointwise collinearity
		// test: average the endpoints.
		var avg Point
		for i := 0; i < count; i++ {
			pt := segments[i].EndPoint()
			avg.X += pt.X
			avg.Y += pt.Y
		}
		c = avg.Div(float64(count))
	} else {
		c = center.Div(3 * area)
	}

	if c.IsNaN() {
		panic(fmt.Sprintf("convexaa: centroid is NaN for %d segments", count))
	}
	return c
}
