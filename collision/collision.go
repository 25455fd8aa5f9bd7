// Package collision holds stateless intersection tests over boxes, planes,
// spheres, points and cubic Bézier curves. Only the Resolve*/Clamp*/PushOut*
// functions produce a corrected position; nothing here allocates or logs.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/vmath"
)

// TestAABBPlane reports whether the box touches or crosses the plane
func TestAABBPlane(boxMin, boxMax mgl64.Vec3, plane Plane) bool {
	center := boxMax.Add(boxMin).Mul(0.5)
	half := boxMax.Sub(center)

	r := plane.projectedRadius(half)
	s := plane.SignedDistance(center)

	return math.Abs(s) <= r
}

// ResolveAABBPlane pushes a box centered at position out of the plane along its normal,
// by the penetration depth r-|s|, away from the plane on the side the center lies on
// (a center exactly on the plane goes to the positive side).
// Returns false and leaves position untouched when there is no intersection.
// After a true return the box is tangent to the plane; motion orthogonal to the normal is zero.
func ResolveAABBPlane(position *mgl64.Vec3, extents mgl64.Vec3, plane Plane) bool {
	if !TestAABBPlane(position.Sub(extents), position.Add(extents), plane) {
		return false
	}

	r := plane.projectedRadius(extents)
	s := plane.SignedDistance(*position)
	depth := r - math.Abs(s)

	if s < 0 {
		*position = position.Sub(plane.Normal.Mul(depth))
	} else {
		*position = position.Add(plane.Normal.Mul(depth))
	}
	return true
}

// TestAABBAABB is the three-axis interval overlap test, touching counts as overlap
func TestAABBAABB(minA, maxA, minB, maxB mgl64.Vec3) bool {
	return minA.X() <= maxB.X() && maxA.X() >= minB.X() &&
		minA.Y() <= maxB.Y() && maxA.Y() >= minB.Y() &&
		minA.Z() <= maxB.Z() && maxA.Z() >= minB.Z()
}

// TestPointSphere compares squared distance against squared radius
func TestPointSphere(point, center mgl64.Vec3, radius float64) bool {
	d := point.Sub(center)
	return d.Dot(d) <= radius*radius
}

// TestSphereSphere reports whether two spheres touch or overlap
func TestSphereSphere(a, b Sphere) bool {
	r := a.Radius + b.Radius
	d := a.Center.Sub(b.Center)
	return d.Dot(d) <= r*r
}

// TestRaySphere returns the nearest non-negative hit distance along a unit ray
func TestRaySphere(origin, dir mgl64.Vec3, s Sphere) (bool, float64) {
	m := origin.Sub(s.Center)
	b := m.Dot(dir)
	c := m.Dot(m) - s.Radius*s.Radius

	// Outside and pointing away
	if c > 0 && b > 0 {
		return false, 0
	}
	disc := b*b - c
	if disc < 0 {
		return false, 0
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		// Origin inside the sphere
		t = 0
	}
	return true, t
}

// TestPointExpandedAABB inflates the box by radius and tests containment
// Cheap stand-in for sphere-vs-box; over-reports near the box corners
func TestPointExpandedAABB(point mgl64.Vec3, radius float64, boxMin, boxMax mgl64.Vec3) bool {
	return AABB{Min: boxMin, Max: boxMax}.Expand(radius).Contains(point)
}

// TestBezierAABB samples the curve at numSamples+1 uniform parameters and returns
// the first t whose point lies in the box expanded by objectRadius.
// Sampling can miss a box thinner than the gap between samples; pick numSamples so
// that curve length / numSamples stays under objectRadius.
func TestBezierAABB(p0, p1, p2, p3 mgl64.Vec3, objectRadius float64, boxMin, boxMax mgl64.Vec3, numSamples int) (bool, float64) {
	if numSamples < 1 {
		numSamples = 1
	}
	box := AABB{Min: boxMin, Max: boxMax}.Expand(objectRadius)

	step := 1.0 / float64(numSamples)
	for i := 0; i <= numSamples; i++ {
		t := float64(i) * step
		if box.Contains(vmath.Bezier3(p0, p1, p2, p3, t)) {
			return true, t
		}
	}
	return false, 0
}

// ClampPositionToBox clamps each component into [minBounds, maxBounds]
func ClampPositionToBox(position *mgl64.Vec3, minBounds, maxBounds mgl64.Vec3) {
	*position = vmath.ClampVec3(*position, minBounds, maxBounds)
}
