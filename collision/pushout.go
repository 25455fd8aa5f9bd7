package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/vmath"
)

// PenetrationDepths returns, per axis, the smaller of the two overlaps between
// a box at position with extents and the obstacle
func PenetrationDepths(position, extents mgl64.Vec3, obstacle AABB) mgl64.Vec3 {
	selfMin := position.Sub(extents)
	selfMax := position.Add(extents)
	toMin := obstacle.Max.Sub(selfMin)
	toMax := selfMax.Sub(obstacle.Min)
	return mgl64.Vec3{
		math.Min(toMin.X(), toMax.X()),
		math.Min(toMin.Y(), toMax.Y()),
		math.Min(toMin.Z(), toMax.Z()),
	}
}

// PushOutAABB moves a box at position out of the obstacle along one axis.
//
// The axis is picked by strict comparison of per-axis depths: X when it is below
// both Y and Z, else Y when it is below Z, else Z. Exact ties therefore fall to the
// later axis. The push goes toward the side of the obstacle center the position is on;
// a position exactly on the center plane is pushed positive.
//
// Returns the corrected position, the axis used, and whether the boxes overlapped.
func PushOutAABB(position, extents mgl64.Vec3, obstacle AABB) (mgl64.Vec3, Axis, bool) {
	if !TestAABBAABB(position.Sub(extents), position.Add(extents), obstacle.Min, obstacle.Max) {
		return position, AxisNone, false
	}

	d := PenetrationDepths(position, extents, obstacle)
	c := obstacle.Center()

	signed := func(p, center, depth float64) float64 {
		if p < center {
			return -depth
		}
		return depth
	}

	switch {
	case d.X() < d.Y() && d.X() < d.Z():
		position[0] += signed(position.X(), c.X(), d.X())
		return position, AxisX, true
	case d.Y() < d.Z():
		position[1] += signed(position.Y(), c.Y(), d.Y())
		return position, AxisY, true
	default:
		position[2] += signed(position.Z(), c.Z(), d.Z())
		return position, AxisZ, true
	}
}

// PushOutSphere moves a point lying inside the sphere radially to radius+epsilon
// A point at the exact center is pushed along +X
func PushOutSphere(point mgl64.Vec3, s Sphere, epsilon float64) (mgl64.Vec3, bool) {
	if !TestPointSphere(point, s.Center, s.Radius) {
		return point, false
	}
	delta := point.Sub(s.Center)
	dist := delta.Len()
	dir := vmath.SafeNormalize(delta, vmath.AxisX)
	return point.Add(dir.Mul(s.Radius - dist + epsilon)), true
}
