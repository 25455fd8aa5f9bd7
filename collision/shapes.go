package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/vmath"
)

// AABB is an axis-aligned box; Min <= Max componentwise
type AABB struct {
	Min, Max mgl64.Vec3
}

// FromCenter builds a box from center and half-extents
func FromCenter(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the box midpoint
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Expand inflates the box by r on every axis
func (b AABB) Expand(r float64) AABB {
	d := mgl64.Vec3{r, r, r}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Intersects is TestAABBAABB in method form
func (b AABB) Intersects(o AABB) bool {
	return TestAABBAABB(b.Min, b.Max, o.Min, o.Max)
}

// Plane is the zero set of Normal·x + D = 0
// Callers in this module pass unit normals
type Plane struct {
	Normal mgl64.Vec3
	D      float64
}

// Ground is the y=0 floor, facing up
var Ground = Plane{Normal: mgl64.Vec3{0, 1, 0}}

// Vec4 returns the homogeneous form (nx, ny, nz, d)
func (p Plane) Vec4() mgl64.Vec4 {
	return p.Normal.Vec4(p.D)
}

// SignedDistance is the homogeneous plane dotted with the point x;
// exact distance only for unit normals
func (p Plane) SignedDistance(x mgl64.Vec3) float64 {
	return p.Vec4().Dot(vmath.Point(x))
}

// projectedRadius is the half-extent projected onto |normal|
func (p Plane) projectedRadius(half mgl64.Vec3) float64 {
	n := p.Normal
	return half.X()*math.Abs(n.X()) + half.Y()*math.Abs(n.Y()) + half.Z()*math.Abs(n.Z())
}

// Sphere is a center and a non-negative radius
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Axis identifies a push-out axis
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "none"
	}
}
