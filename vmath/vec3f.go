package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Unit axes
var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// Point lifts a position to homogeneous coordinates (w=1)
func Point(v mgl64.Vec3) mgl64.Vec4 {
	return v.Vec4(1)
}

// XZ builds a ground-plane vector
func XZ(x, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, 0, z}
}

// Flatten drops the Y component
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// PerpXZ rotates a ground direction 90° counterclockwise: (x, z) -> (-z, x)
func PerpXZ(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-v.Z(), 0, v.X()}
}

// SafeNormalize returns v/|v|, or fallback when |v| is below Epsilon
func SafeNormalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return fallback
	}
	return v.Mul(1 / l)
}

// ClampVec3 clamps each component of v into [lo, hi]
func ClampVec3(v, lo, hi mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		Clamp(v.X(), lo.X(), hi.X()),
		Clamp(v.Y(), lo.Y(), hi.Y()),
		Clamp(v.Z(), lo.Z(), hi.Z()),
	}
}

// DistSqXZ returns squared ground-plane distance
func DistSqXZ(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return dx*dx + dz*dz
}
