package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Bezier3 evaluates a cubic Bézier in Bernstein form:
// (1-t)³P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³P3
func Bezier3(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return p0.Mul(u2 * u).
		Add(p1.Mul(3 * u2 * t)).
		Add(p2.Mul(3 * u * t2)).
		Add(p3.Mul(t2 * t))
}

// Bezier3Derivative evaluates the first derivative:
// 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
func Bezier3Derivative(p0, p1, p2, p3 mgl64.Vec3, t float64) mgl64.Vec3 {
	u := 1 - t
	return p1.Sub(p0).Mul(3 * u * u).
		Add(p2.Sub(p1).Mul(6 * u * t)).
		Add(p3.Sub(p2).Mul(3 * t * t))
}

// HermiteToBezier converts endpoint tangents to inner control points:
// P1 = P0 + v0/3, P2 = P3 - v1/3
func HermiteToBezier(p0, p3, v0, v1 mgl64.Vec3) (p1, p2 mgl64.Vec3) {
	return p0.Add(v0.Mul(1.0 / 3.0)), p3.Sub(v1.Mul(1.0 / 3.0))
}
