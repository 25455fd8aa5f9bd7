package navigation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// Curve is a cubic Bézier segment on the ground plane with its progress parameter
// P0 is where the segment started, P3 is the target snapshot taken at planning time
type Curve struct {
	P0, P1, P2, P3 mgl64.Vec3
	T              float64
}

// CurveAt returns a zero-length curve parked at p
func CurveAt(p mgl64.Vec3) Curve {
	return Curve{P0: p, P1: p, P2: p, P3: p}
}

// Evaluate returns B(t)
func (c Curve) Evaluate(t float64) mgl64.Vec3 {
	return vmath.Bezier3(c.P0, c.P1, c.P2, c.P3, t)
}

// Derivative returns B'(t)
func (c Curve) Derivative(t float64) mgl64.Vec3 {
	return vmath.Bezier3Derivative(c.P0, c.P1, c.P2, c.P3, t)
}

// Position returns B at the current progress
func (c Curve) Position() mgl64.Vec3 {
	return c.Evaluate(c.T)
}

// Velocity returns B' at the current progress
func (c Curve) Velocity() mgl64.Vec3 {
	return c.Derivative(c.T)
}

// Chord is the straight-line distance P0 to P3, used to normalize advancement
func (c Curve) Chord() float64 {
	return c.P3.Sub(c.P0).Len()
}

// Advance moves T by distance/chord; chords at or below minChord do not advance
func (c *Curve) Advance(distance, minChord float64) {
	chord := c.Chord()
	if chord > minChord {
		c.T += distance / chord
	}
}

// Done reports whether the segment reached its target
func (c Curve) Done() bool {
	return c.T >= 1
}

// ClampT limits T to at most 1
func (c *Curve) ClampT() {
	c.T = math.Min(c.T, 1)
}

// Probe samples the curve against a box for a body of the given radius
func (c Curve) Probe(radius float64, box collision.AABB, samples int) (bool, float64) {
	return collision.TestBezierAABB(c.P0, c.P1, c.P2, c.P3, radius, box.Min, box.Max, samples)
}

// Sample returns n+1 evenly spaced points along the curve, appended to dst
func (c Curve) Sample(dst []mgl64.Vec3, n int) []mgl64.Vec3 {
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		dst = append(dst, c.Evaluate(float64(i)/float64(n)))
	}
	return dst
}
