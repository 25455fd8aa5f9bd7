package navigation

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
	"github.com/lixenwraith/pillar-arena/parameter"
	"github.com/lixenwraith/pillar-arena/vmath"
)

// Rand is the randomness a planner consumes; vmath.FastRand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Planner synthesizes Hermite-derived Bézier segments toward a target
type Planner struct {
	// Control points P1/P2 are clamped into this box on X and Z
	Bounds collision.AABB

	DegenerateDistance  float64
	ContinuityMinT      float64
	InitialTangentScale float64
	FinalTangentScale   float64
	PerpOffsetMin       float64
	PerpOffsetMax       float64
	ReplanMin           float64
	ReplanSpan          float64

	// Optional obstacle probe; empty Obstacles disables it
	Obstacles    []collision.AABB
	ProbeRadius  float64
	ProbeSamples int
}

// Plan is the outcome of one synthesis
type Plan struct {
	Curve Curve
	// ReplanIn is the countdown until a forced replan (s)
	ReplanIn float64

	// Tangents the curve was built from; zero for degenerate segments
	V0, V1 mgl64.Vec3
	// Side is the lateral sign of the approach, 0 for degenerate segments
	Side float64
	// Continued is true when V0 came from the previous curve's derivative
	Continued  bool
	Degenerate bool
	// Mirrored is true when the obstacle probe flipped the approach side
	Mirrored bool
}

// DefaultPlanner returns a planner with the stock tuning and no obstacles
func DefaultPlanner() Planner {
	return Planner{
		Bounds: collision.AABB{
			Min: mgl64.Vec3{parameter.ArenaCurveMinX, 0, parameter.ArenaCurveMinZ},
			Max: mgl64.Vec3{parameter.ArenaCurveMaxX, 0, parameter.ArenaCurveMaxZ},
		},
		DegenerateDistance:  parameter.CurveDegenerateDistance,
		ContinuityMinT:      parameter.CurveContinuityMinT,
		InitialTangentScale: parameter.CurveInitialTangentScale,
		FinalTangentScale:   parameter.CurveFinalTangentScale,
		PerpOffsetMin:       parameter.CurvePerpOffsetMin,
		PerpOffsetMax:       parameter.CurvePerpOffsetMax,
		ReplanMin:           parameter.CurveReplanMin,
		ReplanSpan:          parameter.CurveReplanSpan,
		ProbeRadius:         parameter.EnemyEnvironmentHalfExtent,
		ProbeSamples:        parameter.CurveProbeSamples,
	}
}

// Plan builds a segment from `from` to a frozen snapshot of `target`, both flattened to y=0.
//
// When prev is non-nil and has progressed past ContinuityMinT, the new segment's start
// tangent is prev's derivative at prev.T, which keeps velocity continuous across the joint.
// Otherwise the start tangent is half the chord.
//
// The end tangent leans off the direct approach by a random side and offset, which is
// what keeps approaches from looking mechanical. rng is consumed in a fixed order:
// side, offset, countdown (degenerate segments consume only the countdown).
func (p *Planner) Plan(from, target mgl64.Vec3, prev *Curve, rng Rand) Plan {
	p0 := vmath.Flatten(from)
	p3 := vmath.Flatten(target)
	toTarget := p3.Sub(p0)
	distance := toTarget.Len()

	var plan Plan
	if distance < p.DegenerateDistance {
		plan.Curve = Curve{P0: p0, P1: p0, P2: p3, P3: p3}
		plan.Degenerate = true
	} else {
		dir := toTarget.Mul(1 / distance)
		perp := vmath.PerpXZ(dir)

		if prev != nil && prev.T > p.ContinuityMinT {
			plan.V0 = prev.Derivative(prev.T)
			plan.Continued = true
		} else {
			plan.V0 = toTarget.Mul(p.InitialTangentScale)
		}

		side := 1.0
		if rng.Intn(2) != 0 {
			side = -1.0
		}
		offset := p.PerpOffsetMin + rng.Float64()*(p.PerpOffsetMax-p.PerpOffsetMin)

		plan.Side = side
		plan.V1 = p.finalTangent(dir, perp, side, offset, distance)
		plan.Curve = p.build(p0, p3, plan.V0, plan.V1)

		if p.blocked(plan.Curve) {
			v1 := p.finalTangent(dir, perp, -side, offset, distance)
			alt := p.build(p0, p3, plan.V0, v1)
			if !p.blocked(alt) {
				plan.Side = -side
				plan.V1 = v1
				plan.Curve = alt
				plan.Mirrored = true
			}
		}
	}

	plan.Curve.T = 0
	plan.ReplanIn = p.ReplanMin + rng.Float64()*p.ReplanSpan
	return plan
}

func (p *Planner) finalTangent(dir, perp mgl64.Vec3, side, offset, distance float64) mgl64.Vec3 {
	approach := dir.Add(perp.Mul(side * offset))
	approach = vmath.SafeNormalize(approach, dir)
	return approach.Mul(distance * p.FinalTangentScale)
}

func (p *Planner) build(p0, p3, v0, v1 mgl64.Vec3) Curve {
	p1, p2 := vmath.HermiteToBezier(p0, p3, v0, v1)
	return Curve{P0: p0, P1: p.clampControl(p1), P2: p.clampControl(p2), P3: p3}
}

func (p *Planner) clampControl(c mgl64.Vec3) mgl64.Vec3 {
	c[0] = vmath.Clamp(c.X(), p.Bounds.Min.X(), p.Bounds.Max.X())
	c[2] = vmath.Clamp(c.Z(), p.Bounds.Min.Z(), p.Bounds.Max.Z())
	return c
}

// blocked reports whether the curve's interior crosses an obstacle
// Obstacles already touching either endpoint are ignored; no lateral choice can avoid them
func (p *Planner) blocked(c Curve) bool {
	for _, box := range p.Obstacles {
		grown := box.Expand(p.ProbeRadius)
		if grown.Contains(c.P0) || grown.Contains(c.P3) {
			continue
		}
		if hit, _ := c.Probe(p.ProbeRadius, box, p.ProbeSamples); hit {
			return true
		}
	}
	return false
}
