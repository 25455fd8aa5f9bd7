package parameter

// Curve locomotion
const (
	// CurveDegenerateDistance below which a segment collapses to a straight line
	CurveDegenerateDistance = 0.01

	// CurveMinAdvanceDistance below which t is not advanced
	CurveMinAdvanceDistance = 0.001

	// CurveContinuityMinT is the progress a retired curve needs before its derivative seeds v0
	CurveContinuityMinT = 0.001

	// CurveInitialTangentScale is the Catmull-Rom style factor for a first segment's v0
	CurveInitialTangentScale = 0.5

	// CurveFinalTangentScale scales v1 by segment distance
	CurveFinalTangentScale = 0.5

	// Lateral deviation of the approach direction, fraction of the unit direction
	CurvePerpOffsetMin = 0.3
	CurvePerpOffsetMax = 0.5

	// Replan countdown = min + rand*span (s)
	CurveReplanMin  = 2.0
	CurveReplanSpan = 1.0

	// CurveProbeSamples for obstacle probing of a candidate curve
	CurveProbeSamples = 16
)
