package parameter

import "time"

// Sandbox loop timing
const (
	// FrameUpdateInterval is the render ticker interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SimulationStep is the fixed tick length in seconds, independent of ticker jitter
	SimulationStep = 1.0 / 60

	// InputHoldFrames keeps a movement key active between terminal key repeats
	InputHoldFrames = 8

	// InputQueueSize buffers terminal events between the poller and the loop
	InputQueueSize = 64
)
