package parameter

import "time"

// Simulation Timing
const (
	// SimulationFPS is the logical frame rate, independent of render rate
	SimulationFPS = 60

	// MaxStepsPerUpdate caps catch-up steps per render tick, excess accumulator is dropped
	MaxStepsPerUpdate = 10

	// RenderInterval is the presentation tick (~60 FPS)
	RenderInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the main loop
	EventChannelSize = 64
)

// Collision
const (
	// CollisionTolerance extends the ECB movement segment backward to avoid tunneling
	CollisionTolerance = 0.01

	// GroundStepTolerance is the max height a grounded fighter follows down or up a slope per frame
	GroundStepTolerance = 2.0

	// WallPushOut separates the fighter from a wall after a blocked move
	WallPushOut = 0.001
)

// Respawn
const (
	// DefaultBlastBottom is the y below which the fighter respawns when a stage sets none
	DefaultBlastBottom = -140.0

	// RespawnHeight lifts the stage spawn point on respawn so the fighter drops in
	RespawnHeight = 40.0
)
