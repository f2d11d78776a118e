package status

// Key names one published metric, the dotted prefix is the producing package
type Key string

// Simulator metrics
const (
	Frames        Key = "engine.frames"
	Paused        Key = "engine.paused"
	StepsLastTick Key = "engine.steps_last_tick"
	DroppedMillis Key = "engine.dropped_time_ms"

	State      Key = "fighter.state"
	StateFrame Key = "fighter.state_frame"
	VelocityX  Key = "fighter.vx"
	VelocityY  Key = "fighter.vy"
)
