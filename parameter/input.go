package parameter

import "time"

// Analog Input
const (
	// DeadZone is the axis magnitude below which input is neutral
	DeadZone = 0.2875

	// StickResolution is the number of discrete steps per unit of stick travel
	StickResolution = 80.0

	// XSmashThreshold is the x magnitude a smash input must reach within SmashFrameWindow frames
	XSmashThreshold = 0.8

	// YSmashThreshold is the y magnitude a smash input must reach within SmashFrameWindow frames
	YSmashThreshold = 0.6625

	// SmashFrameWindow is the active frame count below which a strong input counts as smashed
	SmashFrameWindow = 2
)

// Keyboard Hold Emulation
// Terminals report presses and auto-repeats but never releases, a key counts
// as held until its deadline passes without another repeat
const (
	// KeyInitialHold covers the OS auto-repeat delay after the first press
	KeyInitialHold = 550 * time.Millisecond

	// KeyRepeatHold is refreshed on every auto-repeat event
	KeyRepeatHold = 120 * time.Millisecond
)
