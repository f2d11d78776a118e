package parameter

// Fighter Movement Constants shared by every character
const (
	// TurnDashBackKick is subtracted from vx on entering Turn from Dash
	// Empirical value, pinned as-is
	TurnDashBackKick = 1.73

	// WalkStartBase and WalkStartAxis form the first-frame walk kick: base + axis*value
	WalkStartBase = 0.1
	WalkStartAxis = 0.2

	// WalkAccelFactor scales the per-frame walk approach toward target velocity
	WalkAccelFactor = 0.25

	// RunAccelDivisor scales Run acceleration as 1/(RunAccelDivisor*dash_max)
	RunAccelDivisor = 2.5

	// RunMinAxisMagnitude keeps the Run acceleration division finite
	RunMinAxisMagnitude = 1e-3

	// RunTurnExitFrame is the RunTurn counter value that unlocks exits
	RunTurnExitFrame = 20

	// RunTurnPreTurnCap stops RunTurn counting until the fighter fully turns
	RunTurnPreTurnCap = 9

	// AirDodgeSpeed is the initial burst speed along the stick angle
	AirDodgeSpeed = 3.1

	// AirDodgeDecay multiplies velocity every frame of the dodge burst
	AirDodgeDecay = 0.9

	// AirDodgeFrames is the burst duration before normal air control resumes
	AirDodgeFrames = 30

	// LandFrames is the fixed landing lag
	LandFrames = 2

	// LandSpecialFrames is the minimum lag after landing out of an air dodge
	LandSpecialFrames = 9

	// LandSpecialHeavyFrictionFrames applies double friction at the start of LandSpecial
	LandSpecialHeavyFrictionFrames = 3
)

// DefaultPreset is the character used when none is configured
const DefaultPreset = "fox"
