package fighter

import (
	"github.com/lixenwraith/platform-fighter/input"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/physics"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// Fighter is one character's kinematic and discrete movement state
// state, previousState and stateFrame only change together through ChangeState
type Fighter struct {
	Attrs Attributes

	Position         vmath.Point2D
	PreviousPosition vmath.Point2D
	Velocity         vmath.Vector2D
	FacingRight      bool
	WasFacingRight   bool

	// Input is read by transitions and updates; the owner copies raw input
	// in before Update and advances it after
	Input *input.ControllerState

	// OnStateChange observes every transition, including self re-entry
	OnStateChange func(from, to State)

	state         State
	previousState State
	stateFrame    uint32
	airJumpsLeft  uint32

	dashShouldResetVelocity        bool
	runTurnMeleeFrame              uint32
	runTurnWasFacingRightInitially bool
	runTurnHasChangedDirection     bool
	runTurnHasFullyTurned          bool
}

// New places an Idle fighter facing right at spawn
func New(attrs Attributes, spawn vmath.Point2D) *Fighter {
	return &Fighter{
		Attrs:            attrs,
		Position:         spawn,
		PreviousPosition: spawn,
		FacingRight:      true,
		WasFacingRight:   true,
		Input:            input.NewControllerState(parameter.DeadZone),
		airJumpsLeft:     attrs.AirJumps,
	}
}

func (f *Fighter) State() State             { return f.state }
func (f *Fighter) PreviousState() State     { return f.previousState }
func (f *Fighter) StateFrame() uint32       { return f.stateFrame }
func (f *Fighter) AirJumpsLeft() uint32     { return f.airJumpsLeft }
func (f *Fighter) ECB() ECB                 { return f.Attrs.ECB }
func (f *Fighter) IsGrounded() bool         { return f.state.IsGrounded() }
func (f *Fighter) JustTurned() bool         { return f.FacingRight != f.WasFacingRight }
func (f *Fighter) CanLand() bool            { return f.state.IsAerial() }
func (f *Fighter) ECBBottom() vmath.Point2D { return f.Attrs.ECB.BottomAt(f.Position) }

// ChangeState enters s at frame 0, remembering the state it left
func (f *Fighter) ChangeState(s State) {
	from := f.state
	f.stateFrame = 0
	f.previousState = f.state
	f.state = s
	if f.OnStateChange != nil {
		f.OnStateChange(from, s)
	}
}

// Land moves an aerial fighter onto the ground: Airborne → Land, AirDodge → LandSpecial
func (f *Fighter) Land() {
	switch f.state {
	case Airborne:
		f.ChangeState(Land)
	case AirDodge:
		f.ChangeState(LandSpecial)
	}
}

// Fall sends a grounded fighter airborne after it loses its footing
// A JumpSquat in progress keeps its jump
func (f *Fighter) Fall() {
	if f.state.IsAerial() || f.state == JumpSquat {
		return
	}
	f.ChangeState(Airborne)
}

// SnapToGround moves the fighter vertically so its ECB bottom rests at y
func (f *Fighter) SnapToGround(y float64) {
	f.Position.Y += y - f.ECBBottom().Y
}

// FacingDirection returns 1 facing right, -1 facing left
func (f *Fighter) FacingDirection() float64 {
	if f.FacingRight {
		return 1
	}
	return -1
}

// Respawn resets kinematics and state at spawn, facing right
func (f *Fighter) Respawn(spawn vmath.Point2D) {
	f.Position = spawn
	f.PreviousPosition = spawn
	f.Velocity = vmath.Vector2D{}
	f.FacingRight = true
	f.WasFacingRight = true
	f.airJumpsLeft = f.Attrs.AirJumps
	f.dashShouldResetVelocity = false

	// Both slots set so Airborne's frame-0 jump entry cannot fire
	from := f.state
	f.state, f.previousState, f.stateFrame = Airborne, Airborne, 0
	if f.OnStateChange != nil {
		f.OnStateChange(from, Airborne)
	}
}

// Input predicates

// ShouldJump is X or Y just pressed
func (f *Fighter) ShouldJump() bool {
	return f.Input.Button(input.ButtonX).JustPressed() || f.Input.Button(input.ButtonY).JustPressed()
}

// JumpIsActive is X or Y held, selects full hop over short hop
func (f *Fighter) JumpIsActive() bool {
	return f.Input.Button(input.ButtonX).IsPressed() || f.Input.Button(input.ButtonY).IsPressed()
}

// ShieldIsPressed is L or R held
func (f *Fighter) ShieldIsPressed() bool {
	return f.Input.Button(input.ButtonL).IsPressed() || f.Input.Button(input.ButtonR).IsPressed()
}

// ShieldJustPressed is L or R just pressed
func (f *Fighter) ShieldJustPressed() bool {
	return f.Input.Button(input.ButtonL).JustPressed() || f.Input.Button(input.ButtonR).JustPressed()
}

func (f *Fighter) XAxisIsForward() bool {
	x := &f.Input.Stick.X
	return x.IsActive() && ((x.Value() > 0 && f.FacingRight) || (x.Value() < 0 && !f.FacingRight))
}

func (f *Fighter) XAxisIsBackward() bool {
	return f.Input.Stick.X.IsActive() && !f.XAxisIsForward()
}

func (f *Fighter) XAxisSmashed() bool {
	x := &f.Input.Stick.X
	return x.Magnitude() >= parameter.XSmashThreshold && x.ActiveFrames() < parameter.SmashFrameWindow
}

func (f *Fighter) YAxisSmashed() bool {
	y := &f.Input.Stick.Y
	return y.Magnitude() >= parameter.YSmashThreshold && y.ActiveFrames() < parameter.SmashFrameWindow
}

// Update runs one frame: transition for the current state, then update for
// the resulting state, then the state frame counter advances
// Input edges are not advanced here
func (f *Fighter) Update() {
	f.WasFacingRight = f.FacingRight
	f.PreviousPosition = f.Position

	stateTable[f.state].transition(f)
	stateTable[f.state].update(f)

	f.stateFrame++
}

// Step copies raw into the fighter's input, runs Update and advances edges
// For callers driving a fighter without a Game
func (f *Fighter) Step(raw *input.ControllerState) {
	f.Input.CopyInputs(raw)
	f.Update()
	f.Input.Advance()
}

// Movement helpers shared by states

func (f *Fighter) applyFriction(friction float64) {
	f.Velocity.SetX(physics.ApplyFriction(f.Velocity.X(), friction))
}

func (f *Fighter) applyAcceleration(base, axisAccel, maxV, friction float64) {
	f.Velocity.SetX(physics.ApplyAcceleration(f.Velocity.X(), f.Input.Stick.X.Value(), base, axisAccel, maxV, friction))
}

func (f *Fighter) handleHorizontalAirMovement() {
	if !f.Input.Stick.X.IsActive() {
		f.applyFriction(f.Attrs.AirFriction)
		return
	}
	f.applyAcceleration(f.Attrs.AirBaseAcceleration, f.Attrs.AirAxisAcceleration, f.Attrs.AirMaxVelocity, f.Attrs.AirFriction)
}

func (f *Fighter) handleFastFall() {
	triggered := f.Input.Stick.Y.Value() < 0 && f.YAxisSmashed()
	f.Velocity.SetY(physics.FastFall(f.Velocity.Y(), f.Attrs.FastFallVelocity, triggered))
}

func (f *Fighter) handleGravity() {
	f.Velocity.SetY(physics.ApplyGravity(f.Velocity.Y(), f.Attrs.Gravity, f.Attrs.FallVelocity))
}

func (f *Fighter) moveWithVelocity() {
	f.Position = physics.Integrate(f.Position, f.Velocity)
}
