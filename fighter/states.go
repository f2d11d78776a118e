package fighter

import (
	"math"

	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/physics"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// stateFuncs is one row of the dispatch table
type stateFuncs struct {
	transition func(*Fighter)
	update     func(*Fighter)
}

// stateTable is indexed by State; every state has both entries
var stateTable = [StateCount]stateFuncs{
	Idle:        {(*Fighter).idleTransition, (*Fighter).idleUpdate},
	Turn:        {(*Fighter).turnTransition, (*Fighter).turnUpdate},
	Walk:        {(*Fighter).walkTransition, (*Fighter).walkUpdate},
	Dash:        {(*Fighter).dashTransition, (*Fighter).dashUpdate},
	Run:         {(*Fighter).runTransition, (*Fighter).runUpdate},
	RunBrake:    {(*Fighter).runBrakeTransition, (*Fighter).runBrakeUpdate},
	RunTurn:     {(*Fighter).runTurnTransition, (*Fighter).runTurnUpdate},
	JumpSquat:   {(*Fighter).jumpSquatTransition, (*Fighter).jumpSquatUpdate},
	Airborne:    {(*Fighter).airborneTransition, (*Fighter).airborneUpdate},
	AirDodge:    {(*Fighter).airDodgeTransition, (*Fighter).airDodgeUpdate},
	Land:        {(*Fighter).landTransition, (*Fighter).landUpdate},
	LandSpecial: {(*Fighter).landSpecialTransition, (*Fighter).landSpecialUpdate},
}

// --- Idle ---

func (f *Fighter) idleTransition() {
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case f.XAxisIsForward() && f.XAxisSmashed():
		f.ChangeState(Dash)
	case f.XAxisIsForward():
		f.ChangeState(Walk)
	case f.XAxisIsBackward():
		f.ChangeState(Turn)
	}
}

func (f *Fighter) idleUpdate() {
	f.applyFriction(f.Attrs.GroundFriction)
	f.moveWithVelocity()
}

// --- Turn ---

func (f *Fighter) turnTransition() {
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case f.XAxisIsBackward() && f.XAxisSmashed():
		f.ChangeState(Dash)
	case f.XAxisIsForward() && f.stateFrame >= f.Attrs.TurnFrames:
		f.ChangeState(Walk)
	case f.stateFrame >= f.Attrs.TurnFrames:
		f.ChangeState(Idle)
	}
}

func (f *Fighter) turnUpdate() {
	if f.stateFrame == 0 && f.previousState == Dash {
		f.Velocity.SetX(f.Velocity.X() - vmath.Sign(f.Velocity.X())*parameter.TurnDashBackKick)
	}

	// Friction starts on frame 2 whichever state the turn came from
	if f.stateFrame > 1 {
		f.applyFriction(2 * f.Attrs.GroundFriction)
	}
	if f.XAxisIsBackward() && f.stateFrame == f.Attrs.SlowDashBackFrames {
		f.FacingRight = f.Input.Stick.X.Value() >= 0
	}
	f.moveWithVelocity()
}

// --- Walk ---

func (f *Fighter) walkTransition() {
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case f.XAxisIsForward() && f.XAxisSmashed():
		f.ChangeState(Dash)
	case !f.XAxisIsForward():
		f.ChangeState(Idle)
	}
}

func (f *Fighter) walkUpdate() {
	axis := &f.Input.Stick.X
	vx := f.Velocity.X()

	// Signed axis value: facing left with the stick at -0.5 kicks by zero
	if f.stateFrame == 0 && axis.IsActive() {
		vx += f.FacingDirection() * (parameter.WalkStartBase + parameter.WalkStartAxis*axis.Value())
	}

	target := f.Attrs.WalkMaxVelocity * axis.Value()
	switch {
	case math.Abs(vx) > math.Abs(target):
		vx = physics.ApplyFriction(vx, 2*f.Attrs.GroundFriction)
	case axis.IsActive() && f.stateFrame >= 1:
		vx += (target - vx) * parameter.WalkAccelFactor * axis.Magnitude()
		if (target < 0 && vx < target) || (target > 0 && vx > target) {
			vx = target
		}
	}
	f.Velocity.SetX(vx)
	f.moveWithVelocity()
}

// --- Dash ---

func (f *Fighter) dashTransition() {
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case f.XAxisIsForward() && f.stateFrame >= f.Attrs.DashMaxFrames:
		f.ChangeState(Dash)
	case f.XAxisIsForward() && f.stateFrame >= f.Attrs.DashMinFrames:
		f.ChangeState(Run)
	case !f.Input.Stick.X.IsActive() && f.stateFrame >= f.Attrs.DashMaxFrames:
		f.ChangeState(Idle)
	case f.XAxisIsBackward():
		f.ChangeState(Turn)
	}
}

func (f *Fighter) dashUpdate() {
	if f.stateFrame == 0 {
		switch f.previousState {
		case Turn:
			f.FacingRight = !f.FacingRight
		case Dash:
			f.dashShouldResetVelocity = true
		}
	}

	if f.stateFrame == 1 {
		if f.dashShouldResetVelocity {
			f.Velocity.SetX(0)
			f.dashShouldResetVelocity = false
		}
		vx := f.Velocity.X() + f.Attrs.DashStartVelocity*f.FacingDirection()
		if math.Abs(vx) > f.Attrs.DashMaxVelocity {
			vx = f.Attrs.DashMaxVelocity * f.FacingDirection()
		}
		f.Velocity.SetX(vx)
	}

	if f.stateFrame >= 1 {
		if !f.Input.Stick.X.IsActive() {
			f.applyFriction(f.Attrs.GroundFriction)
		} else {
			f.applyAcceleration(f.Attrs.DashBaseAcceleration, f.Attrs.DashAxisAcceleration, f.Attrs.DashMaxVelocity, f.Attrs.GroundFriction)
		}
	}
	f.moveWithVelocity()
}

// --- Run ---

func (f *Fighter) runTransition() {
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case !f.Input.Stick.X.IsActive():
		f.ChangeState(RunBrake)
	case f.XAxisIsBackward():
		f.ChangeState(RunTurn)
	}
}

func (f *Fighter) runUpdate() {
	axis := &f.Input.Stick.X
	maxV := f.Attrs.DashMaxVelocity
	magnitude := math.Max(axis.Magnitude(), parameter.RunMinAxisMagnitude)

	accel := (maxV*axis.Value() - f.Velocity.X()) *
		(1 / (parameter.RunAccelDivisor * maxV)) *
		(f.Attrs.DashAxisAcceleration + f.Attrs.DashBaseAcceleration/magnitude)
	f.Velocity.SetX(f.Velocity.X() + accel)
	f.moveWithVelocity()
}

// --- RunBrake ---

func (f *Fighter) runBrakeTransition() {
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case f.XAxisIsBackward() && f.stateFrame >= f.Attrs.RunBrakeFrames:
		f.ChangeState(Turn)
	case f.XAxisIsBackward():
		f.ChangeState(RunTurn)
	case !f.Input.Stick.X.IsActive() && f.stateFrame >= f.Attrs.RunBrakeFrames:
		f.ChangeState(Idle)
	}
}

func (f *Fighter) runBrakeUpdate() {
	f.applyFriction(f.Attrs.GroundFriction)
	f.moveWithVelocity()
}

// --- RunTurn ---
// Exits are gated by runTurnMeleeFrame, which stops counting at 9 until the turn completes

func (f *Fighter) runTurnTransition() {
	if f.ShouldJump() {
		f.ChangeState(JumpSquat)
		return
	}
	if f.runTurnMeleeFrame < parameter.RunTurnExitFrame {
		return
	}
	switch {
	case f.XAxisIsForward():
		f.ChangeState(Run)
	case f.XAxisIsBackward():
		f.ChangeState(Turn)
	case !f.Input.Stick.X.IsActive():
		f.ChangeState(Idle)
	}
}

func (f *Fighter) runTurnUpdate() {
	if f.stateFrame == 0 {
		f.runTurnMeleeFrame = 0
		f.runTurnWasFacingRightInitially = f.FacingRight
		f.runTurnHasChangedDirection = false
		f.runTurnHasFullyTurned = false
	}

	vx := f.Velocity.X()
	if (f.runTurnWasFacingRightInitially && vx <= 0) || (!f.runTurnWasFacingRightInitially && vx >= 0) {
		f.runTurnHasFullyTurned = true
	}
	if f.runTurnHasFullyTurned && !f.runTurnHasChangedDirection {
		f.FacingRight = !f.FacingRight
		f.runTurnHasChangedDirection = true
	}

	if !f.Input.Stick.X.IsActive() ||
		(!f.runTurnHasFullyTurned && f.XAxisIsForward()) ||
		(f.runTurnHasFullyTurned && f.XAxisIsBackward()) {
		f.applyFriction(f.Attrs.GroundFriction)
	} else {
		f.applyAcceleration(f.Attrs.DashBaseAcceleration, f.Attrs.DashAxisAcceleration, f.Attrs.DashMaxVelocity, f.Attrs.GroundFriction)
	}
	f.moveWithVelocity()

	if f.runTurnHasFullyTurned || f.runTurnMeleeFrame < parameter.RunTurnPreTurnCap {
		f.runTurnMeleeFrame++
	}
}

// --- JumpSquat ---

func (f *Fighter) jumpSquatTransition() {
	if f.stateFrame < f.Attrs.JumpSquatFrames {
		return
	}
	if f.ShieldIsPressed() {
		f.ChangeState(AirDodge)
		return
	}
	f.ChangeState(Airborne)
}

func (f *Fighter) jumpSquatUpdate() {
	f.applyFriction(2 * f.Attrs.GroundFriction)
	f.moveWithVelocity()
}

// --- Airborne ---

func (f *Fighter) airborneTransition() {
	if f.ShieldJustPressed() {
		f.ChangeState(AirDodge)
	}
}

func (f *Fighter) airborneUpdate() {
	axis := f.Input.Stick.X.Value()

	if f.stateFrame == 0 && f.previousState == JumpSquat {
		vx := f.Velocity.X()*f.Attrs.JumpVelocityDampening + axis*f.Attrs.JumpStartHorizontalVelocity
		if math.Abs(vx) > f.Attrs.JumpMaxHorizontalVelocity {
			vx = vmath.Sign(vx) * f.Attrs.JumpMaxHorizontalVelocity
		}
		vy := f.Attrs.ShortHopVelocity
		if f.JumpIsActive() {
			vy = f.Attrs.FullHopVelocity
		}
		f.Velocity.Set(vx, vy)
	}

	if f.stateFrame >= 1 {
		if f.ShouldJump() && f.airJumpsLeft > 0 {
			f.Velocity.Set(
				axis*f.Attrs.AirJumpHorizontalAxisMultiplier,
				f.Attrs.FullHopVelocity*f.Attrs.AirJumpVelocityMultiplier,
			)
			f.airJumpsLeft--
		}
		f.handleHorizontalAirMovement()
		f.handleFastFall()
		f.handleGravity()
	}
	f.moveWithVelocity()
}

// --- AirDodge ---
// No transitions, only landing ends a dodge

func (f *Fighter) airDodgeTransition() {}

func (f *Fighter) airDodgeUpdate() {
	if f.stateFrame == 0 {
		stick := &f.Input.Stick
		if stick.X.IsActive() || stick.Y.IsActive() {
			f.Velocity = vmath.FromAngle(stick.Angle(), parameter.AirDodgeSpeed)
		} else {
			f.Velocity = vmath.Vector2D{}
		}
	}

	if f.stateFrame < parameter.AirDodgeFrames {
		f.Velocity = physics.Decay(f.Velocity, parameter.AirDodgeDecay)
	} else {
		f.handleHorizontalAirMovement()
		f.handleFastFall()
		f.handleGravity()
	}
	f.moveWithVelocity()
}

// --- Land ---

func (f *Fighter) landTransition() {
	if f.stateFrame >= parameter.LandFrames {
		f.ChangeState(Idle)
	}
}

func (f *Fighter) landUpdate() {
	if f.stateFrame == 0 {
		f.touchDown()
	}
	f.applyFriction(2 * f.Attrs.GroundFriction)
	f.moveWithVelocity()
}

// --- LandSpecial ---
// Idle's branches plus a return to Idle, all locked for LandSpecialFrames

func (f *Fighter) landSpecialTransition() {
	if f.stateFrame < parameter.LandSpecialFrames {
		return
	}
	switch {
	case f.ShouldJump():
		f.ChangeState(JumpSquat)
	case f.XAxisIsForward() && f.XAxisSmashed():
		f.ChangeState(Dash)
	case f.XAxisIsForward():
		f.ChangeState(Walk)
	case f.XAxisIsBackward():
		f.ChangeState(Turn)
	case !f.Input.Stick.X.IsActive():
		f.ChangeState(Idle)
	}
}

func (f *Fighter) landSpecialUpdate() {
	if f.stateFrame == 0 {
		f.touchDown()
	}
	multiplier := 1.0
	if f.stateFrame < parameter.LandSpecialHeavyFrictionFrames {
		multiplier = 2
	}
	f.applyFriction(multiplier * f.Attrs.GroundFriction)
	f.moveWithVelocity()
}

// touchDown clears vertical speed and refills air jumps
func (f *Fighter) touchDown() {
	f.Velocity.SetY(0)
	f.airJumpsLeft = f.Attrs.AirJumps
}
