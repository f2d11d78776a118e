package fighter

import (
	"math"
	"testing"

	"github.com/lixenwraith/platform-fighter/input"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// rig drives a fighter with a raw controller the way the game loop does
type rig struct {
	f   *Fighter
	raw *input.ControllerState
}

func newRig(attrs Attributes) *rig {
	return &rig{
		f:   New(attrs, vmath.Pt(0, 0)),
		raw: input.NewControllerState(parameter.DeadZone),
	}
}

func (r *rig) stick(x, y float64) {
	r.raw.Stick.X.SetValue(x)
	r.raw.Stick.Y.SetValue(y)
}

func (r *rig) press(id input.ButtonID, held bool) {
	r.raw.Button(id).SetPressed(held)
}

func (r *rig) step(n int) {
	for i := 0; i < n; i++ {
		r.f.Step(r.raw)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestIdleDashRun(t *testing.T) {
	r := newRig(Fox())
	r.stick(1, 0)

	r.step(1)
	if r.f.State() != Dash {
		t.Fatalf("state after smash = %v, want Dash", r.f.State())
	}
	if r.f.Velocity.X() != 0 {
		t.Errorf("vx on dash entry frame = %v, want 0", r.f.Velocity.X())
	}

	// Start velocity plus one frame of dash acceleration (0.02 + 0.1)
	r.step(1)
	if !near(r.f.Velocity.X(), 2.02) {
		t.Errorf("vx after first dash frame = %v, want 2.02", r.f.Velocity.X())
	}

	for i := 2; i < 11; i++ {
		r.step(1)
		if r.f.State() != Dash {
			t.Fatalf("left Dash early on frame %d as %v", i+1, r.f.State())
		}
	}
	if r.f.StateFrame() != 11 {
		t.Fatalf("dash state frame = %d, want 11", r.f.StateFrame())
	}
	if !near(r.f.Velocity.X(), 2.2) {
		t.Errorf("dash vx = %v, want capped 2.2", r.f.Velocity.X())
	}

	r.step(1)
	if r.f.State() != Run || r.f.PreviousState() != Dash {
		t.Fatalf("state = %v (prev %v), want Run from Dash", r.f.State(), r.f.PreviousState())
	}
	if r.f.StateFrame() != 1 {
		t.Errorf("state frame after transition = %d, want 1", r.f.StateFrame())
	}
}

func TestDashStartVelocity(t *testing.T) {
	tests := []struct {
		name       string
		start, max float64
		want       float64
	}{
		{"start below max", 1.9, 2.2, 1.9},
		{"start clamped to max", 2.5, 2.2, 2.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := Fox()
			attrs.DashStartVelocity = tt.start
			attrs.DashMaxVelocity = tt.max
			attrs.DashBaseAcceleration = 0
			attrs.DashAxisAcceleration = 0

			r := newRig(attrs)
			r.stick(1, 0)
			r.step(2)
			if !near(r.f.Velocity.X(), tt.want) {
				t.Errorf("vx = %v, want %v", r.f.Velocity.X(), tt.want)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	r := newRig(Fox())
	r.stick(0.5, 0)

	r.step(1)
	if r.f.State() != Walk {
		t.Fatalf("state = %v, want Walk", r.f.State())
	}
	if !near(r.f.Velocity.X(), 0.2) {
		t.Errorf("walk kick = %v, want 0.2", r.f.Velocity.X())
	}

	r.step(1)
	if !near(r.f.Velocity.X(), 0.275) {
		t.Errorf("walk accel = %v, want 0.275", r.f.Velocity.X())
	}

	r.step(200)
	if math.Abs(r.f.Velocity.X()-0.8) > 1e-6 {
		t.Errorf("walk settles at %v, want 0.8", r.f.Velocity.X())
	}

	r.stick(0, 0)
	r.step(1)
	if r.f.State() != Idle {
		t.Errorf("release → %v, want Idle", r.f.State())
	}
}

func TestWalkStartKickFacingLeft(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		kick float64
	}{
		{"half", -0.5, 0},
		{"three quarters", -0.75, 0.05},
		{"light", -0.3, -0.04},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(Fox())
			r.f.FacingRight = false
			r.stick(tt.x, 0)

			r.step(1)
			if r.f.State() != Walk {
				t.Fatalf("state = %v, want Walk", r.f.State())
			}
			if !near(r.f.Velocity.X(), tt.kick) {
				t.Errorf("walk kick facing left = %v, want %v", r.f.Velocity.X(), tt.kick)
			}
		})
	}
}

func TestDashBack(t *testing.T) {
	r := newRig(Fox())
	r.stick(-1, 0)

	r.step(1)
	if r.f.State() != Turn {
		t.Fatalf("backward smash from Idle → %v, want Turn", r.f.State())
	}
	r.step(1)
	if r.f.State() != Dash || r.f.FacingRight {
		t.Fatalf("state %v facingRight %v, want Dash facing left", r.f.State(), r.f.FacingRight)
	}
	if !r.f.JustTurned() {
		t.Error("expected JustTurned on the flip frame")
	}
	r.step(1)
	if !near(r.f.Velocity.X(), -2.02) {
		t.Errorf("dash back vx = %v, want -2.02", r.f.Velocity.X())
	}
}

func TestSlowTurn(t *testing.T) {
	r := newRig(Fox())
	r.stick(-0.5, 0)

	r.step(1)
	if r.f.State() != Turn {
		t.Fatalf("state = %v, want Turn", r.f.State())
	}
	r.step(4)
	if !r.f.FacingRight {
		t.Fatal("facing flipped before slow dash back frame")
	}
	r.step(1)
	if r.f.FacingRight {
		t.Fatal("expected facing left at slow dash back frame")
	}
	r.step(5)
	if r.f.State() != Turn {
		t.Fatalf("left Turn early as %v", r.f.State())
	}
	r.step(1)
	if r.f.State() != Walk {
		t.Errorf("after turn frames → %v, want Walk", r.f.State())
	}
}

func TestTurnKickFromDash(t *testing.T) {
	r := newRig(Fox())
	r.f.ChangeState(Dash)
	r.f.Velocity.SetX(2.2)
	r.stick(-0.5, 0)

	r.step(1)
	if r.f.State() != Turn {
		t.Fatalf("state = %v, want Turn", r.f.State())
	}
	// 1.73 is a pinned literal
	if !near(r.f.Velocity.X(), 2.2-1.73) {
		t.Errorf("vx = %v, want 0.47", r.f.Velocity.X())
	}
}

func TestRunBrakeToIdle(t *testing.T) {
	r := newRig(Fox())
	r.stick(1, 0)
	r.step(12)
	if r.f.State() != Run {
		t.Fatalf("state = %v, want Run", r.f.State())
	}

	r.stick(0, 0)
	r.step(1)
	if r.f.State() != RunBrake {
		t.Fatalf("release → %v, want RunBrake", r.f.State())
	}
	r.step(18)
	if r.f.State() != Idle {
		t.Errorf("after run brake frames → %v, want Idle", r.f.State())
	}
}

func TestRunTurnFlipsOnce(t *testing.T) {
	r := newRig(Fox())
	r.stick(1, 0)
	r.step(20)
	if r.f.State() != Run {
		t.Fatalf("state = %v, want Run", r.f.State())
	}

	r.stick(-1, 0)
	r.step(1)
	if r.f.State() != RunTurn {
		t.Fatalf("reverse → %v, want RunTurn", r.f.State())
	}

	flips := 0
	for i := 0; i < 100 && r.f.State() == RunTurn; i++ {
		r.step(1)
		if r.f.JustTurned() {
			flips++
		}
	}
	if flips != 1 {
		t.Errorf("facing flipped %d times, want 1", flips)
	}
	if r.f.State() != Run || r.f.FacingRight {
		t.Errorf("exit state %v facingRight %v, want Run facing left", r.f.State(), r.f.FacingRight)
	}
	if r.f.Velocity.X() >= 0 {
		t.Errorf("vx = %v, want leftward", r.f.Velocity.X())
	}
}

func TestRunDivisionGuard(t *testing.T) {
	f := New(Fox(), vmath.Pt(0, 0))
	f.ChangeState(Run)
	f.Velocity.SetX(2)
	f.runUpdate()
	if !vmath.IsFinite(f.Velocity.X()) || !f.Position.IsFinite() {
		t.Errorf("run update with centred stick produced %v at %v", f.Velocity.X(), f.Position)
	}
}

func TestJumpHeights(t *testing.T) {
	tests := []struct {
		name   string
		holdX  int
		wantVY float64
	}{
		{"full hop", 4, 3.68},
		{"short hop", 1, 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(Fox())
			r.press(input.ButtonX, true)
			r.step(1)
			if r.f.State() != JumpSquat {
				t.Fatalf("state = %v, want JumpSquat", r.f.State())
			}
			r.step(tt.holdX - 1)
			r.press(input.ButtonX, false)
			r.step(4 - tt.holdX)

			if r.f.State() != Airborne {
				t.Fatalf("state = %v, want Airborne", r.f.State())
			}
			if !near(r.f.Velocity.Y(), tt.wantVY) || !near(r.f.Position.Y, tt.wantVY) {
				t.Errorf("vy %v y %v, want %v", r.f.Velocity.Y(), r.f.Position.Y, tt.wantVY)
			}
		})
	}
}

func TestJumpHorizontalCarry(t *testing.T) {
	r := newRig(Fox())
	r.f.Velocity.SetX(2.2)
	r.stick(1, 0)
	r.f.ChangeState(JumpSquat)

	// Let JumpSquat run out with the stick forward
	r.step(4)
	if r.f.State() != Airborne {
		t.Fatalf("state = %v, want Airborne", r.f.State())
	}
	if !near(r.f.Velocity.X(), 1.7) {
		t.Errorf("vx = %v, want capped 1.7", r.f.Velocity.X())
	}
}

func TestAirJump(t *testing.T) {
	r := newRig(Fox())
	r.press(input.ButtonX, true)
	r.step(6)
	r.press(input.ButtonX, false)
	r.step(1)
	if r.f.AirJumpsLeft() != 1 {
		t.Fatalf("air jumps = %d, want 1", r.f.AirJumpsLeft())
	}

	r.press(input.ButtonY, true)
	r.step(1)
	// full hop * 1.2 then one frame of gravity
	if !near(r.f.Velocity.Y(), 3.68*1.2-0.23) {
		t.Errorf("air jump vy = %v", r.f.Velocity.Y())
	}
	if r.f.AirJumpsLeft() != 0 {
		t.Errorf("air jumps = %d, want 0", r.f.AirJumpsLeft())
	}

	r.press(input.ButtonY, false)
	r.step(1)
	r.press(input.ButtonY, true)
	vy := r.f.Velocity.Y()
	r.step(1)
	if r.f.Velocity.Y() > vy {
		t.Error("jump without air jumps left must not add height")
	}
}

func TestFastFall(t *testing.T) {
	r := newRig(Fox())
	r.f.ChangeState(Airborne)
	r.step(1)
	r.f.Velocity.SetY(-0.5)

	r.stick(0, -1)
	r.step(1)
	if !near(r.f.Velocity.Y(), -3.4) {
		t.Errorf("fast fall vy = %v, want -3.4", r.f.Velocity.Y())
	}
}

func TestAirDodge(t *testing.T) {
	r := newRig(Fox())
	r.f.ChangeState(Airborne)
	r.step(1)

	r.stick(1, 0)
	r.press(input.ButtonR, true)
	r.step(1)
	if r.f.State() != AirDodge {
		t.Fatalf("shield press in air → %v, want AirDodge", r.f.State())
	}
	if !near(r.f.Velocity.X(), 3.1*0.9) || !near(r.f.Velocity.Y(), 0) {
		t.Errorf("dodge velocity = (%v,%v), want (2.79,0)", r.f.Velocity.X(), r.f.Velocity.Y())
	}

	r.step(1)
	if !near(r.f.Velocity.X(), 3.1*0.9*0.9) {
		t.Errorf("decay vx = %v", r.f.Velocity.X())
	}

	r.stick(0, 0)
	r.step(28)
	vy := r.f.Velocity.Y()
	r.step(1)
	if r.f.StateFrame() != 31 || !(r.f.Velocity.Y() < vy) {
		t.Errorf("gravity should resume after the burst, vy %v → %v", vy, r.f.Velocity.Y())
	}

	r.f.Land()
	if r.f.State() != LandSpecial {
		t.Errorf("dodge landing → %v, want LandSpecial", r.f.State())
	}
}

func TestNeutralAirDodgeStops(t *testing.T) {
	r := newRig(Fox())
	r.f.ChangeState(Airborne)
	r.f.Velocity.Set(1, 1)
	r.step(1)
	r.press(input.ButtonL, true)
	r.step(1)
	if r.f.Velocity.Magnitude() != 0 {
		t.Errorf("neutral dodge velocity = %v, want 0", r.f.Velocity.Magnitude())
	}
}

func TestJumpSquatIntoAirDodge(t *testing.T) {
	r := newRig(Fox())
	r.press(input.ButtonX, true)
	r.step(1)
	r.press(input.ButtonL, true)
	r.step(3)
	if r.f.State() != AirDodge {
		t.Errorf("shield held at jump squat end → %v, want AirDodge", r.f.State())
	}
}

func TestLandLag(t *testing.T) {
	r := newRig(Fox())
	r.f.ChangeState(Airborne)
	r.f.Velocity.Set(1, -2)
	r.f.airJumpsLeft = 0
	r.f.Land()
	if r.f.State() != Land {
		t.Fatalf("Land() from Airborne → %v", r.f.State())
	}

	r.step(1)
	if r.f.Velocity.Y() != 0 || r.f.AirJumpsLeft() != 1 {
		t.Errorf("touch down vy %v jumps %d", r.f.Velocity.Y(), r.f.AirJumpsLeft())
	}
	if !near(r.f.Velocity.X(), 1-0.16) {
		t.Errorf("landing friction vx = %v, want 0.84", r.f.Velocity.X())
	}
	r.step(2)
	if r.f.State() != Idle {
		t.Errorf("after land lag → %v, want Idle", r.f.State())
	}
}

func TestLandSpecialLocksInput(t *testing.T) {
	r := newRig(Fox())
	r.f.ChangeState(AirDodge)
	r.f.Land()
	r.stick(1, 0)

	r.step(9)
	if r.f.State() != LandSpecial {
		t.Fatalf("left LandSpecial early as %v", r.f.State())
	}
	r.step(1)
	if r.f.State() != Walk {
		t.Errorf("after lock → %v, want Walk (held stick is no longer a smash)", r.f.State())
	}
}

func TestSmashDetection(t *testing.T) {
	f := New(Fox(), vmath.Pt(0, 0))
	raw := input.NewControllerState(parameter.DeadZone)

	raw.Stick.X.SetValue(0.5)
	for i := 0; i < 3; i++ {
		f.Input.CopyInputs(raw)
		f.Input.Advance()
	}
	raw.Stick.X.SetValue(1)
	f.Input.CopyInputs(raw)
	if f.XAxisSmashed() {
		t.Error("slow ramp should not count as smash")
	}

	g := New(Fox(), vmath.Pt(0, 0))
	g.Input.CopyInputs(raw)
	if !g.XAxisSmashed() {
		t.Error("flick to full should count as smash")
	}
}

func TestFall(t *testing.T) {
	f := New(Fox(), vmath.Pt(0, 0))
	f.ChangeState(Run)
	f.Fall()
	if f.State() != Airborne || f.PreviousState() != Run {
		t.Errorf("Fall → %v from %v", f.State(), f.PreviousState())
	}

	f.ChangeState(JumpSquat)
	f.Fall()
	if f.State() != JumpSquat {
		t.Error("Fall must not cancel a jump squat")
	}
}

func TestRespawnSkipsJumpEntry(t *testing.T) {
	var changes []State
	f := New(Fox(), vmath.Pt(0, 0))
	f.OnStateChange = func(_, to State) { changes = append(changes, to) }
	f.ChangeState(JumpSquat)
	f.Respawn(vmath.Pt(0, 40))
	f.Update()
	if f.Velocity.Y() > 0 {
		t.Errorf("respawn applied a hop: vy = %v", f.Velocity.Y())
	}
	if len(changes) != 2 || changes[1] != Airborne {
		t.Errorf("observed changes %v", changes)
	}
}

func TestDispatchTableComplete(t *testing.T) {
	for s := State(0); s < StateCount; s++ {
		if stateTable[s].transition == nil || stateTable[s].update == nil {
			t.Errorf("state %v missing dispatch entry", s)
		}
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
}
