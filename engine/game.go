package engine

import (
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/input"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/stage"
	"github.com/lixenwraith/platform-fighter/status"
)

// Game owns one fighter on one stage and advances them a frame at a time
// Not safe for concurrent use; the driver loop is the only caller
type Game struct {
	Fighter *fighter.Fighter
	Stage   *stage.Stage

	attrs    fighter.Attributes
	surfaces []stage.Surface

	// controls carries the game's own edge history for Start and Z
	controls *input.ControllerState

	paused           bool
	advanceRequested bool
	frame            uint64
	respawning       bool

	logger  *slog.Logger
	onEvent func(Event)

	// Cached metric pointers, nil until Instrument
	statFrames     *atomic.Int64
	statState      *status.Label
	statStateFrame *atomic.Int64
	statVX         *status.Gauge
	statVY         *status.Gauge
	statPaused     *atomic.Bool
}

// NewGame places a fresh fighter at the stage spawn, logger may be nil
func NewGame(attrs fighter.Attributes, st *stage.Stage, logger *slog.Logger) *Game {
	g := &Game{
		Stage:    st,
		attrs:    attrs,
		surfaces: st.Surfaces(),
		controls: input.NewControllerState(parameter.DeadZone),
		logger:   discardLogger(logger),
	}
	g.spawnFighter()
	return g
}

// OnEvent sets the event sink, nil disables events
func (g *Game) OnEvent(fn func(Event)) { g.onEvent = fn }

// Instrument caches metric pointers in reg and publishes after every Update
func (g *Game) Instrument(reg *status.Registry) {
	g.statFrames = reg.Counters.Get(status.Frames)
	g.statState = reg.Labels.Get(status.State)
	g.statStateFrame = reg.Counters.Get(status.StateFrame)
	g.statVX = reg.Gauges.Get(status.VelocityX)
	g.statVY = reg.Gauges.Get(status.VelocityY)
	g.statPaused = reg.Flags.Get(status.Paused)
	g.publish()
}

// Frame counts simulated fighter steps, paused updates do not count
func (g *Game) Frame() uint64 { return g.frame }

func (g *Game) IsPaused() bool { return g.paused }

// SetPaused gates fighter stepping; input edges keep advancing while paused
func (g *Game) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.logger.Info("paused", "frame", g.frame)
		g.emit(EventPause, g.Fighter.State(), g.Fighter.State())
	} else {
		g.logger.Info("resumed", "frame", g.frame)
		g.emit(EventResume, g.Fighter.State(), g.Fighter.State())
	}
}

// RequestFrameAdvance steps exactly one frame on the next paused Update
func (g *Game) RequestFrameAdvance() { g.advanceRequested = true }

// Reset replaces the fighter with a fresh one at the stage spawn, unpaused
func (g *Game) Reset() {
	g.frame = 0
	g.paused = false
	g.advanceRequested = false
	g.controls.Reset()
	g.spawnFighter()
	g.logger.Info("reset")
	g.emit(EventReset, fighter.Idle, fighter.Idle)
	g.publish()
}

// Update consumes one frame of raw input
// Start toggles pause; while paused Z (or RequestFrameAdvance) runs a single
// step. Both controllers advance exactly once whether or not the fighter stepped
func (g *Game) Update(raw *input.ControllerState) {
	g.controls.CopyInputs(raw)
	g.Fighter.Input.CopyInputs(raw)

	if g.controls.Button(input.ButtonStart).JustPressed() {
		g.SetPaused(!g.paused)
	}

	step := !g.paused
	if g.paused && (g.advanceRequested || g.controls.Button(input.ButtonZ).JustPressed()) {
		step = true
	}
	g.advanceRequested = false

	if step {
		g.step()
	}

	g.controls.Advance()
	g.Fighter.Input.Advance()
	g.publish()
}

// step runs the fighter, then collision, ground following and the blast zone
func (g *Game) step() {
	f := g.Fighter
	jumpsBefore := f.AirJumpsLeft()

	f.Update()
	if f.AirJumpsLeft() < jumpsBefore {
		g.emit(EventAirJump, f.State(), f.State())
	}

	g.resolveCollisions()
	g.followGround()

	if f.Position.Y < g.Stage.BlastBottom {
		g.respawn()
	}
	g.frame++
}

func (g *Game) respawn() {
	from := g.Fighter.State()
	g.respawning = true
	g.Fighter.Respawn(g.Stage.RespawnPoint())
	g.respawning = false
	g.logger.Info("respawn", "frame", g.frame, "at", g.Fighter.Position)
	g.emit(EventRespawn, from, fighter.Airborne)
}

func (g *Game) spawnFighter() {
	f := fighter.New(g.attrs, g.Stage.Spawn)
	f.OnStateChange = g.observeState
	g.Fighter = f
}

// observeState turns fighter transitions into events
func (g *Game) observeState(from, to fighter.State) {
	g.logger.Debug("state", "frame", g.frame, "from", from, "to", to)
	if g.respawning {
		return
	}
	if t, ok := eventForTransition(from, to); ok {
		g.emit(t, from, to)
	}
}

func (g *Game) emit(t EventType, from, to fighter.State) {
	if g.onEvent == nil {
		return
	}
	g.onEvent(Event{Type: t, Frame: g.frame, From: from, To: to, Position: g.Fighter.Position})
}

func (g *Game) publish() {
	if g.statFrames == nil {
		return
	}
	f := g.Fighter
	g.statFrames.Store(int64(g.frame))
	g.statState.Set(f.State().String())
	g.statStateFrame.Store(int64(f.StateFrame()))
	g.statVX.Set(f.Velocity.X())
	g.statVY.Set(f.Velocity.Y())
	g.statPaused.Store(g.paused)
}
