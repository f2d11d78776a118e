package main

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/platform-fighter/audio"
	"github.com/lixenwraith/platform-fighter/config"
	"github.com/lixenwraith/platform-fighter/engine"
	"github.com/lixenwraith/platform-fighter/input"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/render"
	"github.com/lixenwraith/platform-fighter/service"
	"github.com/lixenwraith/platform-fighter/status"
	"github.com/lixenwraith/platform-fighter/telemetry"
)

// app wires the simulation to the terminal, speaker and telemetry
// Everything runs on the main loop goroutine except the telemetry hub
type app struct {
	cfg      *config.Config
	screen   tcell.Screen
	clock    engine.TimeProvider
	logger   *slog.Logger
	registry *status.Registry

	game       *engine.Game
	timestep   *engine.FixedTimestep
	frameClock *engine.FrameClock
	playClock  *engine.PausableClock
	renderer   *render.TerminalRenderer
	keyboard   *input.KeyboardController
	raw        *input.ControllerState
	cues       *audio.CuePlayer
	telemetry  *telemetry.Server
	services   *service.Hub

	lastPublished uint64
}

// newApp resolves fighter and stage from cfg; screen must already be initialized
func newApp(cfg *config.Config, screen tcell.Screen, clock engine.TimeProvider, logger *slog.Logger) (*app, error) {
	attrs, err := cfg.ResolveAttributes()
	if err != nil {
		return nil, err
	}
	st, err := cfg.ResolveStage()
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}

	a := &app{
		cfg:        cfg,
		screen:     screen,
		clock:      clock,
		logger:     logger,
		registry:   status.NewRegistry(),
		game:       engine.NewGame(attrs, st, logger),
		timestep:   engine.NewFixedTimestep(cfg.Simulation.FPS, cfg.Simulation.MaxStepsPerUpdate),
		frameClock: engine.NewFrameClock(clock),
		playClock:  engine.NewPausableClock(clock),
		keyboard:   input.NewKeyboardController(input.DefaultKeyTable(), cfg.Input.InitialHold, cfg.Input.RepeatHold),
		raw:        input.NewControllerState(parameter.DeadZone),
		cues:       audio.NewCuePlayer(clock, logger),
		services:   service.NewHub(logger),
	}
	a.game.Instrument(a.registry)
	a.timestep.Instrument(a.registry, logger)
	a.renderer = render.NewTerminalRenderer(screen, st, render.NewCamera(cfg.Render.Zoom, cfg.Render.CameraY), cfg.Render.ShowHUD)
	a.renderer.Instrument(a.registry)
	a.game.OnEvent(a.onEvent)

	logger.Info("game ready", "fighter", attrs.Name, "stage", st.Name, "fps", cfg.Simulation.FPS)
	return a, nil
}

// start registers and starts the optional services
// A telemetry address that cannot be bound disables telemetry without ending the game
func (a *app) start(ctx context.Context) {
	if a.cfg.Audio.Enabled {
		a.services.Register(&audioService{cues: a.cues, logger: a.logger})
	}
	if a.cfg.Telemetry.Addr != "" {
		a.telemetry = telemetry.NewServer(a.logger)
		a.services.Register(&telemetryService{server: a.telemetry, addr: a.cfg.Telemetry.Addr})
	}
	if err := a.services.StartAll(ctx); err != nil {
		a.logger.Warn("optional services disabled", "error", err)
		a.telemetry = nil
	}
}

func (a *app) stop() {
	a.services.StopAll()
}

// onEvent runs synchronously inside game.Update
func (a *app) onEvent(ev engine.Event) {
	a.logger.Debug("event", "type", ev.Type, "frame", ev.Frame, "from", ev.From, "to", ev.To)
	a.cues.HandleEvent(ev)

	switch ev.Type {
	case engine.EventPause:
		a.playClock.Pause()
	case engine.EventResume:
		a.playClock.Resume()
	case engine.EventReset:
		a.playClock.Restart()
	}

	if a.telemetry != nil {
		if err := a.telemetry.Hub.Publish("event", ev.Frame, ev); err != nil {
			a.logger.Warn("telemetry publish", "error", err)
		}
	}
}

// handleEvent processes one terminal event, false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()
	case *tcell.EventKey:
		return a.handleIntent(a.keyboard.HandleKey(ev, a.clock.Now()))
	}
	return true
}

func (a *app) handleIntent(intent input.Intent) bool {
	cam := &a.renderer.Camera
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentReset:
		a.keyboard.ReleaseAll()
		a.timestep.Reset()
		a.game.Reset()
	case input.IntentToggleHUD:
		a.renderer.ShowHUD = !a.renderer.ShowHUD
	case input.IntentToggleMute:
		muted := a.cues.ToggleMute()
		a.logger.Info("audio", "muted", muted)
	case input.IntentZoomIn:
		cam.ZoomIn()
	case input.IntentZoomOut:
		cam.ZoomOut()
	case input.IntentPanUp:
		cam.Pan(0, parameter.PanStepCells)
	case input.IntentPanDown:
		cam.Pan(0, -parameter.PanStepCells)
	case input.IntentRecenter:
		a.renderer.Camera = render.NewCamera(cam.Zoom, a.cfg.Render.CameraY)
	case input.IntentFrameAdvance:
		a.game.RequestFrameAdvance()
	}
	return true
}

// tick advances the simulation by the elapsed wall time and draws one frame
func (a *app) tick() {
	delta := a.frameClock.Tick()
	now := a.clock.Now()

	a.timestep.Update(delta, func() {
		digital := a.keyboard.Snapshot(now)
		digital.Apply(a.raw)
		a.game.Update(a.raw)
		a.publishSnapshot()
	})

	a.renderer.RenderFrame(render.View{
		Snapshot: a.game.Snapshot(),
		Alpha:    a.timestep.Interpolation(),
		PlayTime: a.playClock.Elapsed(),
		Muted:    a.cues.Muted(),
	})
}

// publishSnapshot sends every TelemetryPublishEvery-th new frame
func (a *app) publishSnapshot() {
	if a.telemetry == nil {
		return
	}
	frame := a.game.Frame()
	if frame == a.lastPublished || frame%parameter.TelemetryPublishEvery != 0 {
		return
	}
	a.lastPublished = frame
	snap := a.game.Snapshot()
	if err := a.telemetry.Hub.Publish("snapshot", frame, snap); err != nil {
		a.logger.Warn("telemetry publish", "error", err)
	}
	if frame%parameter.TelemetryMetricsEvery == 0 {
		if err := a.telemetry.Hub.Publish("metrics", frame, a.registry.Readout()); err != nil {
			a.logger.Warn("telemetry publish", "error", err)
		}
	}
}
