package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/platform-fighter/config"
	"github.com/lixenwraith/platform-fighter/engine"
	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/stage"
	"github.com/lixenwraith/platform-fighter/status"
)

type appHarness struct {
	*app
	clock *engine.MockTimeProvider
}

func newHarness(t *testing.T, cfg *config.Config) appHarness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 40)

	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Audio.Enabled = false

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a, err := newApp(cfg, screen, clock, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	a.start(context.Background())
	t.Cleanup(a.stop)

	// First tick only primes the frame clock
	a.tick()
	return appHarness{app: a, clock: clock}
}

func (h appHarness) key(k tcell.Key, ch rune) bool {
	mod := tcell.ModNone
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		mod = tcell.ModCtrl
	}
	return h.handleEvent(tcell.NewEventKey(k, ch, mod))
}

func (h appHarness) advance(d time.Duration) {
	h.clock.Advance(d)
	h.tick()
}

func TestHeldKeyMovesFighter(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tcell.KeyRune, 'd')
	h.advance(100 * time.Millisecond)

	if got := h.game.Frame(); got != 6 {
		t.Fatalf("frames = %d, want 6", got)
	}
	f := h.game.Fighter
	if f.Position.X <= 0 || !f.FacingRight {
		t.Errorf("fighter did not move right: pos %v facing right %v", f.Position, f.FacingRight)
	}
	if f.State() != fighter.Dash {
		t.Errorf("state = %v, want Dash", f.State())
	}
}

func TestReleasedKeyStopsAfterHold(t *testing.T) {
	h := newHarness(t, nil)
	h.key(tcell.KeyRune, 'a')
	h.advance(time.Second)
	if h.game.Fighter.Input.Stick.X.Value() != 0 {
		t.Errorf("stick x = %v after hold expired", h.game.Fighter.Input.Stick.X.Value())
	}
}

func TestPauseAndFrameAdvanceKeys(t *testing.T) {
	h := newHarness(t, nil)

	h.key(tcell.KeyRune, '5')
	h.advance(17 * time.Millisecond)
	if !h.game.IsPaused() || !h.playClock.IsPaused() {
		t.Fatalf("paused game=%v clock=%v", h.game.IsPaused(), h.playClock.IsPaused())
	}
	frame := h.game.Frame()

	h.advance(50 * time.Millisecond)
	if h.game.Frame() != frame {
		t.Fatalf("frame moved while paused: %d -> %d", frame, h.game.Frame())
	}

	h.key(tcell.KeyCtrlF, 0)
	h.advance(17 * time.Millisecond)
	if h.game.Frame() != frame+1 {
		t.Errorf("frame advance ran %d frames", h.game.Frame()-frame)
	}
}

func TestSystemIntents(t *testing.T) {
	h := newHarness(t, nil)

	hud := h.renderer.ShowHUD
	h.key(tcell.KeyTab, 0)
	if h.renderer.ShowHUD == hud {
		t.Error("Tab did not toggle HUD")
	}

	zoom := h.renderer.Camera.Zoom
	h.key(tcell.KeyRune, '+')
	if h.renderer.Camera.Zoom <= zoom {
		t.Error("+ did not zoom in")
	}
	centre := h.renderer.Camera.Center
	h.key(tcell.KeyPgUp, 0)
	if h.renderer.Camera.Center.Y <= centre.Y {
		t.Error("PgUp did not pan up")
	}
	h.key(tcell.KeyHome, 0)
	if h.renderer.Camera.Center != centre {
		t.Errorf("Home did not recenter: %v", h.renderer.Camera.Center)
	}

	h.key(tcell.KeyCtrlS, 0)
	if !h.cues.Muted() {
		t.Error("Ctrl+S did not mute")
	}

	h.key(tcell.KeyRune, 'd')
	h.advance(100 * time.Millisecond)
	h.key(tcell.KeyCtrlR, 0)
	if h.game.Frame() != 0 || h.game.Fighter.Position != stage.Battlefield().Spawn {
		t.Errorf("reset left frame %d at %v", h.game.Frame(), h.game.Fighter.Position)
	}
	if h.playClock.Elapsed() != 0 {
		t.Errorf("play clock = %v after reset", h.playClock.Elapsed())
	}

	if !h.handleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize should not quit")
	}
	if h.key(tcell.KeyEscape, 0) {
		t.Error("Escape did not quit")
	}
}

func TestTelemetryStartsOnConfiguredAddr(t *testing.T) {
	cfg := config.Default()
	cfg.Telemetry.Addr = "127.0.0.1:0"
	h := newHarness(t, cfg)
	if h.telemetry == nil || h.telemetry.Addr() == "" {
		t.Fatal("telemetry server not started")
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+h.telemetry.Addr()+parameter.TelemetryPath, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	waitHub := func(cond func() bool) {
		for !cond() {
			if time.Now().After(deadline) {
				t.Fatal("telemetry hub did not settle")
			}
			time.Sleep(5 * time.Millisecond)
		}
	}
	waitHub(func() bool { return h.telemetry.Hub.ClientCount() == 1 })

	// Each tick publishes at most four messages, draining between ticks keeps the hub queue from dropping
	h.key(tcell.KeyRune, 'd')
	for i := 0; i < 10; i++ {
		waitHub(func() bool { return h.telemetry.Hub.Pending() == 0 })
		h.advance(100 * time.Millisecond)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("no metrics message: %v", err)
		}
		var msg struct {
			Type string         `json:"type"`
			Data status.Readout `json:"data"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("decode %s: %v", data, err)
		}
		if msg.Type != "metrics" {
			continue
		}
		if msg.Data.Frames != 60 || msg.Data.State == "" || msg.Data.StepsLastTick != 6 {
			t.Errorf("metrics = %+v", msg.Data)
		}
		return
	}
}

func TestNewAppRejectsBadStage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grounds: [[{x: 0, y: 0}]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Stage.File = path

	screen := tcell.NewSimulationScreen("UTF-8")
	if _, err := newApp(cfg, screen, nil, slog.New(slog.DiscardHandler)); !errors.Is(err, stage.ErrInvalidStage) {
		t.Errorf("err = %v, want ErrInvalidStage", err)
	}
}
