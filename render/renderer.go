package render

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/platform-fighter/engine"
	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/stage"
	"github.com/lixenwraith/platform-fighter/status"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// View is everything one presentation frame draws
type View struct {
	Snapshot engine.FrameSnapshot
	// Alpha is the fixed-step interpolation factor in [0, 1]
	Alpha    float64
	PlayTime time.Duration
	Muted    bool
}

// TerminalRenderer draws a stage and fighter into a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	buf     *RenderBuffer
	stage   *stage.Stage
	lines   map[stage.SurfaceKind][]vmath.PolyLine
	Camera  Camera
	ShowHUD bool

	statSteps   *atomic.Int64
	statDropped *status.Gauge
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, st *stage.Stage, cam Camera, showHUD bool) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:  screen,
		buf:     NewRenderBuffer(w, h),
		stage:   st,
		lines:   st.AllPolyLines(),
		Camera:  cam,
		ShowHUD: showHUD,
	}
}

// Instrument shows frame pacing metrics in the HUD
func (r *TerminalRenderer) Instrument(reg *status.Registry) {
	r.statSteps = reg.Counters.Get(status.StepsLastTick)
	r.statDropped = reg.Gauges.Get(status.DroppedMillis)
}

// Resize follows a terminal resize event
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.buf.Resize(w, h)
}

// Buffer exposes the composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer { return r.buf }

// RenderFrame composes and shows one frame
func (r *TerminalRenderer) RenderFrame(v View) {
	r.Compose(v)
	r.buf.FlushTo(r.screen)
	r.screen.Show()
}

// Compose draws into the buffer without touching the screen
func (r *TerminalRenderer) Compose(v View) {
	r.buf.Clear()

	top := 0
	if r.ShowHUD {
		top = parameter.HUDLines
	}
	w, h := r.buf.Size()
	viewH := h - top
	if w <= 0 || viewH <= 0 {
		return
	}

	r.drawBlastLine(top, w, viewH)
	r.drawStage(top, w, viewH)
	r.drawFighter(v, top, w, viewH)
	if r.ShowHUD {
		r.drawHUD(v, w)
	}
}

func (r *TerminalRenderer) drawBlastLine(top, w, h int) {
	_, row := r.Camera.WorldToCell(vmath.Pt(0, r.stage.BlastBottom), top, w, h)
	if row < top || row >= top+h {
		return
	}
	for x := 0; x < w; x++ {
		r.buf.SetBg(x, row, RgbBlastLine)
	}
}

func (r *TerminalRenderer) drawStage(top, w, h int) {
	for _, kind := range stage.Kinds() {
		glyph, color := surfaceStyle(kind)
		for _, pl := range r.lines[kind] {
			for _, seg := range pl.Segments() {
				x0, y0 := r.Camera.WorldToCell(seg.Start(), top, w, h)
				x1, y1 := r.Camera.WorldToCell(seg.End(), top, w, h)
				r.buf.Line(x0, y0, x1, y1, glyph, color)
			}
		}
	}
}

func surfaceStyle(kind stage.SurfaceKind) (rune, RGB) {
	switch kind {
	case stage.Platform:
		return parameter.PlatformGlyph, RgbPlatform
	case stage.Ceiling:
		return parameter.StageGlyph, RgbCeiling
	case stage.LeftWall, stage.RightWall:
		return parameter.WallGlyph, RgbWall
	default:
		return parameter.StageGlyph, RgbGround
	}
}

// drawFighter outlines the interpolated ECB diamond and marks facing
func (r *TerminalRenderer) drawFighter(v View, top, w, h int) {
	s := v.Snapshot
	ecb := s.InterpolatedECB(v.Alpha)
	color := stateColor(s)

	for i := range ecb {
		a, b := ecb[i], ecb[(i+1)%len(ecb)]
		x0, y0 := r.Camera.WorldToCell(a, top, w, h)
		x1, y1 := r.Camera.WorldToCell(b, top, w, h)
		r.buf.Line(x0, y0, x1, y1, parameter.ECBGlyph, color)
	}

	// Bottom, left, top, right
	centre := vmath.Pt((ecb[1].X+ecb[3].X)/2, (ecb[0].Y+ecb[2].Y)/2)
	cx, cy := r.Camera.WorldToCell(centre, top, w, h)
	r.buf.Set(cx, cy, parameter.FighterGlyph, color)

	side := ecb[3]
	marker := '>'
	if !s.FacingRight {
		side = ecb[1]
		marker = '<'
	}
	fx, fy := r.Camera.WorldToCell(side, top, w, h)
	if s.FacingRight {
		fx++
	} else {
		fx--
	}
	r.buf.Set(fx, fy, marker, RgbFacing)
}

// stateColor tints by state family, brightening toward white with speed
func stateColor(s engine.FrameSnapshot) RGB {
	var base RGB
	switch s.State {
	case fighter.Airborne, fighter.JumpSquat:
		base = RgbECBAirborne
	case fighter.AirDodge:
		base = RgbECBDodge
	case fighter.Land, fighter.LandSpecial:
		base = RgbECBLag
	case fighter.Dash, fighter.Run, fighter.RunTurn, fighter.RunBrake:
		base = RgbECBFast
	default:
		base = RgbECBIdle
	}
	speed := math.Hypot(s.VelocityX, s.VelocityY)
	return base.Blend(RGB{255, 255, 255}, vmath.Clamp(speed/8, 0, 0.5))
}

func (r *TerminalRenderer) drawHUD(v View, w int) {
	s := v.Snapshot

	for x := 0; x < w; x++ {
		r.buf.SetBg(x, 0, RgbStatusBar)
	}
	x := r.buf.SetString(0, 0, fmt.Sprintf(" %-11s f%-3d ", s.State, s.StateFrame), RgbStatusText, RgbStatusBar)
	x += r.buf.SetString(x, 0, fmt.Sprintf(" frame %d ", s.Frame), RgbStatusText, RgbStatusBar)
	x += r.buf.SetString(x, 0, fmt.Sprintf(" time %s ", v.PlayTime.Truncate(time.Second/10)), RgbStatusText, RgbStatusBar)
	if s.Paused {
		x += r.buf.SetString(x, 0, parameter.PausedText, RgbStatusText, RgbPausedBg)
	}
	if v.Muted {
		r.buf.SetString(x, 0, " muted ", RgbStatusText, RgbStatusBar)
	}

	dir := "right"
	if !s.FacingRight {
		dir = "left"
	}
	r.buf.SetString(0, 1, fmt.Sprintf(" pos (%7.2f, %7.2f)  vel (%6.3f, %6.3f)  facing %-5s  air jumps %d",
		s.Position.X, s.Position.Y, s.VelocityX, s.VelocityY, dir, s.AirJumpsLeft), RgbHUDText, RgbBackground)

	line := fmt.Sprintf(" stick (%5.2f, %5.2f)  c (%5.2f, %5.2f)  [%s]",
		s.Stick[0], s.Stick[1], s.CStick[0], s.CStick[1], strings.Join(s.Buttons, " "))
	if r.statSteps != nil {
		line += fmt.Sprintf("  steps %d  dropped %.0fms", r.statSteps.Load(), r.statDropped.Value())
	}
	r.buf.SetString(0, 2, line, RgbHUDText, RgbBackground)
}
