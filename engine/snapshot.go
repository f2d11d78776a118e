package engine

import (
	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// FrameSnapshot is a read-only copy of everything presentation needs for one frame
type FrameSnapshot struct {
	Frame  uint64 `json:"frame"`
	Paused bool   `json:"paused"`

	State         fighter.State `json:"state"`
	PreviousState fighter.State `json:"previous_state"`
	StateFrame    uint32        `json:"state_frame"`

	Position         vmath.Point2D `json:"position"`
	PreviousPosition vmath.Point2D `json:"previous_position"`
	VelocityX        float64       `json:"vx"`
	VelocityY        float64       `json:"vy"`
	FacingRight      bool          `json:"facing_right"`
	AirJumpsLeft     uint32        `json:"air_jumps_left"`

	// ECB points in world space: bottom, left, top, right
	ECB [4]vmath.Point2D `json:"ecb"`

	Stick   [2]float64 `json:"stick"`
	CStick  [2]float64 `json:"cstick"`
	Buttons []string   `json:"buttons,omitempty"`
}

// Snapshot copies the current frame's presentation state
func (g *Game) Snapshot() FrameSnapshot {
	f := g.Fighter
	in := f.Input

	var buttons []string
	for _, id := range in.PressedButtons() {
		buttons = append(buttons, id.String())
	}

	return FrameSnapshot{
		Frame:            g.frame,
		Paused:           g.paused,
		State:            f.State(),
		PreviousState:    f.PreviousState(),
		StateFrame:       f.StateFrame(),
		Position:         f.Position,
		PreviousPosition: f.PreviousPosition,
		VelocityX:        f.Velocity.X(),
		VelocityY:        f.Velocity.Y(),
		FacingRight:      f.FacingRight,
		AirJumpsLeft:     f.AirJumpsLeft(),
		ECB:              f.ECB().World(f.Position),
		Stick:            [2]float64{in.Stick.X.Value(), in.Stick.Y.Value()},
		CStick:           [2]float64{in.CStick.X.Value(), in.CStick.Y.Value()},
		Buttons:          buttons,
	}
}

// InterpolatedPosition blends previous and current position by alpha
// A paused frame is drawn where it stands
func (s FrameSnapshot) InterpolatedPosition(alpha float64) vmath.Point2D {
	if s.Paused {
		alpha = 1
	}
	return Interpolate(s.PreviousPosition, s.Position, alpha)
}

// InterpolatedECB offsets the ECB by the interpolated position
func (s FrameSnapshot) InterpolatedECB(alpha float64) [4]vmath.Point2D {
	shift := s.InterpolatedPosition(alpha).Sub(s.Position)
	var out [4]vmath.Point2D
	for i, p := range s.ECB {
		out[i] = p.Add(shift)
	}
	return out
}
