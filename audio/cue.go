package audio

import (
	"time"

	"github.com/lixenwraith/platform-fighter/engine"
	"github.com/lixenwraith/platform-fighter/parameter"
)

// Cue is one short sound effect
type Cue uint8

const (
	CueJump Cue = iota
	CueAirJump
	CueLand
	CueAirDodge
	CueRespawn
	CuePause

	cueCount
)

var cueNames = [cueCount]string{"jump", "air_jump", "land", "air_dodge", "respawn", "pause"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// tone describes a cue sweep
type tone struct {
	startFreq float64
	endFreq   float64
	duration  time.Duration
}

var cueTones = [cueCount]tone{
	CueJump:     {parameter.JumpCueFreq, parameter.JumpCueEndFreq, parameter.JumpCueDuration},
	CueAirJump:  {parameter.AirJumpCueFreq, parameter.AirJumpCueEndFreq, parameter.AirJumpCueDuration},
	CueLand:     {parameter.LandCueFreq, parameter.LandCueEndFreq, parameter.LandCueDuration},
	CueAirDodge: {parameter.AirDodgeCueFreq, parameter.AirDodgeCueEndFreq, parameter.AirDodgeCueDuration},
	CueRespawn:  {parameter.RespawnCueFreq, parameter.RespawnCueEndFreq, parameter.RespawnCueDuration},
	CuePause:    {parameter.PauseCueFreq, parameter.PauseCueFreq, parameter.PauseCueDuration},
}

// CueFor maps a simulation event to its cue; Fall and Reset are silent
func CueFor(t engine.EventType) (Cue, bool) {
	switch t {
	case engine.EventJump:
		return CueJump, true
	case engine.EventAirJump:
		return CueAirJump, true
	case engine.EventLand:
		return CueLand, true
	case engine.EventAirDodge:
		return CueAirDodge, true
	case engine.EventRespawn:
		return CueRespawn, true
	case engine.EventPause, engine.EventResume:
		return CuePause, true
	}
	return 0, false
}
