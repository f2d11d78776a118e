package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond

	// MinCueGap between consecutive cues of the same kind
	MinCueGap = 50 * time.Millisecond
)

// Cue Tones, start and end frequency of each sweep in Hz
const (
	JumpCueFreq         = 660.0
	JumpCueEndFreq      = 990.0
	JumpCueDuration     = 60 * time.Millisecond
	AirJumpCueFreq      = 990.0
	AirJumpCueEndFreq   = 1320.0
	AirJumpCueDuration  = 60 * time.Millisecond
	LandCueFreq         = 220.0
	LandCueEndFreq      = 110.0
	LandCueDuration     = 50 * time.Millisecond
	AirDodgeCueFreq     = 880.0
	AirDodgeCueEndFreq  = 440.0
	AirDodgeCueDuration = 90 * time.Millisecond
	RespawnCueFreq      = 440.0
	RespawnCueEndFreq   = 880.0
	RespawnCueDuration  = 200 * time.Millisecond
	PauseCueFreq        = 330.0
	PauseCueDuration    = 40 * time.Millisecond

	// CueVolume is the beep effects.Volume exponent applied to every cue (base 2)
	CueVolume = -2.0
)
