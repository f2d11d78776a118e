package input

import (
	"math"

	"github.com/lixenwraith/platform-fighter/vmath"
)

// AnalogAxis is one stick axis with dead zone and per-frame edge tracking
// Edges compare the current value against the value seen at the last advance
type AnalogAxis struct {
	value          float64
	previous       float64
	deadZone       float64
	activePrevious bool
	activeFrames   uint32

	// Tie-break memory for SetValueFromStates when both signals are held
	highStateWasFirst bool
}

// NewAnalogAxis returns a centred axis
func NewAnalogAxis(deadZone float64) AnalogAxis {
	return AnalogAxis{deadZone: deadZone, highStateWasFirst: true}
}

func (a *AnalogAxis) Value() float64         { return a.value }
func (a *AnalogAxis) PreviousValue() float64 { return a.previous }
func (a *AnalogAxis) DeadZone() float64      { return a.deadZone }
func (a *AnalogAxis) Magnitude() float64     { return math.Abs(a.value) }

// Direction returns -1, 0, or 1
func (a *AnalogAxis) Direction() float64 { return vmath.Sign(a.value) }

// IsActive reports |value| >= dead zone
func (a *AnalogAxis) IsActive() bool { return a.Magnitude() >= a.deadZone }

// WasActive reports the activity recorded at the last advance
func (a *AnalogAxis) WasActive() bool { return a.activePrevious }

// JustCrossedCenter reports a sign change since the last advance, touching zero counts
func (a *AnalogAxis) JustCrossedCenter() bool {
	return (a.value < 0 && a.previous >= 0) || (a.value > 0 && a.previous <= 0)
}

// JustActivated fires on every direction reversal as well as on leaving the dead zone
func (a *AnalogAxis) JustActivated() bool {
	return a.JustCrossedCenter() || (a.IsActive() && !a.activePrevious)
}

func (a *AnalogAxis) JustDeactivated() bool {
	return a.activePrevious && !a.IsActive()
}

// ActiveFrames counts frames since activation, frame of activation is 0
func (a *AnalogAxis) ActiveFrames() uint32 { return a.activeFrames }

// SetValue sets the current value, clamped to [-1, 1]; NaN reads as centred
func (a *AnalogAxis) SetValue(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	a.value = vmath.Clamp(v, -1, 1)
}

// SetValueFromStates maps two opposing digital signals to -1, 0 or 1
// With both held, the value follows whichever signal was last held alone
func (a *AnalogAxis) SetValueFromStates(low, high bool) {
	onlyLow := low && !high
	onlyHigh := high && !low
	both := low && high

	if onlyHigh {
		a.highStateWasFirst = true
	} else if onlyLow {
		a.highStateWasFirst = false
	}

	switch {
	case onlyLow || (both && !a.highStateWasFirst):
		a.value = -1
	case onlyHigh || (both && a.highStateWasFirst):
		a.value = 1
	default:
		a.value = 0
	}
}

// advance shifts current into previous, once per simulated frame
func (a *AnalogAxis) advance() {
	switch {
	case a.JustActivated():
		a.activeFrames = 0
	case a.IsActive():
		a.activeFrames++
	default:
		a.activeFrames = 0
	}
	a.previous = a.value
	a.activePrevious = a.IsActive()
}
