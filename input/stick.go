package input

import (
	"math"

	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// AnalogStick pairs two axes into a 2D stick
type AnalogStick struct {
	X AnalogAxis
	Y AnalogAxis
}

// NewAnalogStick returns a centred stick
func NewAnalogStick(deadZone float64) AnalogStick {
	return AnalogStick{X: NewAnalogAxis(deadZone), Y: NewAnalogAxis(deadZone)}
}

// Magnitude returns sqrt(x² + y²)
func (s *AnalogStick) Magnitude() float64 {
	return math.Hypot(s.X.value, s.Y.value)
}

// Angle returns atan2(y, x), 0 when centred
func (s *AnalogStick) Angle() float64 {
	if s.X.value == 0 && s.Y.value == 0 {
		return 0
	}
	return math.Atan2(s.Y.value, s.X.value)
}

// Vector returns the stick deflection as a vector
func (s *AnalogStick) Vector() vmath.Vector2D {
	return vmath.NewVector2D(s.X.value, s.Y.value)
}

// SetMagnitude rescales both axes keeping direction, no-op when centred
func (s *AnalogStick) SetMagnitude(m float64) {
	current := s.Magnitude()
	if current == 0 {
		return
	}
	scale := m / current
	s.X.value *= scale
	s.Y.value *= scale
}

// ConvertToGameValues clamps the stick to the unit circle, then snaps each
// axis to a multiple of 1/StickResolution without exceeding its own magnitude
func (s *AnalogStick) ConvertToGameValues() {
	if s.Magnitude() > 1 {
		s.SetMagnitude(1)
	}
	snapAxis(&s.X)
	snapAxis(&s.Y)
}

func snapAxis(a *AnalogAxis) {
	magnitude := a.Magnitude()
	rounded := math.Round(a.value*parameter.StickResolution) / parameter.StickResolution
	if math.Abs(rounded) > magnitude {
		a.value = a.Direction() * math.Floor(magnitude*parameter.StickResolution) / parameter.StickResolution
		return
	}
	a.value = rounded
}

func (s *AnalogStick) advance() {
	s.X.advance()
	s.Y.advance()
}
