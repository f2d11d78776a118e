package physics

import (
	"math"

	"github.com/lixenwraith/platform-fighter/vmath"
)

// ApplyFriction moves v toward zero by at most f, never past it
func ApplyFriction(v, f float64) float64 {
	return v - vmath.Sign(v)*math.Min(math.Abs(v), f)
}

// ApplyAcceleration accelerates v along the input axis without crossing maxV
// Overspeed bleeds by friction first; a centred axis adds nothing
func ApplyAcceleration(v, axisValue, base, axisAccel, maxV, friction float64) float64 {
	next := v
	if math.Abs(v) > maxV {
		next = ApplyFriction(v, friction)
	}

	accel := vmath.Sign(axisValue)*base + axisValue*axisAccel
	switch {
	case axisValue > 0:
		next += math.Max(0, math.Min(accel, maxV-next))
	case axisValue < 0:
		next += math.Min(0, math.Max(accel, -maxV-next))
	}
	return next
}

// ApplyGravity pulls vy down by gravity, never pushing the fall past fallVelocity
// An overspeed fall is left as-is
func ApplyGravity(vy, gravity, fallVelocity float64) float64 {
	return vy - math.Max(0, math.Min(gravity, fallVelocity+vy))
}

// FastFall snaps vy to -fastFallVelocity when falling or at apex and the trigger is set
func FastFall(vy, fastFallVelocity float64, triggered bool) float64 {
	if vy <= 0 && triggered {
		return -fastFallVelocity
	}
	return vy
}

// Integrate advances p by v for one frame
func Integrate(p vmath.Point2D, v vmath.Vector2D) vmath.Point2D {
	return vmath.Point2D{X: p.X + v.X(), Y: p.Y + v.Y()}
}

// Decay scales both components by factor
func Decay(v vmath.Vector2D, factor float64) vmath.Vector2D {
	return v.Scale(factor)
}
