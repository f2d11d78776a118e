package vmath

import "math"

// Vector2D is a displacement with cached magnitude and angle
// Fields are unexported so the cache can't drift from the components
type Vector2D struct {
	x, y      float64
	magnitude float64
	angle     float64
}

// NewVector2D builds a vector and fills its cache
func NewVector2D(x, y float64) Vector2D {
	var v Vector2D
	v.Set(x, y)
	return v
}

// Set replaces both components and recomputes the cache
func (v *Vector2D) Set(x, y float64) {
	v.x = x
	v.y = y
	v.magnitude = math.Sqrt(x*x + y*y)
	if x != 0 || y != 0 {
		v.angle = math.Atan2(y, x)
	} else {
		v.angle = 0
	}
}

func (v Vector2D) X() float64 { return v.x }
func (v Vector2D) Y() float64 { return v.y }

func (v *Vector2D) SetX(x float64) { v.Set(x, v.y) }
func (v *Vector2D) SetY(y float64) { v.Set(v.x, y) }

// Magnitude returns the cached Euclidean length
func (v Vector2D) Magnitude() float64 { return v.magnitude }

// Angle returns the cached atan2(y, x), 0 for the zero vector
func (v Vector2D) Angle() float64 { return v.angle }

// SetMagnitude rescales preserving direction, no-op for the zero vector
func (v *Vector2D) SetMagnitude(m float64) {
	if v.magnitude == 0 {
		return
	}
	s := m / v.magnitude
	v.Set(v.x*s, v.y*s)
}

// Direction returns the unit vector, zero-safe
func (v Vector2D) Direction() Vector2D {
	if v.magnitude > 0 {
		return NewVector2D(v.x/v.magnitude, v.y/v.magnitude)
	}
	return Vector2D{}
}

// Dot returns x1*x2 + y1*y2
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.x*o.x + v.y*o.y
}

// Inverse returns the vector pointing the opposite way
func (v Vector2D) Inverse() Vector2D {
	return NewVector2D(-v.x, -v.y)
}

// Scale multiplies both components by s
func (v Vector2D) Scale(s float64) Vector2D {
	return NewVector2D(v.x*s, v.y*s)
}

// Plus returns the component-wise sum
func (v Vector2D) Plus(o Vector2D) Vector2D {
	return NewVector2D(v.x+o.x, v.y+o.y)
}

// Project returns the component of v along unit vector axis
func (v Vector2D) Project(axis Vector2D) Vector2D {
	return axis.Scale(v.Dot(axis))
}

// RemoveComponent strips the component of v along unit vector n
// Used to cancel velocity into a surface while keeping the slide
func (v Vector2D) RemoveComponent(n Vector2D) Vector2D {
	d := v.Dot(n)
	return NewVector2D(v.x-d*n.x, v.y-d*n.y)
}

// Reflect returns v mirrored off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func (v Vector2D) Reflect(n Vector2D) Vector2D {
	d := 2 * v.Dot(n)
	return NewVector2D(v.x-d*n.x, v.y-d*n.y)
}

// Perpendicular returns v rotated 90° counter-clockwise
func (v Vector2D) Perpendicular() Vector2D {
	return NewVector2D(-v.y, v.x)
}

// FromAngle builds a vector of the given length pointing at angle radians
func FromAngle(angle, length float64) Vector2D {
	return NewVector2D(length*math.Cos(angle), length*math.Sin(angle))
}
