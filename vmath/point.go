package vmath

import "fmt"

// Orientation classifies the turn made by an ordered point triplet
type Orientation uint8

const (
	Colinear Orientation = iota
	Clockwise
	CounterClockwise
)

// String returns the orientation name
func (o Orientation) String() string {
	switch o {
	case Colinear:
		return "Colinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Point2D is a position in world units, y up
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point2D{X: x, Y: y}
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add offsets the point by v
func (p Point2D) Add(v Vector2D) Point2D {
	return Point2D{X: p.X + v.x, Y: p.Y + v.y}
}

// Offset offsets the point by another point treated as a displacement
func (p Point2D) Offset(o Point2D) Point2D {
	return Point2D{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the displacement from o to p
func (p Point2D) Sub(o Point2D) Vector2D {
	return NewVector2D(p.X-o.X, p.Y-o.Y)
}

// Equal compares exact coordinates
func (p Point2D) Equal(o Point2D) bool {
	return p.X == o.X && p.Y == o.Y
}

// IsFinite reports whether both coordinates are finite
func (p Point2D) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// Orientation of the triplet (p, q, r) from the sign of
// (q.y-p.y)(r.x-q.x) - (q.x-p.x)(r.y-q.y)
func (p Point2D) Orientation(q, r Point2D) Orientation {
	value := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case value == 0:
		return Colinear
	case value > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// OrientationOf is the free-function form of Point2D.Orientation
func OrientationOf(p, q, r Point2D) Orientation {
	return p.Orientation(q, r)
}
