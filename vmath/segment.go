package vmath

import "math"

// LineSegment2D is an immutable segment with cached slope, length and intercept
// Left/right ordering is by x; a tie keeps the construction order
type LineSegment2D struct {
	points         [2]Point2D
	orderIsCorrect bool
	slope          float64
	length         float64
	yIntercept     float64
}

// NewLineSegment2D builds a segment from p0 to p1
func NewLineSegment2D(p0, p1 Point2D) LineSegment2D {
	s := LineSegment2D{points: [2]Point2D{p0, p1}}
	s.orderIsCorrect = p0.X <= p1.X

	left, right := s.LeftPoint(), s.RightPoint()
	// 0/0 yields NaN for a point segment, dy/0 yields ±Inf for a vertical one
	s.slope = (right.Y - left.Y) / (right.X - left.X)
	s.length = math.Hypot(right.X-left.X, right.Y-left.Y)
	s.yIntercept = left.Y - s.slope*left.X
	return s
}

// Seg is shorthand for NewLineSegment2D(Pt(x0, y0), Pt(x1, y1))
func Seg(x0, y0, x1, y1 float64) LineSegment2D {
	return NewLineSegment2D(Pt(x0, y0), Pt(x1, y1))
}

func (s LineSegment2D) Start() Point2D { return s.points[0] }
func (s LineSegment2D) End() Point2D   { return s.points[1] }

// LeftPoint returns the endpoint with the smaller x
func (s LineSegment2D) LeftPoint() Point2D {
	if s.orderIsCorrect {
		return s.points[0]
	}
	return s.points[1]
}

// RightPoint returns the endpoint with the larger x
func (s LineSegment2D) RightPoint() Point2D {
	if s.orderIsCorrect {
		return s.points[1]
	}
	return s.points[0]
}

func (s LineSegment2D) Slope() float64      { return s.slope }
func (s LineSegment2D) YIntercept() float64 { return s.yIntercept }
func (s LineSegment2D) Length() float64     { return s.length }

// IsPoint reports a zero-length segment
func (s LineSegment2D) IsPoint() bool { return math.IsNaN(s.slope) }

// IsVertical reports an infinite slope
func (s LineSegment2D) IsVertical() bool { return math.IsInf(s.slope, 0) }

// Direction returns the unit vector from start to end, zero for a point
func (s LineSegment2D) Direction() Vector2D {
	if s.length == 0 {
		return Vector2D{}
	}
	return NewVector2D((s.points[1].X-s.points[0].X)/s.length, (s.points[1].Y-s.points[0].Y)/s.length)
}

// Tangent returns the unit vector from left point to right point
func (s LineSegment2D) Tangent() Vector2D {
	if s.length == 0 {
		return Vector2D{}
	}
	l, r := s.LeftPoint(), s.RightPoint()
	return NewVector2D((r.X-l.X)/s.length, (r.Y-l.Y)/s.length)
}

// TopNormal is the unit normal on the side a character stands on
func (s LineSegment2D) TopNormal() Vector2D {
	if s.length == 0 {
		return Vector2D{}
	}
	l, r := s.LeftPoint(), s.RightPoint()
	return NewVector2D((l.Y-r.Y)/s.length, (r.X-l.X)/s.length)
}

// BottomNormal is the opposite of TopNormal
func (s LineSegment2D) BottomNormal() Vector2D {
	if s.length == 0 {
		return Vector2D{}
	}
	l, r := s.LeftPoint(), s.RightPoint()
	return NewVector2D((r.Y-l.Y)/s.length, (l.X-r.X)/s.length)
}

// ContainsColinearPoint checks the bounding box only, caller guarantees colinearity
func (s LineSegment2D) ContainsColinearPoint(p Point2D) bool {
	a, b := s.points[0], s.points[1]
	return p.X <= math.Max(a.X, b.X) && p.X >= math.Min(a.X, b.X) &&
		p.Y <= math.Max(a.Y, b.Y) && p.Y >= math.Min(a.Y, b.Y)
}

// ContainsPoint reports whether p lies exactly on the segment
func (s LineSegment2D) ContainsPoint(p Point2D) bool {
	if p.Orientation(s.LeftPoint(), s.RightPoint()) != Colinear {
		return false
	}
	return s.ContainsColinearPoint(p)
}

// IsParallelWith compares slopes, all vertical segments are parallel
func (s LineSegment2D) IsParallelWith(o LineSegment2D) bool {
	if s.IsVertical() && o.IsVertical() {
		return true
	}
	return s.slope == o.slope
}

// IntersectsWith is the four-orientation test with colinear containment fallback
func (s LineSegment2D) IntersectsWith(o LineSegment2D) bool {
	p0, q0 := s.points[0], s.points[1]
	p1, q1 := o.points[0], o.points[1]

	o0 := p0.Orientation(q0, p1)
	o1 := p0.Orientation(q0, q1)
	o2 := p1.Orientation(q1, p0)
	o3 := p1.Orientation(q1, q0)

	switch {
	case o0 != o1 && o2 != o3:
		return true
	case o0 == Colinear && s.ContainsColinearPoint(p1):
		return true
	case o1 == Colinear && s.ContainsColinearPoint(q1):
		return true
	case o2 == Colinear && o.ContainsColinearPoint(p0):
		return true
	case o3 == Colinear && o.ContainsColinearPoint(q0):
		return true
	}
	return false
}

// Intersection returns the unique crossing point of the two infinite lines
// Returns false for parallel or coincident lines, non-touching points, and NaN results
func (s LineSegment2D) Intersection(o LineSegment2D) (Point2D, bool) {
	p, ok := s.intersectionPossibleNaN(o)
	if !ok || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return Point2D{}, false
	}
	return p, true
}

func (s LineSegment2D) intersectionPossibleNaN(o LineSegment2D) (Point2D, bool) {
	sLeft, oLeft := s.LeftPoint(), o.LeftPoint()

	// Both segments are points
	if s.IsPoint() && o.IsPoint() {
		if sLeft.Equal(oLeft) {
			return sLeft, true
		}
		return Point2D{}, false
	}

	if s.IsPoint() {
		if o.ContainsPoint(sLeft) {
			return sLeft, true
		}
		return Point2D{}, false
	}
	if o.IsPoint() {
		if s.ContainsPoint(oLeft) {
			return oLeft, true
		}
		return Point2D{}, false
	}

	if s.IsParallelWith(o) {
		return Point2D{}, false
	}

	// Not parallel, so at most one of the two is vertical
	if s.IsVertical() {
		x := sLeft.X
		return Point2D{X: x, Y: x*o.slope + o.yIntercept}, true
	}
	if o.IsVertical() {
		x := oLeft.X
		return Point2D{X: x, Y: x*s.slope + s.yIntercept}, true
	}

	x := (o.yIntercept - s.yIntercept) / (s.slope - o.slope)
	return Point2D{X: x, Y: x*s.slope + s.yIntercept}, true
}

// ClosestPoint projects p onto the segment, clamped to its endpoints
func (s LineSegment2D) ClosestPoint(p Point2D) Point2D {
	a, b := s.points[0], s.points[1]
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := Clamp(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/lenSq, 0, 1)
	return Point2D{X: a.X + t*dx, Y: a.Y + t*dy}
}

// YAt returns the segment height at x, false outside its x range or when vertical
func (s LineSegment2D) YAt(x float64) (float64, bool) {
	if s.IsPoint() || s.IsVertical() {
		return 0, false
	}
	l, r := s.LeftPoint(), s.RightPoint()
	if x < l.X || x > r.X {
		return 0, false
	}
	return s.slope*x + s.yIntercept, true
}
