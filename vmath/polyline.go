package vmath

// PolyLine is an ordered chain of points and its consecutive segments
type PolyLine struct {
	points   []Point2D
	segments []LineSegment2D
}

// NewPolyLine decomposes N points into N-1 segments; fewer than two points yields none
func NewPolyLine(points []Point2D) PolyLine {
	pl := PolyLine{points: append([]Point2D(nil), points...)}
	if len(points) > 1 {
		pl.segments = make([]LineSegment2D, 0, len(points)-1)
		for i := 1; i < len(points); i++ {
			pl.segments = append(pl.segments, NewLineSegment2D(points[i-1], points[i]))
		}
	}
	return pl
}

// Points returns the source points, callers must not mutate the slice
func (pl PolyLine) Points() []Point2D { return pl.points }

// Segments returns the decomposed segments, callers must not mutate the slice
func (pl PolyLine) Segments() []LineSegment2D { return pl.segments }

// Len returns the segment count
func (pl PolyLine) Len() int { return len(pl.segments) }
