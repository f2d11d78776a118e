package stage

import "fmt"

// SurfaceKind classifies a polyline group
type SurfaceKind uint8

const (
	Ground SurfaceKind = iota
	Platform
	Ceiling
	LeftWall
	RightWall

	kindCount
)

var kindNames = [kindCount]string{"grounds", "platforms", "ceilings", "left_walls", "right_walls"}

func (k SurfaceKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("SurfaceKind(%d)", uint8(k))
}

// IsLanding reports kinds an aerial fighter lands on
func (k SurfaceKind) IsLanding() bool {
	return k == Ground || k == Platform
}

// Kinds lists every kind in draw order
func Kinds() []SurfaceKind {
	return []SurfaceKind{Ground, Platform, Ceiling, LeftWall, RightWall}
}
