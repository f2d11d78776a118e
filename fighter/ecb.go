package fighter

import "github.com/lixenwraith/platform-fighter/vmath"

// ECB is the environment collision box, four offsets from the fighter position
// Only Bottom takes part in ground collision
type ECB struct {
	Bottom vmath.Point2D `yaml:"bottom"`
	Left   vmath.Point2D `yaml:"left"`
	Top    vmath.Point2D `yaml:"top"`
	Right  vmath.Point2D `yaml:"right"`
}

// World returns bottom, left, top, right in world space
func (e ECB) World(pos vmath.Point2D) [4]vmath.Point2D {
	return [4]vmath.Point2D{
		pos.Offset(e.Bottom),
		pos.Offset(e.Left),
		pos.Offset(e.Top),
		pos.Offset(e.Right),
	}
}

// BottomAt returns the world position of the bottom point
func (e ECB) BottomAt(pos vmath.Point2D) vmath.Point2D {
	return pos.Offset(e.Bottom)
}
