package engine

import (
	"math"

	"github.com/lixenwraith/platform-fighter/fighter"
	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/stage"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// maxResolvePasses bounds re-tests after a wall block redirects the move
const maxResolvePasses = 3

// hit is the nearest accepted contact along one movement path
type hit struct {
	index    int
	point    vmath.Point2D
	distance float64
}

// movementPath is the ECB bottom's travel this frame, its start pulled back
// along the travel direction by CollisionTolerance
func movementPath(f *fighter.Fighter) (vmath.LineSegment2D, bool) {
	from := f.Attrs.ECB.BottomAt(f.PreviousPosition)
	to := f.ECBBottom()
	move := to.Sub(from)
	if move.Magnitude() == 0 {
		return vmath.LineSegment2D{}, false
	}
	dir := move.Direction()
	start := vmath.Pt(
		from.X-dir.X()*parameter.CollisionTolerance,
		from.Y-dir.Y()*parameter.CollisionTolerance,
	)
	return vmath.NewLineSegment2D(start, to), true
}

// nearestHit finds the closest surface the path enters against its outward normal
// Grounded fighters skip landing surfaces, ground following owns those
func nearestHit(f *fighter.Fighter, path vmath.LineSegment2D, surfaces []stage.Surface, skip int) (hit, bool) {
	best := hit{index: -1, distance: math.Inf(1)}
	for i, s := range surfaces {
		if i == skip {
			continue
		}
		if s.Kind.IsLanding() && !f.CanLand() {
			continue
		}
		if f.Velocity.Dot(s.Normal) > 0 {
			continue
		}
		if !path.IntersectsWith(s.Segment) {
			continue
		}
		p, ok := path.Intersection(s.Segment)
		if !ok {
			continue
		}
		if d := p.Sub(path.Start()).Magnitude(); d < best.distance {
			best = hit{index: i, point: p, distance: d}
		}
	}
	return best, best.index >= 0
}

// resolveCollisions applies the nearest contact, then re-tests the corrected
// move so a wall block can still land on the ground below it
// Returns true when the fighter landed
func (g *Game) resolveCollisions() bool {
	f := g.Fighter
	skip := -1
	for pass := 0; pass < maxResolvePasses; pass++ {
		path, ok := movementPath(f)
		if !ok {
			return false
		}
		h, ok := nearestHit(f, path, g.surfaces, skip)
		if !ok {
			return false
		}
		s := g.surfaces[h.index]

		// Slide: where the penetrating bottom point projects onto the surface
		contact := s.Segment.ClosestPoint(f.ECBBottom())
		if !contact.IsFinite() {
			contact = h.point
		}
		if !s.Kind.IsLanding() {
			contact = contact.Add(s.Normal.Scale(parameter.WallPushOut))
		}

		f.Position = f.Position.Add(contact.Sub(f.ECBBottom()))
		f.Velocity = f.Velocity.RemoveComponent(s.Normal)

		if s.Kind.IsLanding() {
			g.logger.Debug("landed", "frame", g.frame, "surface", s.Kind, "at", contact)
			f.Land()
			return true
		}
		g.logger.Debug("blocked", "frame", g.frame, "surface", s.Kind, "at", contact)
		skip = h.index
	}
	return false
}

// followGround keeps a grounded fighter on the surface under its ECB bottom
// Without one inside GroundStepTolerance the fighter falls
func (g *Game) followGround() {
	f := g.Fighter
	if !f.IsGrounded() {
		return
	}
	bottom := f.ECBBottom()

	bestY, found := 0.0, false
	for _, s := range g.surfaces {
		if !s.Kind.IsLanding() {
			continue
		}
		y, ok := s.Segment.YAt(bottom.X)
		if !ok || math.Abs(y-bottom.Y) > parameter.GroundStepTolerance {
			continue
		}
		if !found || math.Abs(y-bottom.Y) < math.Abs(bestY-bottom.Y) {
			bestY, found = y, true
		}
	}

	if found {
		f.SnapToGround(bestY)
		return
	}
	f.Fall()
}
