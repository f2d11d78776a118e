package stage

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// ErrInvalidStage is returned by Validate and wrapped by every loader
var ErrInvalidStage = errors.New("invalid stage")

//go:embed stages/*.yaml
var builtinFS embed.FS

// Stage is a set of named polyline groups in world units, y up
type Stage struct {
	Name        string            `yaml:"name"`
	Spawn       vmath.Point2D     `yaml:"spawn"`
	BlastBottom float64           `yaml:"blast_bottom"`
	Grounds     [][]vmath.Point2D `yaml:"grounds"`
	Ceilings    [][]vmath.Point2D `yaml:"ceilings"`
	LeftWalls   [][]vmath.Point2D `yaml:"left_walls"`
	RightWalls  [][]vmath.Point2D `yaml:"right_walls"`
	Platforms   [][]vmath.Point2D `yaml:"platforms"`
}

// Surface is one collidable segment with its kind and outward normal
type Surface struct {
	Kind    SurfaceKind
	Segment vmath.LineSegment2D
	Normal  vmath.Vector2D
}

// Group returns the polylines of one kind as point lists
func (s *Stage) Group(kind SurfaceKind) [][]vmath.Point2D {
	switch kind {
	case Ground:
		return s.Grounds
	case Platform:
		return s.Platforms
	case Ceiling:
		return s.Ceilings
	case LeftWall:
		return s.LeftWalls
	case RightWall:
		return s.RightWalls
	}
	return nil
}

// PolyLines decomposes one kind into polylines
func (s *Stage) PolyLines(kind SurfaceKind) []vmath.PolyLine {
	group := s.Group(kind)
	lines := make([]vmath.PolyLine, 0, len(group))
	for _, pts := range group {
		lines = append(lines, vmath.NewPolyLine(pts))
	}
	return lines
}

// AllPolyLines returns every polyline in kind order, for drawing
func (s *Stage) AllPolyLines() map[SurfaceKind][]vmath.PolyLine {
	out := make(map[SurfaceKind][]vmath.PolyLine, kindCount)
	for k := SurfaceKind(0); k < kindCount; k++ {
		out[k] = s.PolyLines(k)
	}
	return out
}

// Surfaces flattens every polyline into segments, skipping zero-length ones
func (s *Stage) Surfaces() []Surface {
	var out []Surface
	for k := SurfaceKind(0); k < kindCount; k++ {
		for _, pl := range s.PolyLines(k) {
			for _, seg := range pl.Segments() {
				if seg.IsPoint() {
					continue
				}
				out = append(out, Surface{Kind: k, Segment: seg, Normal: OutwardNormal(seg, k)})
			}
		}
	}
	return out
}

// OutwardNormal picks the segment normal facing away from solid ground
// Grounds and platforms face up, ceilings down, left walls -x, right walls +x
func OutwardNormal(seg vmath.LineSegment2D, kind SurfaceKind) vmath.Vector2D {
	top, bottom := seg.TopNormal(), seg.BottomNormal()
	switch kind {
	case Ceiling:
		return bottom
	case LeftWall:
		if top.X() <= 0 {
			return top
		}
		return bottom
	case RightWall:
		if top.X() >= 0 {
			return top
		}
		return bottom
	default:
		return top
	}
}

// RespawnPoint is the spawn point lifted by RespawnHeight
func (s *Stage) RespawnPoint() vmath.Point2D {
	return vmath.Pt(s.Spawn.X, s.Spawn.Y+parameter.RespawnHeight)
}

// Validate requires at least two finite points per polyline, a finite
// spawn above the blast line and at least one landing surface
func (s *Stage) Validate() error {
	if !s.Spawn.IsFinite() {
		return fmt.Errorf("%w: spawn %v is not finite", ErrInvalidStage, s.Spawn)
	}
	if !vmath.IsFinite(s.BlastBottom) || s.BlastBottom >= s.Spawn.Y {
		return fmt.Errorf("%w: blast_bottom %v must be finite and below spawn", ErrInvalidStage, s.BlastBottom)
	}
	for k := SurfaceKind(0); k < kindCount; k++ {
		for i, pts := range s.Group(k) {
			if len(pts) < 2 {
				return fmt.Errorf("%w: %s[%d] has %d points, need at least 2", ErrInvalidStage, k, i, len(pts))
			}
			for j, p := range pts {
				if !p.IsFinite() {
					return fmt.Errorf("%w: %s[%d] point %d is not finite", ErrInvalidStage, k, i, j)
				}
			}
		}
	}
	if len(s.Grounds) == 0 && len(s.Platforms) == 0 {
		return fmt.Errorf("%w: no grounds or platforms", ErrInvalidStage)
	}
	return nil
}

// Parse decodes a YAML stage; blast_bottom defaults when absent
func Parse(data []byte) (*Stage, error) {
	s := &Stage{BlastBottom: parameter.DefaultBlastBottom}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidStage, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses a YAML stage file
func Load(path string) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}
	return s, nil
}

// Builtin parses an embedded stage by name
func Builtin(name string) (*Stage, error) {
	data, err := builtinFS.ReadFile("stages/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: no builtin stage %q", ErrInvalidStage, name)
	}
	return Parse(data)
}

// Battlefield is the default stage: a main ground with sloped lips, a wall
// profile under each edge, and three floating platforms
func Battlefield() *Stage {
	return &Stage{
		Name:        "battlefield",
		Spawn:       vmath.Pt(0, 0),
		BlastBottom: parameter.DefaultBlastBottom,
		Grounds: [][]vmath.Point2D{
			{{X: -56, Y: -3.5}, {X: -39, Y: 0}, {X: 39, Y: 0}, {X: 56, Y: -3.5}},
		},
		LeftWalls: [][]vmath.Point2D{
			mirrorX(battlefieldWall),
		},
		RightWalls: [][]vmath.Point2D{
			append([]vmath.Point2D(nil), battlefieldWall...),
		},
		Platforms: [][]vmath.Point2D{
			{{X: -59.5, Y: 23.45}, {X: -28, Y: 23.45}},
			{{X: 28, Y: 23.45}, {X: 59.5, Y: 23.45}},
			{{X: -15.75, Y: 42}, {X: 15.75, Y: 42}},
		},
	}
}

// battlefieldWall is the right-hand wall profile, top to bottom
var battlefieldWall = []vmath.Point2D{
	{X: 56, Y: -3.5}, {X: 56, Y: -7}, {X: 55, Y: -8}, {X: 54, Y: -11},
	{X: 53, Y: -12}, {X: 53, Y: -27}, {X: 54, Y: -28}, {X: 54, Y: -30},
	{X: 53, Y: -31}, {X: 53, Y: -46}, {X: 54, Y: -47}, {X: 54, Y: -100},
}

func mirrorX(pts []vmath.Point2D) []vmath.Point2D {
	out := make([]vmath.Point2D, len(pts))
	for i, p := range pts {
		out[i] = vmath.Pt(-p.X, p.Y)
	}
	return out
}
