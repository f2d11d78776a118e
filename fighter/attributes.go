package fighter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/platform-fighter/vmath"
)

// ErrUnknownPreset is returned for a character name with no preset
var ErrUnknownPreset = errors.New("unknown fighter preset")

// ErrInvalidAttributes is returned when tunables fail validation
var ErrInvalidAttributes = errors.New("invalid fighter attributes")

// Attributes are the per-character tunables, fixed for the fighter's lifetime
// Passed by value so several fighters can hold independent copies
type Attributes struct {
	Name string `yaml:"name"`
	ECB  ECB    `yaml:"ecb"`

	GroundFriction       float64 `yaml:"ground_friction"`
	DashStartVelocity    float64 `yaml:"dash_start_velocity"`
	DashMaxVelocity      float64 `yaml:"dash_max_velocity"`
	DashBaseAcceleration float64 `yaml:"dash_base_acceleration"`
	DashAxisAcceleration float64 `yaml:"dash_axis_acceleration"`
	WalkStartVelocity    float64 `yaml:"walk_start_velocity"`
	WalkMaxVelocity      float64 `yaml:"walk_max_velocity"`
	WalkAcceleration     float64 `yaml:"walk_acceleration"`

	AirFriction         float64 `yaml:"air_friction"`
	AirBaseAcceleration float64 `yaml:"air_base_acceleration"`
	AirAxisAcceleration float64 `yaml:"air_axis_acceleration"`
	AirMaxVelocity      float64 `yaml:"air_max_velocity"`

	JumpSquatFrames                 uint32  `yaml:"jump_squat_frames"`
	JumpVelocityDampening           float64 `yaml:"jump_velocity_dampening"`
	JumpMaxHorizontalVelocity       float64 `yaml:"jump_max_horizontal_velocity"`
	JumpStartHorizontalVelocity     float64 `yaml:"jump_start_horizontal_velocity"`
	ShortHopVelocity                float64 `yaml:"short_hop_velocity"`
	FullHopVelocity                 float64 `yaml:"full_hop_velocity"`
	FallVelocity                    float64 `yaml:"fall_velocity"`
	FastFallVelocity                float64 `yaml:"fast_fall_velocity"`
	AirJumpVelocityMultiplier       float64 `yaml:"air_jump_velocity_multiplier"`
	AirJumpHorizontalAxisMultiplier float64 `yaml:"air_jump_horizontal_axis_multiplier"`
	AirJumps                        uint32  `yaml:"air_jumps"`
	Gravity                         float64 `yaml:"gravity"`

	DashMinFrames      uint32 `yaml:"dash_min_frames"`
	DashMaxFrames      uint32 `yaml:"dash_max_frames"`
	SlowDashBackFrames uint32 `yaml:"slow_dash_back_frames"`
	TurnFrames         uint32 `yaml:"turn_frames"`
	RunBrakeFrames     uint32 `yaml:"run_brake_frames"`
}

// Fox returns the Fox tunables
func Fox() Attributes {
	return Attributes{
		Name: "fox",
		ECB: ECB{
			Bottom: vmath.Pt(0, 0),
			Left:   vmath.Pt(-3.5, 5.5),
			Top:    vmath.Pt(0, 11),
			Right:  vmath.Pt(3.5, 5.5),
		},

		GroundFriction:       0.08,
		DashStartVelocity:    1.9,
		DashMaxVelocity:      2.2,
		DashBaseAcceleration: 0.02,
		DashAxisAcceleration: 0.1,
		WalkStartVelocity:    0.16,
		WalkMaxVelocity:      1.6,
		WalkAcceleration:     0.2,

		AirFriction:         0.02,
		AirBaseAcceleration: 0.02,
		AirAxisAcceleration: 0.06,
		AirMaxVelocity:      0.83,

		JumpSquatFrames:                 3,
		JumpVelocityDampening:           0.83,
		JumpMaxHorizontalVelocity:       1.7,
		JumpStartHorizontalVelocity:     0.72,
		ShortHopVelocity:                2.1,
		FullHopVelocity:                 3.68,
		FallVelocity:                    2.8,
		FastFallVelocity:                3.4,
		AirJumpVelocityMultiplier:       1.2,
		AirJumpHorizontalAxisMultiplier: 0.9,
		AirJumps:                        1,
		Gravity:                         0.23,

		DashMinFrames:      11,
		DashMaxFrames:      21,
		SlowDashBackFrames: 5,
		TurnFrames:         11,
		RunBrakeFrames:     18,
	}
}

var presets = map[string]func() Attributes{
	"fox": Fox,
}

// Preset returns the named character tunables, case-insensitive
func Preset(name string) (Attributes, error) {
	ctor, ok := presets[strings.ToLower(name)]
	if !ok {
		return Attributes{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return ctor(), nil
}

// PresetNames lists registered presets in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LoadAttributes reads a YAML override file on top of base
// Keys absent from the file keep the base value
func LoadAttributes(path string, base Attributes) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, fmt.Errorf("read attributes %s: %w", path, err)
	}
	attrs, err := ParseAttributes(data, base)
	if err != nil {
		return Attributes{}, fmt.Errorf("attributes %s: %w", path, err)
	}
	return attrs, nil
}

// ParseAttributes decodes YAML overrides on top of base, rejecting unknown keys
func ParseAttributes(data []byte, base Attributes) (Attributes, error) {
	attrs := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&attrs); err != nil && !errors.Is(err, io.EOF) {
		return Attributes{}, fmt.Errorf("decode: %w", err)
	}
	if err := attrs.Validate(); err != nil {
		return Attributes{}, err
	}
	return attrs, nil
}

// Validate rejects non-finite or negative tunables and inverted frame windows
func (a Attributes) Validate() error {
	floats := map[string]float64{
		"ground_friction":                     a.GroundFriction,
		"dash_start_velocity":                 a.DashStartVelocity,
		"dash_max_velocity":                   a.DashMaxVelocity,
		"dash_base_acceleration":              a.DashBaseAcceleration,
		"dash_axis_acceleration":              a.DashAxisAcceleration,
		"walk_start_velocity":                 a.WalkStartVelocity,
		"walk_max_velocity":                   a.WalkMaxVelocity,
		"walk_acceleration":                   a.WalkAcceleration,
		"air_friction":                        a.AirFriction,
		"air_base_acceleration":               a.AirBaseAcceleration,
		"air_axis_acceleration":               a.AirAxisAcceleration,
		"air_max_velocity":                    a.AirMaxVelocity,
		"jump_velocity_dampening":             a.JumpVelocityDampening,
		"jump_max_horizontal_velocity":        a.JumpMaxHorizontalVelocity,
		"jump_start_horizontal_velocity":      a.JumpStartHorizontalVelocity,
		"short_hop_velocity":                  a.ShortHopVelocity,
		"full_hop_velocity":                   a.FullHopVelocity,
		"fall_velocity":                       a.FallVelocity,
		"fast_fall_velocity":                  a.FastFallVelocity,
		"air_jump_velocity_multiplier":        a.AirJumpVelocityMultiplier,
		"air_jump_horizontal_axis_multiplier": a.AirJumpHorizontalAxisMultiplier,
		"gravity":                             a.Gravity,
	}
	for name, v := range floats {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidAttributes, name, v)
		}
	}
	if a.DashMaxVelocity == 0 {
		return fmt.Errorf("%w: dash_max_velocity must be positive", ErrInvalidAttributes)
	}
	if a.DashMinFrames > a.DashMaxFrames {
		return fmt.Errorf("%w: dash_min_frames %d > dash_max_frames %d", ErrInvalidAttributes, a.DashMinFrames, a.DashMaxFrames)
	}
	for _, p := range a.ECB.World(vmath.Point2D{}) {
		if !p.IsFinite() {
			return fmt.Errorf("%w: non-finite ECB point %v", ErrInvalidAttributes, p)
		}
	}
	return nil
}
