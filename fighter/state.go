package fighter

import "fmt"

// State is the discrete movement state
type State uint8

const (
	Idle State = iota
	Turn
	Walk
	Dash
	Run
	RunBrake
	RunTurn
	JumpSquat
	Airborne
	AirDodge
	Land
	LandSpecial

	StateCount
)

var stateNames = [StateCount]string{
	"Idle", "Turn", "Walk", "Dash", "Run", "RunBrake", "RunTurn",
	"JumpSquat", "Airborne", "AirDodge", "Land", "LandSpecial",
}

func (s State) String() string {
	if s < StateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ParseState resolves a state by its String name
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fighter state %q", name)
}

// IsAerial reports states that can land on a surface
func (s State) IsAerial() bool {
	return s == Airborne || s == AirDodge
}

// IsGrounded reports states that stand on a surface
func (s State) IsGrounded() bool {
	return s < StateCount && !s.IsAerial()
}

// MarshalText writes the state name, used by telemetry and YAML
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
