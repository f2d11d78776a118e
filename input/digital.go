package input

// Control is one digital signal a keyboard can drive
type Control uint8

const (
	ControlNone Control = iota
	ControlLeft
	ControlRight
	ControlDown
	ControlUp
	ControlCLeft
	ControlCRight
	ControlCDown
	ControlCUp
	ControlA
	ControlB
	ControlX
	ControlY
	ControlZ
	ControlL
	ControlR
	ControlStart
	ControlDLeft
	ControlDRight
	ControlDDown
	ControlDUp

	ControlCount
)

var controlNames = [ControlCount]string{
	"none", "left", "right", "down", "up",
	"c-left", "c-right", "c-down", "c-up",
	"a", "b", "x", "y", "z", "l", "r", "start",
	"d-left", "d-right", "d-down", "d-up",
}

func (c Control) String() string {
	if c < ControlCount {
		return controlNames[c]
	}
	return "unknown"
}

// ParseControl resolves a control by its String name
func ParseControl(name string) (Control, bool) {
	for i, n := range controlNames {
		if n == name && Control(i) != ControlNone {
			return Control(i), true
		}
	}
	return ControlNone, false
}

// controlButtons maps button controls to controller buttons
var controlButtons = map[Control]ButtonID{
	ControlA:      ButtonA,
	ControlB:      ButtonB,
	ControlX:      ButtonX,
	ControlY:      ButtonY,
	ControlZ:      ButtonZ,
	ControlL:      ButtonL,
	ControlR:      ButtonR,
	ControlStart:  ButtonStart,
	ControlDLeft:  ButtonDLeft,
	ControlDRight: ButtonDRight,
	ControlDDown:  ButtonDDown,
	ControlDUp:    ButtonDUp,
}

// DigitalInput is a raw snapshot of every digital control
type DigitalInput struct {
	held [ControlCount]bool
}

func (d *DigitalInput) Set(c Control, held bool) {
	if c > ControlNone && c < ControlCount {
		d.held[c] = held
	}
}

// Held has a value receiver so snapshots returned by the keyboard can be queried inline
func (d DigitalInput) Held(c Control) bool {
	return c < ControlCount && d.held[c]
}

// Apply writes the snapshot into current controller values
// Opposing direction pairs go through SetValueFromStates, then sticks are snapped
func (d *DigitalInput) Apply(c *ControllerState) {
	c.Stick.X.SetValueFromStates(d.held[ControlLeft], d.held[ControlRight])
	c.Stick.Y.SetValueFromStates(d.held[ControlDown], d.held[ControlUp])
	c.CStick.X.SetValueFromStates(d.held[ControlCLeft], d.held[ControlCRight])
	c.CStick.Y.SetValueFromStates(d.held[ControlCDown], d.held[ControlCUp])

	for ctrl, id := range controlButtons {
		c.buttons[id].pressed = d.held[ctrl]
	}
	c.ConvertToGameValues()
}
