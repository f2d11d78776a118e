package input

import "fmt"

// ButtonID names a controller button
type ButtonID uint8

const (
	ButtonA ButtonID = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonZ
	ButtonR
	ButtonL
	ButtonStart
	ButtonDLeft
	ButtonDRight
	ButtonDDown
	ButtonDUp

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"A", "B", "X", "Y", "Z", "R", "L", "Start", "DLeft", "DRight", "DDown", "DUp",
}

func (id ButtonID) String() string {
	if id < ButtonCount {
		return buttonNames[id]
	}
	return fmt.Sprintf("ButtonID(%d)", uint8(id))
}

// ControllerState aggregates both sticks and every button of one controller
// Advance is the single per-frame edge update; individual axes and buttons
// cannot be advanced from outside this package
type ControllerState struct {
	Stick  AnalogStick
	CStick AnalogStick

	buttons [ButtonCount]Button
}

// NewControllerState returns a neutral controller
func NewControllerState(deadZone float64) *ControllerState {
	return &ControllerState{
		Stick:  NewAnalogStick(deadZone),
		CStick: NewAnalogStick(deadZone),
	}
}

// Button returns the named button, nil for an unknown id
func (c *ControllerState) Button(id ButtonID) *Button {
	if id >= ButtonCount {
		return nil
	}
	return &c.buttons[id]
}

// CopyInputs overwrites current values from src, edge history is kept
func (c *ControllerState) CopyInputs(src *ControllerState) {
	c.Stick.X.SetValue(src.Stick.X.value)
	c.Stick.Y.SetValue(src.Stick.Y.value)
	c.CStick.X.SetValue(src.CStick.X.value)
	c.CStick.Y.SetValue(src.CStick.Y.value)
	for i := range c.buttons {
		c.buttons[i].pressed = src.buttons[i].pressed
	}
}

// Advance shifts every axis and button current → previous
// Must run exactly once per simulated frame, after the frame has read input
func (c *ControllerState) Advance() {
	c.Stick.advance()
	c.CStick.advance()
	for i := range c.buttons {
		c.buttons[i].advance()
	}
}

// ConvertToGameValues snaps both sticks to game resolution
func (c *ControllerState) ConvertToGameValues() {
	c.Stick.ConvertToGameValues()
	c.CStick.ConvertToGameValues()
}

// Reset releases everything and clears edge history
func (c *ControllerState) Reset() {
	deadZone := c.Stick.X.deadZone
	*c = ControllerState{
		Stick:  NewAnalogStick(deadZone),
		CStick: NewAnalogStick(deadZone),
	}
}

// PressedButtons lists held buttons in id order, for HUD and telemetry
func (c *ControllerState) PressedButtons() []ButtonID {
	var held []ButtonID
	for i := range c.buttons {
		if c.buttons[i].pressed {
			held = append(held, ButtonID(i))
		}
	}
	return held
}
