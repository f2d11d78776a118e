package input

// Button is a digital input with press/release edges
type Button struct {
	pressed  bool
	previous bool
}

func (b *Button) IsPressed() bool    { return b.pressed }
func (b *Button) WasPressed() bool   { return b.previous }
func (b *Button) JustPressed() bool  { return b.pressed && !b.previous }
func (b *Button) JustReleased() bool { return !b.pressed && b.previous }

func (b *Button) SetPressed(pressed bool) { b.pressed = pressed }

func (b *Button) advance() { b.previous = b.pressed }
