package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota
	BehaviorControl             // Drives a controller signal through the hold window
	BehaviorSystem              // Acts on the program, never reaches the simulation
)

// Intent is a program-level action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota
	IntentQuit
	IntentReset
	IntentToggleHUD
	IntentToggleMute
	IntentZoomIn
	IntentZoomOut
	IntentPanUp
	IntentPanDown
	IntentRecenter
	IntentFrameAdvance
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Control  Control
	Intent   Intent
}

// KeyTable maps terminal keys to controls and intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, letters match case-insensitively
	Runes map[rune]KeyEntry
}

func control(c Control) KeyEntry { return KeyEntry{Behavior: BehaviorControl, Control: c} }
func system(i Intent) KeyEntry   { return KeyEntry{Behavior: BehaviorSystem, Intent: i} }

// DefaultKeyTable returns the default bindings
// WASD stick, \ and [ jump (X/Y), = Z, ; L, ] R, 5 Start, VNBG d-pad, IJKL c-stick
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  system(IntentQuit),
			tcell.KeyCtrlQ:  system(IntentQuit),
			tcell.KeyEscape: system(IntentQuit),
			tcell.KeyCtrlR:  system(IntentReset),
			tcell.KeyCtrlS:  system(IntentToggleMute),
			tcell.KeyTab:    system(IntentToggleHUD),
			tcell.KeyPgUp:   system(IntentPanUp),
			tcell.KeyPgDn:   system(IntentPanDown),
			tcell.KeyHome:   system(IntentRecenter),
			tcell.KeyCtrlF:  system(IntentFrameAdvance),
			tcell.KeyLeft:   control(ControlLeft),
			tcell.KeyRight:  control(ControlRight),
			tcell.KeyDown:   control(ControlDown),
			tcell.KeyUp:     control(ControlUp),
		},

		Runes: map[rune]KeyEntry{
			'a':  control(ControlLeft),
			'd':  control(ControlRight),
			's':  control(ControlDown),
			'w':  control(ControlUp),
			'j':  control(ControlCLeft),
			'l':  control(ControlCRight),
			'k':  control(ControlCDown),
			'i':  control(ControlCUp),
			'\\': control(ControlX),
			'[':  control(ControlY),
			'=':  control(ControlZ),
			';':  control(ControlL),
			']':  control(ControlR),
			'5':  control(ControlStart),
			'v':  control(ControlDLeft),
			'n':  control(ControlDRight),
			'b':  control(ControlDDown),
			'g':  control(ControlDUp),
			'+':  system(IntentZoomIn),
			'-':  system(IntentZoomOut),
		},
	}
}

// Lookup resolves a key event, false when unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := t.Runes[unicode.ToLower(ev.Rune())]
		return entry, ok
	}
	entry, ok := t.SpecialKeys[ev.Key()]
	return entry, ok
}

// Bind replaces the binding for a printable key
func (t *KeyTable) Bind(r rune, c Control) {
	t.Runes[unicode.ToLower(r)] = control(c)
}
