package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/platform-fighter/parameter"
)

// KeyboardController turns terminal key events into a DigitalInput
// A control counts as held until its deadline passes without a new press or repeat
type KeyboardController struct {
	table       *KeyTable
	initialHold time.Duration
	repeatHold  time.Duration
	deadlines   [ControlCount]time.Time
}

// NewKeyboardController uses the default key table when table is nil
// Non-positive hold durations fall back to the parameter defaults
func NewKeyboardController(table *KeyTable, initialHold, repeatHold time.Duration) *KeyboardController {
	if table == nil {
		table = DefaultKeyTable()
	}
	if initialHold <= 0 {
		initialHold = parameter.KeyInitialHold
	}
	if repeatHold <= 0 {
		repeatHold = parameter.KeyRepeatHold
	}
	return &KeyboardController{
		table:       table,
		initialHold: initialHold,
		repeatHold:  repeatHold,
	}
}

// HandleKey records a press at now and returns the bound program intent, if any
func (k *KeyboardController) HandleKey(ev *tcell.EventKey, now time.Time) Intent {
	entry, ok := k.table.Lookup(ev)
	if !ok {
		return IntentNone
	}
	switch entry.Behavior {
	case BehaviorControl:
		k.press(entry.Control, now)
	case BehaviorSystem:
		return entry.Intent
	}
	return IntentNone
}

func (k *KeyboardController) press(c Control, now time.Time) {
	if c == ControlNone || c >= ControlCount {
		return
	}
	if k.isHeld(c, now) {
		k.deadlines[c] = now.Add(k.repeatHold)
		return
	}
	k.deadlines[c] = now.Add(k.initialHold)

	// A fresh opposite direction releases its partner, matching how a thumb leaves one side of a stick
	if opp, ok := opposite[c]; ok {
		k.deadlines[opp] = time.Time{}
	}
}

var opposite = map[Control]Control{
	ControlLeft:   ControlRight,
	ControlRight:  ControlLeft,
	ControlDown:   ControlUp,
	ControlUp:     ControlDown,
	ControlCLeft:  ControlCRight,
	ControlCRight: ControlCLeft,
	ControlCDown:  ControlCUp,
	ControlCUp:    ControlCDown,
}

func (k *KeyboardController) isHeld(c Control, now time.Time) bool {
	return now.Before(k.deadlines[c])
}

// Snapshot returns the controls held at now
func (k *KeyboardController) Snapshot(now time.Time) DigitalInput {
	var d DigitalInput
	for c := ControlNone + 1; c < ControlCount; c++ {
		d.held[c] = k.isHeld(c, now)
	}
	return d
}

// ReleaseAll drops every hold, used on focus loss and reset
func (k *KeyboardController) ReleaseAll() {
	k.deadlines = [ControlCount]time.Time{}
}
