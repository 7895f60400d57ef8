package core

import "strings"

// Action is a semantic input, decoupled from physical keys.
type Action uint16

const (
	ActionNone     Action = 0
	ActionUp       Action = 1 << iota // move up / rotate
	ActionDown                        // move down / soft drop
	ActionLeft                        // move left
	ActionRight                       // move right
	ActionFire                        // fire / launch / hard drop
	ActionConfirm                     // Enter in menus
	ActionBack                        // Esc, back to the launcher
	ActionRestart                     // reset the current game
	ActionPause                       // toggle pause
	ActionQuit                        // leave the application
	ActionAltUp                       // W: second player's up
	ActionAltDown                     // S
	ActionAltLeft                     // A
	ActionAltRight                    // D
)

// altPairs ties each second-player direction to the shared one it also counts as.
var altPairs = [...]struct{ alt, main Action }{
	{ActionAltUp, ActionUp},
	{ActionAltDown, ActionDown},
	{ActionAltLeft, ActionLeft},
	{ActionAltRight, ActionRight},
}

var actionNames = []struct {
	a    Action
	name string
}{
	{ActionUp, "Up"},
	{ActionDown, "Down"},
	{ActionLeft, "Left"},
	{ActionRight, "Right"},
	{ActionFire, "Fire"},
	{ActionConfirm, "Confirm"},
	{ActionBack, "Back"},
	{ActionRestart, "Restart"},
	{ActionPause, "Pause"},
	{ActionQuit, "Quit"},
	{ActionAltUp, "AltUp"},
	{ActionAltDown, "AltDown"},
	{ActionAltLeft, "AltLeft"},
	{ActionAltRight, "AltRight"},
}

// String returns a readable name; combined actions are joined with '+'.
func (a Action) String() string {
	if a == ActionNone {
		return "None"
	}
	var parts []string
	for _, n := range actionNames {
		if a&n.a != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "+")
}

// InputFrame is the set of actions pressed during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits Action
}

// NewInputFrame returns a frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as pressed.
func (f *InputFrame) Set(a Action) {
	f.bits |= a
}

// Has reports whether an action was pressed. A second-player direction
// also counts as the matching shared direction, so WASD and the arrows
// drive single-player games alike.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.folded()&a == a
}

// Pressed reports whether exactly these keys were pressed, keeping the
// two sides of the keyboard apart.
func (f InputFrame) Pressed(a Action) bool {
	return a != ActionNone && f.bits&a == a
}

func (f InputFrame) folded() Action {
	b := f.bits
	for _, p := range altPairs {
		if b&p.alt != 0 {
			b |= p.main
		}
	}
	return b
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool {
	return f.bits == ActionNone
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = ActionNone
}

// Actions returns the raw bit set.
func (f InputFrame) Actions() Action {
	return f.bits
}
