package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"up":     core.ActionUp,
		"w":      core.ActionAltUp,
		"down":   core.ActionDown,
		"s":      core.ActionAltDown,
		"left":   core.ActionLeft,
		"a":      core.ActionAltLeft,
		"right":  core.ActionRight,
		"d":      core.ActionAltRight,
		" ":      core.ActionFire,
		"enter":  core.ActionConfirm,
		"esc":    core.ActionBack,
		"b":      core.ActionBack,
		"r":      core.ActionRestart,
		"p":      core.ActionPause,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	}}
}

// MapKey returns the action for a key, ActionNone if unbound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	return km.bindings[msg.String()]
}

// MapKeyToFrame adds the key's action to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}
