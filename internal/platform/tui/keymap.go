package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "h", "a":
		return core.ActionLeft, false
	case "right", "l", "d":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	case "tab":
		return core.ActionScoreboard, false
	case "b", "esc":
		return core.ActionBack, false
	case "ctrl+s":
		return core.ActionScreenshot, false
	}

	return core.ActionNone, false
}
