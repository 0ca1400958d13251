package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyber-snake/internal/engine"
)

// Action is a game-level action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionTurnUp
	ActionTurnDown
	ActionTurnLeft
	ActionTurnRight
	ActionPause
	ActionRestart
	ActionTheme
	ActionSound
	ActionScreenshot
	ActionQuit
)

// Direction returns the turn direction for turn actions.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionTurnUp:
		return engine.DirUp, true
	case ActionTurnDown:
		return engine.DirDown, true
	case ActionTurnLeft:
		return engine.DirLeft, true
	case ActionTurnRight:
		return engine.DirRight, true
	}
	return 0, false
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Returns the action
// (may be ActionNone) and whether it is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit, true
	case "up", "w":
		return ActionTurnUp, false
	case "down", "s":
		return ActionTurnDown, false
	case "left", "a":
		return ActionTurnLeft, false
	case "right", "d":
		return ActionTurnRight, false
	case " ":
		return ActionPause, false
	case "r", "R":
		return ActionRestart, false
	case "t", "T":
		return ActionTheme, false
	case "m", "M":
		return ActionSound, false
	case "ctrl+s":
		return ActionScreenshot, false
	}

	return ActionNone, false
}
