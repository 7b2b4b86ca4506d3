package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rocket/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// defaultBindings maps key names, as reported by tea.KeyMsg.String, to actions.
var defaultBindings = map[string]core.Action{
	"up":     core.ActionUp,
	"w":      core.ActionUp,
	"down":   core.ActionDown,
	"s":      core.ActionDown,
	"left":   core.ActionLeft,
	"a":      core.ActionLeft,
	"right":  core.ActionRight,
	"d":      core.ActionRight,
	" ":      core.ActionFire,
	"1":      core.ActionSpecial1,
	"2":      core.ActionSpecial2,
	"3":      core.ActionSpecial3,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"esc":    core.ActionPause,
	"r":      core.ActionRestart,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: defaultBindings}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionEasier // previous difficulty
	MenuActionHarder // next difficulty
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "a", "left", "h":
		return MenuActionEasier
	case "d", "right", "l":
		return MenuActionHarder
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
