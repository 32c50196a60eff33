// Package keymap provides key binding definitions and lookup for the TUI.
// It keeps key handling declarative and mode-aware so the model's Update
// method only deals in commands.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNormal Mode = "normal" // A button has focus
	ModeInput  Mode = "input"  // The task input has focus; runes are typed
	ModeAlert  Mode = "alert"  // The blocking alert is shown
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Normal mode commands
const (
	CmdIncrement  Command = "increment"
	CmdAddTodo    Command = "add_todo"
	CmdFocusInput Command = "focus_input"
	CmdFocusNext  Command = "focus_next"
	CmdFocusPrev  Command = "focus_prev"
	CmdActivate   Command = "activate"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Input mode commands
const (
	CmdSubmit    Command = "submit"
	CmdBlurInput Command = "blur_input"
)

// Alert mode commands
const (
	CmdDismissAlert Command = "dismiss_alert"
)

// Modifier represents keyboard modifiers. Bubble Tea reports ctrl and shift
// combinations as distinct key types, so Alt is the only flag a KeyMsg carries.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// A zero Rune is a catch-all for any rune
	if kb.Rune == 0 {
		return true
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		if kb.KeyType == tea.KeySpace {
			return prefix + "space"
		}
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
// Useful for displaying "Press X or Y to do Z" in help.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// GetCategories returns all unique categories in a mode's bindings, in
// first-seen order.
func (km *Keymap) GetCategories(mode Mode) []string {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var categories []string

	for _, binding := range mb.Bindings {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}
