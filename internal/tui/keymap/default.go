package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default keymap configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default taskmemo key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeInput:  defaultInputBindings(),
			ModeAlert:  defaultAlertBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Counter
			{KeyType: tea.KeyRunes, Rune: '+', Command: CmdIncrement, Description: "Increment", Category: "Counter"},
			{KeyType: tea.KeyRunes, Rune: '=', Command: CmdIncrement, Description: "Increment", Category: "Counter"},

			// Todos
			{KeyType: tea.KeyRunes, Rune: 'a', Command: CmdAddTodo, Description: "Add todo", Category: "Todos"},
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdFocusInput, Description: "Type a task", Category: "Todos"},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdFocusInput, Description: "Type a task", Category: "Todos"},

			// Focus
			{KeyType: tea.KeyTab, Command: CmdFocusNext, Description: "Next control", Category: "Focus"},
			{KeyType: tea.KeyRight, Command: CmdFocusNext, Description: "Next control", Category: "Focus"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdFocusNext, Description: "Next control", Category: "Focus"},
			{KeyType: tea.KeyShiftTab, Command: CmdFocusPrev, Description: "Previous control", Category: "Focus"},
			{KeyType: tea.KeyLeft, Command: CmdFocusPrev, Description: "Previous control", Category: "Focus"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdFocusPrev, Description: "Previous control", Category: "Focus"},
			{KeyType: tea.KeyEnter, Command: CmdActivate, Description: "Press focused button", Category: "Focus"},
			{KeyType: tea.KeySpace, Command: CmdActivate, Description: "Press focused button", Category: "Focus"},

			// General
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "General"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "General"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "General"},
		},
	}
}

func defaultInputBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeInput,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "Submit task", Category: "Task"},
			{KeyType: tea.KeyEsc, Command: CmdBlurInput, Description: "Leave input", Category: "Task"},
			{KeyType: tea.KeyTab, Command: CmdFocusNext, Description: "Next control", Category: "Focus"},
			{KeyType: tea.KeyShiftTab, Command: CmdFocusPrev, Description: "Previous control", Category: "Focus"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "General"},
		},
	}
}

func defaultAlertBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeAlert,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdDismissAlert, Description: "OK", Category: "Alert"},
			{KeyType: tea.KeyEsc, Command: CmdDismissAlert, Description: "OK", Category: "Alert"},
			{KeyType: tea.KeySpace, Command: CmdDismissAlert, Description: "OK", Category: "Alert"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "General"},
		},
	}
}
