package tui

import (
	"github.com/Iron-Ham/taskmemo/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeypress processes keyboard input. Keys bound in the current mode
// become commands; unbound keys are typed into the task input when it has
// focus and ignored otherwise.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.mode()

	cmd, ok := m.keymap.GetBinding(msg, mode)
	if !ok {
		if mode == keymap.ModeInput {
			return m.handleTextInput(msg)
		}
		return m, nil
	}

	return m.execute(cmd)
}

// handleTextInput forwards a key to the text input and mirrors its value
// into the pending task text.
func (m Model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.state.TaskText() {
		m.state.SetTaskText(value)
	}
	return m, cmd
}

// execute runs a keymap command.
func (m Model) execute(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdQuit:
		m.logger.Info("quit requested")
		return m, tea.Quit

	case keymap.CmdDismissAlert:
		m.alert = ""
		return m, nil

	case keymap.CmdIncrement:
		m.state.Increment()
		return m, nil

	case keymap.CmdAddTodo:
		m.state.AddTodo()
		return m, nil

	case keymap.CmdFocusInput:
		return m, m.setFocus(focusInput)

	case keymap.CmdFocusNext:
		return m, m.cycleFocus(1)

	case keymap.CmdFocusPrev:
		return m, m.cycleFocus(-1)

	case keymap.CmdBlurInput:
		return m, m.setFocus(focusSubmit)

	case keymap.CmdSubmit:
		m.submit()
		return m, nil

	case keymap.CmdActivate:
		return m.activate()

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	m.logger.Debug("unhandled command", "command", string(cmd))
	return m, nil
}

// activate presses the focused button.
func (m Model) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusIncrement:
		m.state.Increment()
	case focusAddTodo:
		m.state.AddTodo()
	case focusSubmit:
		m.submit()
	case focusInput:
		m.submit()
	}
	return m, nil
}
