package view

import (
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// SubmitLabel is the label of the form's submit button.
const SubmitLabel = "Submit"

// TaskPlaceholder is shown in the empty task input.
const TaskPlaceholder = "Enter custom task"

// TaskFormState holds the state needed to render the task form.
// This struct is populated by the Model and passed to the view for rendering.
type TaskFormState struct {
	// Input is the already rendered text input (textinput.Model.View()).
	Input string

	// InputFocused indicates whether the text input has focus.
	InputFocused bool

	// SubmitFocused indicates whether the Submit button has focus.
	SubmitFocused bool
}

// TaskFormView renders the custom task input next to the Submit button.
// It is stateless - all state is passed in via TaskFormState.
type TaskFormView struct{}

// NewTaskFormView creates a new TaskFormView instance.
func NewTaskFormView() *TaskFormView {
	return &TaskFormView{}
}

// Render renders the form on one row. A nil s uses the active styles.
func (v *TaskFormView) Render(state *TaskFormState, s *styles.Styles) string {
	if state == nil {
		return ""
	}
	if s == nil {
		s = styles.Active()
	}

	box := s.Input
	if state.InputFocused {
		box = s.InputFocused
	}

	button := s.SubmitButton
	if state.SubmitFocused {
		button = styles.Focused(button)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		box.Render(state.Input),
		" ",
		button.Render(SubmitLabel),
	)
}
