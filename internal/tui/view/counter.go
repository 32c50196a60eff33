package view

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
)

// IncrementLabel is the label of the counter button.
const IncrementLabel = "Increment"

// CounterState holds the state needed to render the counter section.
type CounterState struct {
	// Count is the current counter value.
	Count int

	// Result is the memoized calculation for Count.
	Result int

	// Focused indicates whether the Increment button has focus.
	Focused bool
}

// CounterView renders the counter section.
// It is stateless - all state is passed in via CounterState.
type CounterView struct{}

// NewCounterView creates a new CounterView instance.
func NewCounterView() *CounterView {
	return &CounterView{}
}

// Render renders the counter heading, the Increment button, and the
// calculation result. A nil s uses the active styles.
func (v *CounterView) Render(state *CounterState, s *styles.Styles) string {
	if state == nil {
		return ""
	}
	if s == nil {
		s = styles.Active()
	}

	button := s.IncrementButton
	if state.Focused {
		button = styles.Focused(button)
	}

	var b strings.Builder
	b.WriteString(s.SectionTitle.Render(fmt.Sprintf("Counter: %d", state.Count)))
	b.WriteString("\n\n")
	b.WriteString(button.Render(IncrementLabel))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render(fmt.Sprintf("Memoized calculation result: %d", state.Result)))
	return b.String()
}
