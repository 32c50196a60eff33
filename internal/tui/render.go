package tui

import (
	"strings"

	"github.com/Iron-Ham/taskmemo/internal/metrics"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/Iron-Ham/taskmemo/internal/tui/view"
	"github.com/Iron-Ham/taskmemo/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// AppTitle is the heading at the top of the screen.
const AppTitle = "📝 Task Management App"

// View renders the UI. While an alert is raised only the alert is shown.
func (m Model) View() string {
	m.stats.root++
	m.metrics.ObserveRender(metrics.ViewRoot)

	s := styles.Active()
	result := m.calculator.Value(m.state.Counter())

	if m.alert != "" {
		return m.alertView.Render(m.alert, m.width, m.height, s)
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(AppTitle))
	b.WriteString("\n")

	b.WriteString(m.counterView.Render(&view.CounterState{
		Count:   m.state.Counter(),
		Result:  result,
		Focused: m.focus == focusIncrement,
	}, s))
	b.WriteString("\n\n")

	b.WriteString(m.renderTodoSection(s))
	b.WriteString("\n")

	// Footer lines are cut to the terminal width instead of wrapping
	if m.showHelp {
		b.WriteString(util.FitWidth(m.helpView.RenderFull(m.keymap, m.mode(), s), m.width))
	} else {
		b.WriteString(util.FitWidth(m.helpView.Render(m.keymap, m.mode(), s), m.width))
	}

	if m.showStats {
		b.WriteString("\n")
		b.WriteString(util.FitWidth(m.statsView.Render(&view.StatsState{
			RootRenders:     m.stats.root,
			ListRenders:     m.listView.Renders(),
			CalculationRuns: m.calculator.Runs(),
			Todos:           m.state.Todos().Len(),
		}, s), m.width))
	}

	content := b.String()
	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	return content
}

// renderTodoSection renders the Todo List heading, the Add Todo button, the
// memoized list, and the task form.
func (m Model) renderTodoSection(s *styles.Styles) string {
	var b strings.Builder
	b.WriteString(s.SectionTitle.Render("Todo List"))
	b.WriteString("\n\n")
	b.WriteString(view.RenderAddButton(m.focus == focusAddTodo, s))
	b.WriteString("\n\n")
	b.WriteString(m.listView.Render(m.state.Todos(), s))
	b.WriteString("\n\n")
	b.WriteString(m.formView.Render(&view.TaskFormState{
		Input:         m.input.View(),
		InputFocused:  m.focus == focusInput,
		SubmitFocused: m.focus == focusSubmit,
	}, s))
	return s.Section.Render(b.String())
}
