package view

import (
	"strings"

	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/Iron-Ham/taskmemo/internal/memo"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
	"github.com/Iron-Ham/taskmemo/internal/state"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
)

// AddTodoLabel is the label of the button that appends NewTodoText.
const AddTodoLabel = "Add Todo"

// TodoListView renders the todo entries one per line, in order.
//
// Output is cached per collection identity: rendering the collection that
// produced the cached output again skips the renderer entirely.
type TodoListView struct {
	slot    *memo.Slot[state.Identity, string]
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewTodoListView creates a TodoListView with an empty cache.
// A nil logger discards log output; a nil m records nothing.
func NewTodoListView(logger *logging.Logger, m *metrics.Metrics) *TodoListView {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &TodoListView{
		slot:    memo.NewSlot[state.Identity, string](),
		logger:  logger.WithView(metrics.ViewTodoList),
		metrics: m,
	}
}

// Render returns the rendered list for todos. A nil s uses the active styles.
func (v *TodoListView) Render(todos state.TodoCollection, s *styles.Styles) string {
	if s == nil {
		s = styles.Active()
	}
	return v.slot.Get(todos.Identity(), func(state.Identity) string {
		return v.render(todos, s)
	})
}

func (v *TodoListView) render(todos state.TodoCollection, s *styles.Styles) string {
	v.logger.Debug("TodoList rendered", "entries", todos.Len())
	v.metrics.ObserveRender(metrics.ViewTodoList)

	if todos.Len() == 0 {
		return s.Muted.Render("No todos yet")
	}

	lines := make([]string, 0, todos.Len())
	todos.All(func(_ int, item string) bool {
		lines = append(lines, s.TodoBullet.Render("•")+" "+s.TodoItem.Render(item))
		return true
	})
	return strings.Join(lines, "\n")
}

// Renders reports how many times the list was actually rendered.
func (v *TodoListView) Renders() int {
	return v.slot.Computations()
}

// Invalidate drops the cached output so the next Render re-renders.
func (v *TodoListView) Invalidate() {
	v.slot.Invalidate()
}

// RenderAddButton renders the Add Todo button.
func RenderAddButton(focused bool, s *styles.Styles) string {
	if s == nil {
		s = styles.Active()
	}
	button := s.AddButton
	if focused {
		button = styles.Focused(button)
	}
	return button.Render(AddTodoLabel)
}
