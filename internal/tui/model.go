package tui

import (
	"github.com/Iron-Ham/taskmemo/internal/calc"
	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
	"github.com/Iron-Ham/taskmemo/internal/state"
	"github.com/Iron-Ham/taskmemo/internal/tui/keymap"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/Iron-Ham/taskmemo/internal/tui/view"
	"github.com/charmbracelet/bubbles/textinput"
)

// DefaultInputWidth is the task input width used when none is configured.
const DefaultInputWidth = 30

// Focusable controls, in tab order.
type focusTarget int

const (
	focusIncrement focusTarget = iota
	focusAddTodo
	focusInput
	focusSubmit

	focusCount
)

// String returns the control name used in logs.
func (f focusTarget) String() string {
	switch f {
	case focusIncrement:
		return "increment"
	case focusAddTodo:
		return "add_todo"
	case focusInput:
		return "input"
	case focusSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// renderStats counts root renders. It is shared by all copies of a Model
// because View has a value receiver.
type renderStats struct {
	root int
}

// Model is the root Bubbletea model. It owns the application state and the
// two memoized pieces of the screen: the calculation result and the todo list.
type Model struct {
	state      *state.State
	calculator *calc.Calculator
	keymap     *keymap.Keymap

	// Views
	counterView *view.CounterView
	listView    *view.TodoListView
	formView    *view.TaskFormView
	alertView   *view.AlertView
	helpView    *view.HelpBarView
	statsView   *view.StatsView

	input textinput.Model
	focus focusTarget

	// alert is the message of the raised blocking alert, empty when none.
	alert string

	showHelp  bool
	showStats bool
	themeGen  uint64

	width  int
	height int

	stats   *renderStats
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for the model and its views.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithMetrics sets the metrics sink for render counters.
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Model) {
		m.metrics = mt
	}
}

// WithKeymap replaces the default key bindings.
func WithKeymap(km *keymap.Keymap) Option {
	return func(m *Model) {
		m.keymap = km
	}
}

// WithShowStats shows the render counters under the help bar.
func WithShowStats(show bool) Option {
	return func(m *Model) {
		m.showStats = show
	}
}

// WithInputWidth sets the width of the task input. Non-positive values keep
// DefaultInputWidth.
func WithInputWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.input.Width = width
		}
	}
}

// WithSize sets the initial terminal size so the first frame is laid out
// before a tea.WindowSizeMsg arrives.
func WithSize(width, height int) Option {
	return func(m *Model) {
		if width > 0 && height > 0 {
			m.width = width
			m.height = height
		}
	}
}

// NewModel creates the root model around st and calculator. The Increment
// button has focus initially.
func NewModel(st *state.State, calculator *calc.Calculator, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = view.TaskPlaceholder
	ti.Prompt = ""
	ti.Width = DefaultInputWidth
	ti.SetValue(st.TaskText())

	m := Model{
		state:       st,
		calculator:  calculator,
		keymap:      keymap.DefaultKeymap(),
		counterView: view.NewCounterView(),
		formView:    view.NewTaskFormView(),
		alertView:   view.NewAlertView(),
		helpView:    view.NewHelpBarView(),
		statsView:   view.NewStatsView(),
		input:       ti,
		focus:       focusIncrement,
		themeGen:    styles.Generation(),
		stats:       &renderStats{},
		logger:      logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.logger = m.logger.WithComponent("tui")
	m.listView = view.NewTodoListView(m.logger, m.metrics)
	return m
}

// mode returns the keymap mode for the current focus and alert state.
func (m Model) mode() keymap.Mode {
	switch {
	case m.alert != "":
		return keymap.ModeAlert
	case m.focus == focusInput:
		return keymap.ModeInput
	default:
		return keymap.ModeNormal
	}
}

// State returns the application state owned by the model.
func (m Model) State() *state.State {
	return m.state
}

// Alert returns the message of the raised alert, or "" when none is raised.
func (m Model) Alert() string {
	return m.alert
}

// RootRenders reports how many times View has run.
func (m Model) RootRenders() int {
	return m.stats.root
}

// ListRenders reports how many times the todo list was actually rendered.
func (m Model) ListRenders() int {
	return m.listView.Renders()
}
