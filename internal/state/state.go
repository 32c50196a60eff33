package state

import (
	"strings"
	"unicode/utf8"

	"github.com/Iron-Ham/taskmemo/internal/errors"
	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
)

// MinTaskLength is the trimmed length a submitted task must exceed.
const MinTaskLength = 5

// TaskTooShortMessage is shown to the user when a submission is rejected.
const TaskTooShortMessage = "Task must be more than 5 characters!"

// State is the root view's local state. Each setter mutates one slot
// synchronously; the owning view re-renders afterwards.
//
// State is not safe for concurrent use.
type State struct {
	todos    TodoCollection
	counter  int
	taskText string

	logger  *logging.Logger
	metrics *metrics.Metrics
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used to report mutations.
func WithLogger(l *logging.Logger) Option {
	return func(s *State) {
		s.logger = l
	}
}

// WithMetrics sets the metrics sink for mutations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *State) {
		s.metrics = m
	}
}

// WithSeed replaces the initial todo entries.
func WithSeed(items []string) Option {
	return func(s *State) {
		s.todos = NewTodoCollection(items...)
	}
}

// New creates the initial state: the default todos, a zero counter, and an
// empty task text.
func New(opts ...Option) *State {
	s := &State{
		todos:  NewTodoCollection(DefaultTodos...),
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counter returns the current counter value.
func (s *State) Counter() int {
	return s.counter
}

// Todos returns the current todo collection.
func (s *State) Todos() TodoCollection {
	return s.todos
}

// TaskText returns the pending task text.
func (s *State) TaskText() string {
	return s.taskText
}

// Increment adds one to the counter.
func (s *State) Increment() {
	s.counter++
	s.logger.Debug("counter incremented", "counter", s.counter)
}

// AddTodo appends NewTodoText to the collection.
func (s *State) AddTodo() {
	s.todos = s.todos.Append(NewTodoText)
	s.metrics.ObserveTodoAdded(metrics.SourceAdd)
	s.logger.Info("todo added", "source", metrics.SourceAdd, "count", s.todos.Len())
}

// SetTaskText replaces the pending task text.
func (s *State) SetTaskText(value string) {
	s.taskText = value
}

// Submit appends text if its trimmed length exceeds MinTaskLength and clears
// the pending task text. The stored entry is text as given, untrimmed.
// Otherwise it returns a *errors.ValidationError and changes nothing.
func (s *State) Submit(text string) error {
	if err := ValidateTask(text); err != nil {
		s.metrics.ObserveSubmitRejected()
		s.logger.Warn("task submission rejected", "length", utf8.RuneCountInString(strings.TrimSpace(text)))
		return err
	}

	s.todos = s.todos.Append(text)
	s.taskText = ""
	s.metrics.ObserveTodoAdded(metrics.SourceSubmit)
	s.logger.Info("todo added", "source", metrics.SourceSubmit, "count", s.todos.Len())
	return nil
}

// SubmitPending submits the pending task text.
func (s *State) SubmitPending() error {
	return s.Submit(s.taskText)
}

// ValidateTask reports whether text is acceptable as a new todo.
func ValidateTask(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) > MinTaskLength {
		return nil
	}
	return errors.NewValidationError(TaskTooShortMessage).
		WithField("task").
		WithValue(text).
		WithCause(errors.ErrTaskTooShort)
}
