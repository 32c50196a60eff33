package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/Iron-Ham/taskmemo/internal/errors"
	"github.com/Iron-Ham/taskmemo/internal/logging"
	tuimsg "github.com/Iron-Ham/taskmemo/internal/tui/msg"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program   *tea.Program
	model     Model
	altScreen bool
	watcher   *config.Watcher
	logger    *logging.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen(enabled bool) AppOption {
	return func(a *App) {
		a.altScreen = enabled
	}
}

// WithConfigWatcher forwards config reloads from w into the program.
// The App starts and stops w.
func WithConfigWatcher(w *config.Watcher) AppOption {
	return func(a *App) {
		a.watcher = w
	}
}

// WithAppLogger sets the logger for program lifecycle events.
func WithAppLogger(l *logging.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// New creates a new TUI application
func New(model Model, opts ...AppOption) *App {
	a := &App{
		model:     model,
		altScreen: true,
		logger:    logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run starts the TUI application and blocks until it exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	a.program = tea.NewProgram(a.model, progOpts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-sigChan:
			a.logger.Info("signal received, quitting")
			a.program.Send(tea.Quit())
		case <-done:
		}
	}()

	if a.watcher != nil {
		a.watcher.OnChange(func(cfg *config.Config, err error) {
			a.program.Send(tuimsg.FromReload(cfg, err))
		})
		a.watcher.Start()
		defer a.watcher.Stop()
	}

	a.logger.Info("tui started", "alt_screen", a.altScreen)
	_, err := a.program.Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		// Cancellation is a normal shutdown path
		err = nil
	}
	a.logger.Info("tui stopped")
	return err
}
