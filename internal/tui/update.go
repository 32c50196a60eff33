package tui

import (
	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/Iron-Ham/taskmemo/internal/errors"
	tuimsg "github.com/Iron-Ham/taskmemo/internal/tui/msg"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.focus == focusInput {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tuimsg.ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tuimsg.ErrMsg:
		severity := errors.GetSeverity(msg.Err)
		if severity >= errors.SeverityError {
			m.logger.Error("background error", "error", msg.Err.Error(), "severity", severity.String())
		} else {
			m.logger.Warn("background error", "error", msg.Err.Error(), "severity", severity.String())
		}
		return m, nil
	}

	// Cursor blink and other textinput messages
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyConfig applies the live-reloadable settings of cfg.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}

	m.showStats = cfg.TUI.ShowStats

	name := styles.ThemeName(cfg.TUI.Theme)
	if name == "" {
		name = styles.ThemeDefault
	}
	if name != styles.Active().Name {
		if !styles.IsValidTheme(string(name)) {
			// The theme file may have been installed after startup
			m.loadCustomThemes()
		}
		if err := styles.SetActiveTheme(name); err != nil {
			m.logger.Warn("theme not applied", "theme", string(name), "error", err.Error())
			return
		}
		m.logger.Info("theme changed", "theme", string(name))
	}
	m.syncTheme()
}

// loadCustomThemes registers the theme files in the themes directory.
func (m *Model) loadCustomThemes() {
	dir := config.ThemesDir()
	loaded, errs := styles.DiscoverCustomThemes(dir)
	for _, err := range errs {
		m.logger.Warn("custom theme skipped", "error", err.Error())
	}
	m.logger.Debug("custom themes loaded", "dir", dir, "count", len(loaded))
}

// syncTheme drops the cached todo list when the active styles changed since
// it was rendered.
func (m *Model) syncTheme() {
	if gen := styles.Generation(); gen != m.themeGen {
		m.themeGen = gen
		m.listView.Invalidate()
	}
}

// submit runs the form-submit path. On rejection it raises the alert and
// leaves state untouched.
func (m *Model) submit() {
	if err := m.state.SubmitPending(); err != nil {
		if !errors.Is(err, errors.ErrTaskTooShort) {
			m.logger.Error("submit failed", "error", err.Error())
		}
		m.alert = errors.UserMessage(err)
		return
	}
	m.input.Reset()
}

// setFocus moves focus to target, focusing or blurring the text input.
func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	if target == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// cycleFocus moves focus delta steps through the tab order, wrapping.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focusTarget(next))
}
