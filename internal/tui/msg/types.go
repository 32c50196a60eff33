package msg

import (
	"github.com/Iron-Ham/taskmemo/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfigReloadedMsg carries a freshly loaded and validated configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ErrMsg wraps an error to be logged by the UI.
type ErrMsg struct {
	Err error
}

// FromReload converts the result of a config reload into the message the
// model handles: ErrMsg when err is set, ConfigReloadedMsg otherwise.
func FromReload(cfg *config.Config, err error) tea.Msg {
	if err != nil {
		return ErrMsg{Err: err}
	}
	return ConfigReloadedMsg{Config: cfg}
}
