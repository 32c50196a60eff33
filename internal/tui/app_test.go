package tui

import (
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/spf13/viper"
)

func TestNew_Defaults(t *testing.T) {
	app := New(newTestModel(t))

	if !app.altScreen {
		t.Error("alt screen should be enabled by default")
	}
	if app.watcher != nil {
		t.Error("no watcher should be set by default")
	}
	if app.logger == nil {
		t.Error("logger should default to a no-op logger")
	}
}

func TestNew_Options(t *testing.T) {
	w, err := config.NewWatcher(viper.New(), filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	t.Cleanup(w.Stop)

	app := New(newTestModel(t), WithAltScreen(false), WithConfigWatcher(w))

	if app.altScreen {
		t.Error("WithAltScreen(false) not applied")
	}
	if app.watcher != w {
		t.Error("WithConfigWatcher not applied")
	}
}
