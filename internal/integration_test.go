// Package internal holds tests that exercise the packages together: a
// config file drives state, the calculator, and the TUI model the same way
// the start command wires them.
package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/taskmemo/internal/calc"
	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
	"github.com/Iron-Ham/taskmemo/internal/state"
	"github.com/Iron-Ham/taskmemo/internal/tui"
	tuimsg "github.com/Iron-Ham/taskmemo/internal/tui/msg"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
)

const integrationConfig = `tui:
  theme: nord
  show_stats: true
todos:
  seed:
    - Write tests
calc:
  iterations: 10
`

func loadIntegrationConfig(t *testing.T) (*viper.Viper, string, *config.Config) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(integrationConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	config.SetDefaultsOn(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}
	cfg, err := config.LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	return v, path, cfg
}

func update(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestConfigDrivesModel(t *testing.T) {
	_, _, cfg := loadIntegrationConfig(t)
	m := metrics.New()

	st := state.New(state.WithSeed(cfg.Todos.Seed), state.WithMetrics(m))
	calculator := calc.NewCalculator(calc.WithIterations(cfg.Calc.Iterations), calc.WithMetrics(m))
	var model tea.Model = tui.NewModel(st, calculator, tui.WithMetrics(m), tui.WithShowStats(cfg.TUI.ShowStats))

	out := model.View()
	for _, want := range []string{"Write tests", "Counter: 0", "Memoized calculation result: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("initial view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Learn React") {
		t.Error("configured seed should replace the default todos")
	}

	model = update(model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	out = model.View()
	if !strings.Contains(out, "Memoized calculation result: 10") {
		t.Errorf("count 1 with 10 iterations should give 10:\n%s", out)
	}

	// Incrementing re-renders the root but leaves the list cached
	if got := testutil.ToFloat64(m.RenderCounter(metrics.ViewTodoList)); got != 1 {
		t.Errorf("todo list renders = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RenderCounter(metrics.ViewRoot)); got != 2 {
		t.Errorf("root renders = %v, want 2", got)
	}
}

func TestConfigWatcherFeedsModel(t *testing.T) {
	v, path, cfg := loadIntegrationConfig(t)

	st := state.New(state.WithSeed(cfg.Todos.Seed))
	var model tea.Model = tui.NewModel(st, calc.NewCalculator(calc.WithIterations(cfg.Calc.Iterations)),
		tui.WithShowStats(cfg.TUI.ShowStats))

	w, err := config.NewWatcher(v, path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	reloaded := make(chan tea.Msg, 1)
	w.OnChange(func(c *config.Config, err error) {
		reloaded <- tuimsg.FromReload(c, err)
	})
	w.Start()
	t.Cleanup(w.Stop)
	t.Cleanup(func() { _ = styles.SetActiveTheme(styles.ThemeDefault) })

	updated := strings.Replace(integrationConfig, "show_stats: true", "show_stats: false", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-reloaded:
		if _, ok := msg.(tuimsg.ConfigReloadedMsg); !ok {
			t.Fatalf("reload produced %T, want ConfigReloadedMsg", msg)
		}
		if !strings.Contains(model.View(), "renders:") {
			t.Fatal("stats should be shown before the reload")
		}
		model = update(model, msg)
		if strings.Contains(model.View(), "renders:") {
			t.Error("stats should be hidden after the reload")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config write")
	}
}
