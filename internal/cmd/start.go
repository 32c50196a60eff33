package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Iron-Ham/taskmemo/internal/calc"
	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
	"github.com/Iron-Ham/taskmemo/internal/state"
	"github.com/Iron-Ham/taskmemo/internal/tui"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/charmbracelet/x/term"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the TUI",
	Long: `Start the taskmemo TUI.

The counter, the memoized calculation and the todo list are shown on one
screen. Edits to the config file are applied while the TUI is running.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().String("theme", "", "color theme (overrides tui.theme)")
	startCmd.Flags().Bool("stats", false, "show render counters (overrides tui.show_stats)")
	startCmd.Flags().Int("iterations", 0, "loop iterations per calculation (overrides calc.iterations)")
	_ = viper.BindPFlag("tui.theme", startCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("tui.show_stats", startCmd.Flags().Lookup("stats"))
	_ = viper.BindPFlag("calc.iterations", startCmd.Flags().Lookup("iterations"))
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Close()

	themesDir := config.ThemesDir()
	loaded, errs := styles.DiscoverCustomThemes(themesDir)
	for _, err := range errs {
		logger.Warn("custom theme skipped", "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Info("custom themes loaded", "dir", themesDir, "themes", loaded)
	}
	if err := styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme)); err != nil {
		return err
	}

	m := metrics.New()
	st := state.New(
		state.WithSeed(cfg.Todos.Seed),
		state.WithLogger(logger),
		state.WithMetrics(m),
	)
	calculator := calc.NewCalculator(
		calc.WithIterations(cfg.Calc.Iterations),
		calc.WithLogger(logger),
		calc.WithMetrics(m),
	)

	modelOpts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithMetrics(m),
		tui.WithShowStats(cfg.TUI.ShowStats),
		tui.WithInputWidth(cfg.TUI.InputWidth),
	}
	// Lay out the first frame before the initial WindowSizeMsg arrives
	if width, height, err := term.GetSize(os.Stdout.Fd()); err == nil {
		modelOpts = append(modelOpts, tui.WithSize(width, height))
	}
	model := tui.NewModel(st, calculator, modelOpts...)

	appOpts := []tui.AppOption{
		tui.WithAltScreen(cfg.TUI.AltScreen),
		tui.WithAppLogger(logger.WithComponent("app")),
	}
	if path := viper.ConfigFileUsed(); path != "" {
		watcher, err := config.NewWatcher(viper.GetViper(), path)
		if err != nil {
			logger.Warn("config hot reload disabled", "path", path, "error", err.Error())
		} else {
			appOpts = append(appOpts, tui.WithConfigWatcher(watcher))
		}
	}
	app := tui.New(model, appOpts...)

	return runWithMetrics(cmd.Context(), cfg.Metrics.Addr, m, logger, app.Run)
}

// runWithMetrics runs fn alongside the metrics server when addr is set.
// The server stops when fn returns; fn stops when the server fails.
func runWithMetrics(ctx context.Context, addr string, m *metrics.Metrics, logger *logging.Logger, fn func(context.Context) error) error {
	if addr == "" {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return m.Serve(ctx, addr, logger.WithComponent("metrics"))
	})
	p.Go(func(ctx context.Context) error {
		defer cancel()
		if err := fn(ctx); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})
	return p.Wait()
}

// newLogger builds the debug logger described by cfg. Disabled logging
// yields a no-op logger.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewRotatingLogger(cfg.ResolveDir(), logging.ParseLevel(cfg.Level), logging.RotationConfig{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	return logger, nil
}
