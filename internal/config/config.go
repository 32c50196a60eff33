package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete taskmemo configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Todos   TodosConfig   `mapstructure:"todos" yaml:"todos"`
	Calc    CalcConfig    `mapstructure:"calc" yaml:"calc"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "dracula", "nord", "monokai"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ShowStats shows render and calculation counters under the help bar (default: false)
	ShowStats bool `mapstructure:"show_stats" yaml:"show_stats"`
	// AltScreen runs the TUI in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	// InputWidth is the width of the task input field in columns (default: 30)
	InputWidth int `mapstructure:"input_width" yaml:"input_width"`
}

// TodosConfig controls the todo list
type TodosConfig struct {
	// Seed is the list of todos shown at startup
	// (default: ["Learn React", "Build a project"])
	Seed []string `mapstructure:"seed" yaml:"seed"`
}

// CalcConfig controls the memoized calculation
type CalcConfig struct {
	// Iterations is the number of loop iterations per calculation (default: 100000000)
	Iterations int `mapstructure:"iterations" yaml:"iterations"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory debug.log is written to.
	// If empty, defaults to $XDG_STATE_HOME/taskmemo or ~/.local/state/taskmemo.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the size of debug.log in megabytes past which it is rotated.
	// 0 disables rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated log files kept (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// MetricsConfig controls Prometheus metrics exposition
type MetricsConfig struct {
	// Addr is the listen address for /metrics, e.g. "127.0.0.1:9464".
	// Empty disables the listener (default: "").
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// ResolveDir returns the resolved log directory.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return StateDir()
	}
	return expandHome(l.Dir)
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:      "default",
			ShowStats:  false,
			AltScreen:  true,
			InputWidth: 30,
		},
		Todos: TodosConfig{
			Seed: []string{"Learn React", "Build a project"},
		},
		Calc: CalcConfig{
			Iterations: 100_000_000,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "", // Empty means use StateDir()
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Metrics: MetricsConfig{
			Addr: "", // Disabled by default
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	SetDefaultsOn(viper.GetViper())
}

// SetDefaultsOn registers default values with the given viper instance
func SetDefaultsOn(v *viper.Viper) {
	defaults := Default()

	// TUI defaults
	v.SetDefault("tui.theme", defaults.TUI.Theme)
	v.SetDefault("tui.show_stats", defaults.TUI.ShowStats)
	v.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	v.SetDefault("tui.input_width", defaults.TUI.InputWidth)

	// Todo defaults
	v.SetDefault("todos.seed", defaults.Todos.Seed)

	// Calc defaults
	v.SetDefault("calc.iterations", defaults.Calc.Iterations)

	// Logging defaults
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	// Metrics defaults
	v.SetDefault("metrics.addr", defaults.Metrics.Addr)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from the given viper instance and validates it
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskmemo")
	}
	// Fall back to ~/.config/taskmemo
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskmemo"
	}
	return filepath.Join(home, ".config", "taskmemo")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory holding custom theme files
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}

// StateDir returns the default directory for logs
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskmemo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".taskmemo", "state")
	}
	return filepath.Join(home, ".local", "state", "taskmemo")
}

// ValidThemes returns the list of built-in theme names
func ValidThemes() []string {
	return []string{"default", "dracula", "nord", "monokai"}
}

// customThemeExists reports whether ThemesDir holds a file for name.
func customThemeExists(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return false
	}
	info, err := os.Stat(filepath.Join(ThemesDir(), name+".yaml"))
	return err == nil && !info.IsDir()
}

func expandHome(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
