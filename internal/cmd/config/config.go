// Package config provides CLI commands for managing taskmemo configuration.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	appconfig "github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Wrapper functions for exec to allow testing
var execLookPath = exec.LookPath
var execCommand = exec.Command

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify taskmemo configuration",
	Long: `View or modify taskmemo configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  taskmemo config set tui.theme nord
  taskmemo config set calc.iterations 1000000
  taskmemo config set metrics.addr 127.0.0.1:9464

Valid keys:
  tui.theme          - Color theme (default, dracula, nord, monokai or a custom theme)
  tui.show_stats     - Show render counters (true/false)
  tui.alt_screen     - Use the alternate screen (true/false)
  tui.input_width    - Task input width in columns
  calc.iterations    - Loop iterations per calculation
  logging.enabled    - Write a debug log (true/false)
  logging.level      - Minimum log level (debug, info, warn, error)
  logging.dir        - Log directory
  logging.max_size_mb - Rotate debug.log past this size (0 disables)
  logging.max_backups - Rotated log files to keep
  metrics.addr       - Prometheus listen address (empty to disable)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/taskmemo/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config file in your editor",
	Long: `Open the config file in your preferred editor.

Uses $EDITOR environment variable, or falls back to common editors (vim, nano, vi).
If no config file exists, creates one with default values first.
A running taskmemo picks up theme and stats changes on save.`,
	RunE: runConfigEdit,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  taskmemo config reset            # Reset all to defaults
  taskmemo config reset tui.theme  # Reset only tui.theme`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
// This is the main entry point for integrating the config subpackage with
// the root command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// keyKind describes how a settable key's value is parsed.
type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
)

// settableKeys lists the keys accepted by set and reset.
var settableKeys = map[string]keyKind{
	"tui.theme":           kindString,
	"tui.show_stats":      kindBool,
	"tui.alt_screen":      kindBool,
	"tui.input_width":     kindInt,
	"calc.iterations":     kindInt,
	"logging.enabled":     kindBool,
	"logging.level":       kindString,
	"logging.dir":         kindString,
	"logging.max_size_mb": kindInt,
	"logging.max_backups": kindInt,
	"metrics.addr":        kindString,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "# Config file: (none - using defaults)\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// parseValue converts a raw CLI value for key into its typed form.
func parseValue(key, value string) (any, error) {
	kind, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'taskmemo config set --help' to see valid keys", key)
	}

	switch kind {
	case kindBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case kindInt:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]

	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	// Validate the whole configuration with the new value applied
	previous := viper.Get(key)
	viper.Set(key, typedValue)
	if _, err := appconfig.Load(); err != nil {
		viper.Set(key, previous)
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// writeConfig writes the current viper settings to the user's config file.
func writeConfig() (string, error) {
	configDir := appconfig.ConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

// defaultConfigContent is the commented file written by init.
const defaultConfigContent = `# taskmemo configuration

# TUI (terminal user interface) settings
tui:
  # Color theme: default, dracula, nord, monokai, or a custom theme
  # installed with 'taskmemo config theme import'
  # Changing it while taskmemo runs takes effect immediately
  theme: default
  # Show render and calculation counters under the help bar
  show_stats: false
  # Run in the terminal's alternate screen
  alt_screen: true
  # Width of the task input in columns (10-200)
  input_width: 30

# Initial todo entries
todos:
  seed:
    - Learn React
    - Build a project

# Expensive calculation settings
calc:
  # Loop iterations per calculation (the result is count * iterations)
  iterations: 100000000

# Logging settings
logging:
  enabled: true
  # Minimum level: debug, info, warn, error
  level: info
  # Directory for debug.log (default: $XDG_STATE_HOME/taskmemo)
  dir: ""
  # Rotate debug.log past this many megabytes (0 disables rotation)
  max_size_mb: 10
  # Number of rotated log files to keep
  max_backups: 3

# Prometheus metrics
metrics:
  # Listen address for /metrics, e.g. 127.0.0.1:9464 (empty disables)
  addr: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'taskmemo config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize taskmemo's behavior.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/taskmemo/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: TASKMEMO_* (e.g., TASKMEMO_TUI_THEME)")
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file exists, if not create it
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "Config file doesn't exist, creating with defaults...")
		if err := runConfigInit(cmd, args); err != nil {
			return err
		}
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found. Set $EDITOR environment variable")
	}

	editorCmd := execCommand(editor, configFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file saved: %s\n", configFile)
	return nil
}

// findEditor returns $EDITOR, $VISUAL, or the first common editor on PATH.
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	for _, e := range []string{"vim", "nano", "vi"} {
		if _, err := execLookPath(e); err == nil {
			return e
		}
	}
	return ""
}

// defaultValues maps each settable key to its default value.
func defaultValues() map[string]any {
	defaults := appconfig.Default()
	return map[string]any{
		"tui.theme":           defaults.TUI.Theme,
		"tui.show_stats":      defaults.TUI.ShowStats,
		"tui.alt_screen":      defaults.TUI.AltScreen,
		"tui.input_width":     defaults.TUI.InputWidth,
		"calc.iterations":     defaults.Calc.Iterations,
		"logging.enabled":     defaults.Logging.Enabled,
		"logging.level":       defaults.Logging.Level,
		"logging.dir":         defaults.Logging.Dir,
		"logging.max_size_mb": defaults.Logging.MaxSizeMB,
		"logging.max_backups": defaults.Logging.MaxBackups,
		"metrics.addr":        defaults.Metrics.Addr,
	}
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	values := defaultValues()

	if len(args) == 0 {
		for key, value := range values {
			viper.Set(key, value)
		}
		viper.Set("todos.seed", appconfig.Default().Todos.Seed)
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		value, ok := values[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nValid keys: %s", key, strings.Join(SettableKeys(), ", "))
		}
		viper.Set(key, value)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, value)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

// SettableKeys returns the keys accepted by 'config set', sorted.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for key := range settableKeys {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
