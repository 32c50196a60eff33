package config

import (
	"fmt"
	"net"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "calc.iterations")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateCalc()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateMetrics()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) && !customThemeExists(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s, or a theme file in %s", strings.Join(ValidThemes(), ", "), ThemesDir()),
		})
	}

	// 0 means use default
	const minInputWidth = 10
	const maxInputWidth = 200
	if c.TUI.InputWidth != 0 {
		if c.TUI.InputWidth < minInputWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.input_width",
				Value:   c.TUI.InputWidth,
				Message: fmt.Sprintf("must be at least %d columns", minInputWidth),
			})
		}
		if c.TUI.InputWidth > maxInputWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.input_width",
				Value:   c.TUI.InputWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", maxInputWidth),
			})
		}
	}

	return errors
}

// validateCalc validates the CalcConfig
func (c *Config) validateCalc() []ValidationError {
	var errors []ValidationError

	if c.Calc.Iterations < 1 {
		errors = append(errors, ValidationError{
			Field:   "calc.iterations",
			Value:   c.Calc.Iterations,
			Message: "must be at least 1",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative (0 disables rotation)",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateMetrics validates the MetricsConfig
func (c *Config) validateMetrics() []ValidationError {
	var errors []ValidationError

	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			errors = append(errors, ValidationError{
				Field:   "metrics.addr",
				Value:   c.Metrics.Addr,
				Message: "must be a host:port listen address",
			})
		}
	}

	return errors
}
