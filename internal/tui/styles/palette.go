package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Green, blue and orange buttons
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeDracula),
		string(ThemeNord),
		string(ThemeMonokai),
	}
}

// IsValidTheme checks if a theme name is a built-in or registered custom theme.
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	_, ok := customPalette(ThemeName(name))
	return ok
}

// AllThemes returns the built-in theme names followed by the custom ones.
func AllThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (title, focused control outline)
	Primary lipgloss.Color
	// Increment button background
	Increment lipgloss.Color
	// Add Todo button background
	Add lipgloss.Color
	// Submit button background
	Submit lipgloss.Color
	// Button label color
	ButtonText lipgloss.Color
	// Error color (alert border and title)
	Error lipgloss.Color
	// Muted color (de-emphasized text, placeholders)
	Muted lipgloss.Color
	// Surface color (alert background)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (section separators, input border)
	Border lipgloss.Color
}

// DefaultPalette returns the green, blue and orange button palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:    lipgloss.Color("#27AEDB"), // Increment blue
		Increment:  lipgloss.Color("#27AEDB"),
		Add:        lipgloss.Color("#008000"), // CSS green
		Submit:     lipgloss.Color("#FF5722"), // Deep orange
		ButtonText: lipgloss.Color("#FFFFFF"),
		Error:      lipgloss.Color("#F87171"), // Red (red-400)
		Muted:      lipgloss.Color("#9CA3AF"), // Gray
		Surface:    lipgloss.Color("#1F2937"), // Dark surface
		Text:       lipgloss.Color("#F9FAFB"), // Light text
		Border:     lipgloss.Color("#CCCCCC"), // Light gray rule
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:    lipgloss.Color("#BD93F9"), // Dracula purple
		Increment:  lipgloss.Color("#8BE9FD"), // Dracula cyan
		Add:        lipgloss.Color("#50FA7B"), // Dracula green
		Submit:     lipgloss.Color("#FFB86C"), // Dracula orange
		ButtonText: lipgloss.Color("#282A36"),
		Error:      lipgloss.Color("#FF5555"), // Dracula red
		Muted:      lipgloss.Color("#6272A4"), // Dracula comment
		Surface:    lipgloss.Color("#282A36"), // Dracula background
		Text:       lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:     lipgloss.Color("#44475A"), // Dracula selection
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:    lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Increment:  lipgloss.Color("#81A1C1"), // Nord frost blue
		Add:        lipgloss.Color("#A3BE8C"), // Nord aurora green
		Submit:     lipgloss.Color("#D08770"), // Nord aurora orange
		ButtonText: lipgloss.Color("#2E3440"),
		Error:      lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:      lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:    lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:       lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:     lipgloss.Color("#3B4252"), // Nord polar night 1
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:    lipgloss.Color("#F92672"), // Monokai pink/magenta
		Increment:  lipgloss.Color("#66D9EF"), // Monokai blue
		Add:        lipgloss.Color("#A6E22E"), // Monokai green
		Submit:     lipgloss.Color("#FD971F"), // Monokai orange
		ButtonText: lipgloss.Color("#272822"),
		Error:      lipgloss.Color("#F92672"), // Monokai pink (same as primary)
		Muted:      lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:    lipgloss.Color("#272822"), // Monokai background
		Text:       lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:     lipgloss.Color("#49483E"), // Monokai selection
	}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDefault:
		return DefaultPalette()
	}
	if p, ok := customPalette(name); ok {
		return p
	}
	return DefaultPalette()
}
