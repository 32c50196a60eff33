package styles

import (
	"fmt"

	"github.com/Iron-Ham/taskmemo/internal/errors"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the lipgloss styles built from a color palette.
// Styles are regenerated when the theme changes.
type Styles struct {
	Name    ThemeName
	Palette *ColorPalette

	// Base styles
	Title        lipgloss.Style
	SectionTitle lipgloss.Style
	Section      lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style

	// Buttons
	IncrementButton lipgloss.Style
	AddButton       lipgloss.Style
	SubmitButton    lipgloss.Style

	// Todo list
	TodoItem   lipgloss.Style
	TodoBullet lipgloss.Style

	// Task input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Alert modal
	Alert      lipgloss.Style
	AlertTitle lipgloss.Style
	AlertText  lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(name ThemeName, p *ColorPalette) *Styles {
	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.ButtonText).
		Padding(0, 2)

	return &Styles{
		Name:    name,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		Section: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Border).
			PaddingTop(1),

		Text:  lipgloss.NewStyle().Foreground(p.Text),
		Muted: lipgloss.NewStyle().Foreground(p.Muted),

		IncrementButton: button.Background(p.Increment),
		AddButton:       button.Background(p.Add),
		SubmitButton:    button.Background(p.Submit),

		TodoItem:   lipgloss.NewStyle().Foreground(p.Text),
		TodoBullet: lipgloss.NewStyle().Foreground(p.Muted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Error).
			Background(p.Surface).
			Padding(1, 3),
		AlertTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),
		AlertText: lipgloss.NewStyle().
			Foreground(p.Text),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
	}
}

// Focused marks a button style as the focused control.
func Focused(s lipgloss.Style) lipgloss.Style {
	return s.Underline(true).Reverse(true)
}

// activeTheme holds the currently active styles.
var activeTheme = NewStyles(ThemeDefault, DefaultPalette())

// generation increases every time the active theme changes, so cached
// renders can tell that their styles are stale.
var generation uint64

// SetActiveTheme updates the active theme to the specified theme name.
//
// Note: This function is not thread-safe. It is designed to be called only
// from the Bubble Tea event loop, which runs on a single goroutine.
func SetActiveTheme(name ThemeName) error {
	if !IsValidTheme(string(name)) {
		return errors.NewConfigError(fmt.Sprintf("unknown theme %q", name), errors.ErrThemeNotFound).
			WithKey("tui.theme")
	}
	activeTheme = NewStyles(name, GetPalette(name))
	generation++
	return nil
}

// Active returns the currently active styles.
func Active() *Styles {
	return activeTheme
}

// Generation returns a counter that changes whenever the active theme changes.
func Generation() uint64 {
	return generation
}
