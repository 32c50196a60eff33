package view

import (
	"strings"

	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// AlertView renders a blocking message box.
type AlertView struct{}

// NewAlertView creates a new AlertView instance.
func NewAlertView() *AlertView {
	return &AlertView{}
}

// Render renders message in a modal box centered in a width x height area.
// When either dimension is unknown (zero) the box is returned unplaced.
func (v *AlertView) Render(message string, width, height int, s *styles.Styles) string {
	if s == nil {
		s = styles.Active()
	}

	var b strings.Builder
	b.WriteString(s.AlertTitle.Render("Alert"))
	b.WriteString("\n\n")
	b.WriteString(s.AlertText.Render(message))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render("[Enter] OK"))

	box := s.Alert.Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
