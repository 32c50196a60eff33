// Package util provides text helpers shared by the views.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// FitWidth truncates each line of s to maxWidth terminal columns, ending cut
// lines with Ellipsis. Escape sequences and wide characters are measured the
// way the terminal draws them. A non-positive maxWidth leaves s unchanged.
func FitWidth(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return Ellipsis
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > maxWidth {
			lines[i] = ansi.Truncate(line, maxWidth, Ellipsis)
		}
	}
	return strings.Join(lines, "\n")
}
