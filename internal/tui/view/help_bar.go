package view

import (
	"strings"

	"github.com/Iron-Ham/taskmemo/internal/tui/keymap"
	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
)

// HelpBarView handles rendering of help bars for different modes.
type HelpBarView struct{}

// NewHelpBarView creates a new HelpBarView instance.
func NewHelpBarView() *HelpBarView {
	return &HelpBarView{}
}

// Render renders a single-line summary of the bindings active in mode.
// Keys that trigger the same command are grouped: "[+/=] Increment".
func (v *HelpBarView) Render(km *keymap.Keymap, mode keymap.Mode, s *styles.Styles) string {
	if km == nil {
		return ""
	}
	if s == nil {
		s = styles.Active()
	}

	var parts []string
	seen := make(map[keymap.Command]bool)
	for _, binding := range km.GetModeBindings(mode) {
		if seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true

		var keys []string
		for _, b := range km.GetBindingsForCommand(binding.Command, mode) {
			keys = append(keys, b.String())
		}
		parts = append(parts, s.HelpKey.Render("["+strings.Join(keys, "/")+"]")+" "+binding.Description)
	}

	return s.HelpBar.Render(strings.Join(parts, "  "))
}

// RenderFull renders every binding in mode grouped by category, one
// category per line.
func (v *HelpBarView) RenderFull(km *keymap.Keymap, mode keymap.Mode, s *styles.Styles) string {
	if km == nil {
		return ""
	}
	if s == nil {
		s = styles.Active()
	}

	var lines []string
	for _, category := range km.GetCategories(mode) {
		line := s.SectionTitle.Render(category + ":")
		for _, b := range km.GetModeBindings(mode) {
			if b.Category != category {
				continue
			}
			line += " " + s.HelpKey.Render(b.String()) + " " + s.Muted.Render(b.Description)
		}
		lines = append(lines, line)
	}
	return s.HelpBar.Render(strings.Join(lines, "\n"))
}
