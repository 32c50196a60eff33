package view

import (
	"fmt"

	"github.com/Iron-Ham/taskmemo/internal/tui/styles"
)

// StatsState holds the counters shown by the stats line.
type StatsState struct {
	RootRenders     int
	ListRenders     int
	CalculationRuns int
	Todos           int
}

// StatsView renders the render/memoization counters.
type StatsView struct{}

// NewStatsView creates a new StatsView instance.
func NewStatsView() *StatsView {
	return &StatsView{}
}

// Render renders state as a single muted line.
func (v *StatsView) Render(state *StatsState, s *styles.Styles) string {
	if state == nil {
		return ""
	}
	if s == nil {
		s = styles.Active()
	}
	return s.Muted.Render(fmt.Sprintf(
		"renders: root %d, list %d  calculations: %d  todos: %d",
		state.RootRenders, state.ListRenders, state.CalculationRuns, state.Todos,
	))
}
