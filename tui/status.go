package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// planSummary describes the working plan for the status bar.
// "warehouse 6x6 door(12,9)", "shrine 3x3 no door", or "no plan".
func (m Model) planSummary() string {
	plan := m.console.Plan()
	if plan == nil {
		return "no plan"
	}

	shape := fmt.Sprintf("%d tiles", len(plan.Area.Tiles))
	if len(plan.Area.Tiles) == 0 {
		shape = fmt.Sprintf("%dx%d", plan.Area.Width, plan.Area.Height)
	}

	door := "no door"
	if plan.DoorTile != nil {
		door = fmt.Sprintf("door(%d,%d)", plan.DoorTile.X, plan.DoorTile.Y)
	}

	return fmt.Sprintf("%s %s %s", plan.RoomType, shape, door)
}

// renderStatusBar produces a full-width inverted status line showing
// the catalog title, the working plan, and world construction counts.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | %s", m.defs.Catalog.Title, m.planSummary())
	right := fmt.Sprintf("C:%d ", len(m.grid.Records()))

	// Show the grid size too if it fits.
	candidate := fmt.Sprintf("%dx%d | C:%d ", m.grid.Width, m.grid.Height, len(m.grid.Records()))
	if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
		right = candidate
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
