package tui

import "github.com/charmbracelet/lipgloss"

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	Cell         lipgloss.Style
	CellCursor   lipgloss.Style
	CellSelected lipgloss.Style
	CellRange    lipgloss.Style
	CellToday    lipgloss.Style
	CellDisabled lipgloss.Style
	CellBlank    lipgloss.Style
	Weekday      lipgloss.Style
}

// NewStyleCache precomputes all width-dependent styles for the grid.
func NewStyleCache(styles *Styles, width int) StyleCache {
	return StyleCache{
		Cell:         styles.CellStyle.Width(width).Align(lipgloss.Right),
		CellCursor:   styles.CellCursorStyle.Width(width).Align(lipgloss.Right),
		CellSelected: styles.CellSelectedStyle.Width(width).Align(lipgloss.Right),
		CellRange:    styles.CellRangeStyle.Width(width).Align(lipgloss.Right),
		CellToday:    styles.CellTodayStyle.Width(width).Align(lipgloss.Right),
		CellDisabled: styles.CellDisabledStyle.Width(width).Align(lipgloss.Right),
		CellBlank:    lipgloss.NewStyle().Width(width),
		Weekday:      styles.WeekdayStyle.Width(width).Align(lipgloss.Right),
	}
}
