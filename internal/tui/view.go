package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// View renders the month grid, shortcut bar and footer.
func (m *Model) View() string {
	var b strings.Builder

	gridWidth := 7 * m.cellWidth

	header := m.styles.MonthHeaderStyle.
		Width(gridWidth).
		Align(lipgloss.Center).
		Render(m.month.Format("January 2006"))
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.renderCache.WeekdayHeader)
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderCache.Separator)
	b.WriteString("\n")

	if bar := m.renderShortcutBar(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.ValueStyle.Render("Selected: " + m.ctrl.Value().String()))
	b.WriteString("\n")

	if m.mode == ModePrompt {
		b.WriteString(m.styles.PromptFocusedStyle.Render(m.prompt.View()))
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString(m.styles.StatusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.HelpStyle.Render(m.renderHelp()))

	return m.styles.AppStyle.Render(b.String())
}

// renderGrid draws the displayed month, one styled cell per day.
func (m *Model) renderGrid() string {
	gap := dateutil.LeadingGap(m.month, m.firstWeekday)
	days := dateutil.DaysInMonth(m.month)

	var b strings.Builder
	col := 0
	for i := 0; i < gap; i++ {
		b.WriteString(m.styleCache.CellBlank.Render(""))
		col++
	}

	for day := 1; day <= days; day++ {
		date := time.Date(m.month.Year(), m.month.Month(), day, 0, 0, 0, 0, m.month.Location())
		b.WriteString(m.renderCell(date))
		col++
		if col == 7 && day < days {
			b.WriteString("\n")
			col = 0
		}
	}

	// Pad the final row so the separator lines up.
	for col < 7 && col != 0 {
		b.WriteString(m.styleCache.CellBlank.Render(""))
		col++
	}

	return b.String()
}

func (m *Model) renderCell(date time.Time) string {
	vm := m.ctrl.CellViewModel(m.gridPosition(date), date)

	style := m.styleCache.Cell
	switch {
	case dateutil.SameDay(date, m.cursor):
		style = m.styleCache.CellCursor
	case vm.Selected && m.isRangeEdge(date):
		style = m.styleCache.CellSelected
	case vm.Selected:
		style = m.styleCache.CellRange
	case vm.Today:
		style = m.styleCache.CellToday
	case vm.Disabled:
		style = m.styleCache.CellDisabled
	}

	label := vm.Label
	if vm.Today && !vm.Selected && !dateutil.SameDay(date, m.cursor) {
		label = "•" + label
	}
	return style.Render(label + " ")
}

// isRangeEdge reports whether date is an endpoint of the selection.
func (m *Model) isRangeEdge(date time.Time) bool {
	v := m.ctrl.Value()
	if v == nil {
		return false
	}
	from, to := v.Range()
	return dateutil.SameDay(date, from) || dateutil.SameDay(date, to)
}

func (m *Model) renderShortcutBar() string {
	shortcuts := m.ctrl.Shortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(shortcuts))
	for i, s := range shortcuts {
		label := fmt.Sprintf("%d %s", i+1, s.Label)
		style := m.styles.ShortcutStyle
		if i == m.highlighted {
			style = m.styles.ShortcutActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderHelp() string {
	parts := []string{
		"←↓↑→ move",
		"[/] month",
		"enter select",
	}
	if m.monthSelectEnabled() {
		parts = append(parts, "m month")
	}
	parts = append(parts,
		"g go to",
		"c clear",
		"y copy",
		"d done",
		"q cancel",
	)
	return strings.Join(parts, " · ")
}
