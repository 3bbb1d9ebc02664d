package tui

import (
	"strings"
	"time"
)

// RenderCache stores pre-rendered strings for hot view paths.
type RenderCache struct {
	WeekdayHeader string
	Separator     string
}

// weekdayAbbrevs returns the two-letter column labels starting at first.
func weekdayAbbrevs(first time.Weekday) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(first) + i) % 7)
		labels[i] = day.String()[:2]
	}
	return labels
}

func (m *Model) refreshRenderCache() {
	rc := RenderCache{}

	var header strings.Builder
	for _, label := range weekdayAbbrevs(m.firstWeekday) {
		header.WriteString(m.styleCache.Weekday.Render(label))
	}
	rc.WeekdayHeader = header.String()

	rc.Separator = m.styles.HelpStyle.Render(strings.Repeat("─", 7*m.cellWidth))

	m.renderCache = rc
}
