package tui

import (
	"time"

	"github.com/javiermolinar/fecha/internal/dateutil"
	"github.com/javiermolinar/fecha/internal/picker"
)

// gridPosition maps a date to its cell-cache position: the month section
// within the visible window and the cell index inside that month's grid.
func (m *Model) gridPosition(d time.Time) picker.Position {
	return picker.Position{
		Section: dateutil.MonthsBetween(m.windowStart, d),
		Cell:    dateutil.LeadingGap(d, m.firstWeekday) + d.Day() - 1,
	}
}

// clampToWindow pins a date inside the scrollable window.
func (m *Model) clampToWindow(d time.Time) time.Time {
	day := dateutil.StartOfDay(d)
	if day.Before(m.windowStart) {
		return m.windowStart
	}
	if day.After(m.windowEnd) {
		return dateutil.StartOfDay(m.windowEnd)
	}
	return day
}

// moveCursor shifts the cursor by days, following it across month edges.
func (m *Model) moveCursor(days int) {
	m.gotoDate(m.cursor.AddDate(0, 0, days))
}

// shiftMonth pages the displayed month, keeping the cursor on the same
// day number where possible.
func (m *Model) shiftMonth(months int) {
	target := m.month.AddDate(0, months, 0)
	day := m.cursor.Day()
	if max := dateutil.DaysInMonth(target); day > max {
		day = max
	}
	m.gotoDate(time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, target.Location()))
}

// gotoDate moves the cursor to d, clamped to the window, and scrolls the
// displayed month along with it.
func (m *Model) gotoDate(d time.Time) {
	m.cursor = m.clampToWindow(d)
	m.month = dateutil.StartOfMonth(m.cursor)
}

func (m *Model) nowDate() time.Time {
	return dateutil.StartOfDay(time.Now())
}
