package picker

import (
	"time"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// defaultWindowYears pads the visible grid this many years on each side
// of today when no explicit bound is configured.
const defaultWindowYears = 10

// Bounds limits what is selectable and how far the grid scrolls.
// Zero times mean unbounded; the month windows extend the visible grid
// beyond the bounds by whole months.
type Bounds struct {
	MinDate time.Time
	MaxDate time.Time

	MinMonthWindow int
	MaxMonthWindow int
}

// NewBounds normalizes min to start of day and max to end of day.
func NewBounds(minDate, maxDate time.Time, minWindow, maxWindow int) Bounds {
	b := Bounds{MinMonthWindow: minWindow, MaxMonthWindow: maxWindow}
	if !minDate.IsZero() {
		b.MinDate = dateutil.StartOfDay(minDate)
	}
	if !maxDate.IsZero() {
		b.MaxDate = dateutil.EndOfDay(maxDate)
	}
	return b
}

// OutOfRange reports whether v falls outside the configured bounds.
// A nil value is always in range.
func (b Bounds) OutOfRange(v *Value) bool {
	if v == nil {
		return false
	}
	from, to := v.Range()
	if !b.MinDate.IsZero() && from.Before(b.MinDate) {
		return true
	}
	if !b.MaxDate.IsZero() && to.After(b.MaxDate) {
		return true
	}
	return false
}

// DateOutOfRange reports whether a single date is outside the bounds.
// The grid widget uses this to render non-selectable cells.
func (b Bounds) DateOutOfRange(d time.Time) bool {
	day := dateutil.StartOfDay(d)
	if !b.MinDate.IsZero() && day.Before(dateutil.StartOfDay(b.MinDate)) {
		return true
	}
	if !b.MaxDate.IsZero() && day.After(b.MaxDate) {
		return true
	}
	return false
}

// VisibleWindow returns the scrollable extent of the grid: the months
// of the configured bounds padded by the month windows, or a fixed
// multi-decade window around now when a bound is missing.
func (b Bounds) VisibleWindow(now time.Time) (start, end time.Time) {
	if b.MinDate.IsZero() {
		start = dateutil.StartOfMonth(now.AddDate(-defaultWindowYears, 0, 0))
	} else {
		start = dateutil.StartOfMonth(b.MinDate.AddDate(0, -b.MinMonthWindow, 0))
	}
	if b.MaxDate.IsZero() {
		end = dateutil.EndOfMonth(now.AddDate(defaultWindowYears, 0, 0))
	} else {
		end = dateutil.EndOfMonth(b.MaxDate.AddDate(0, b.MaxMonthWindow, 0))
	}
	return start, end
}
