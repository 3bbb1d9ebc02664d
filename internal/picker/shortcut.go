package picker

import (
	"time"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// Shortcut is a named preset that produces a value without grid
// interaction, relative to the moment it is applied.
type Shortcut struct {
	Label string
	Make  func(now time.Time) *Value
}

// Matches reports whether applying the shortcut at now would reproduce
// the given value. The shortcut bar uses this for highlighting.
func (s Shortcut) Matches(v *Value, now time.Time) bool {
	return s.Make(now).SameAs(v)
}

// DefaultShortcuts returns the presets for the given mode.
func DefaultShortcuts(mode Mode) []Shortcut {
	if mode == ModeSingle {
		return []Shortcut{
			{Label: "Today", Make: func(now time.Time) *Value {
				return SingleDate(now)
			}},
			{Label: "Yesterday", Make: func(now time.Time) *Value {
				return SingleDate(now.AddDate(0, 0, -1))
			}},
			{Label: "Tomorrow", Make: func(now time.Time) *Value {
				return SingleDate(now.AddDate(0, 0, 1))
			}},
		}
	}
	return []Shortcut{
		{Label: "Today", Make: func(now time.Time) *Value {
			return DateRange(now, now)
		}},
		{Label: "This week", Make: func(now time.Time) *Value {
			monday, sunday := dateutil.WeekRange(now)
			return DateRange(monday, sunday)
		}},
		{Label: "Last week", Make: func(now time.Time) *Value {
			monday, sunday := dateutil.WeekRange(now.AddDate(0, 0, -7))
			return DateRange(monday, sunday)
		}},
		{Label: "Last 7 days", Make: func(now time.Time) *Value {
			return DateRange(now.AddDate(0, 0, -6), now)
		}},
		{Label: "This month", Make: func(now time.Time) *Value {
			return DateRange(dateutil.StartOfMonth(now), dateutil.EndOfMonth(now))
		}},
		{Label: "Last 30 days", Make: func(now time.Time) *Value {
			return DateRange(now.AddDate(0, 0, -29), now)
		}},
	}
}
