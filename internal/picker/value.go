// Package picker implements the selection core of the date picker:
// the selection value, the tap policy, bounds checking, the cell
// view-model cache, and the controller that ties them together.
package picker

import (
	"fmt"
	"time"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// Mode selects which value variant the picker produces.
type Mode int

const (
	ModeSingle Mode = iota
	ModeRange
)

// String returns the mode name as used in config files.
func (m Mode) String() string {
	if m == ModeRange {
		return "range"
	}
	return "single"
}

// Value is the picker's selection: either a single date or a date range,
// fixed by the mode it was constructed for. A nil *Value means no selection.
type Value struct {
	mode Mode

	// Single variant.
	date time.Time

	// Range variant. Invariant: from <= to, from is a start-of-day
	// instant and to an end-of-day instant.
	from time.Time
	to   time.Time
}

// SingleDate builds a single-date value, normalized to start of day.
func SingleDate(d time.Time) *Value {
	return &Value{mode: ModeSingle, date: dateutil.StartOfDay(d)}
}

// DateRange builds a range value. Endpoints are normalized to
// start-of-day / end-of-day and swapped if given out of order.
func DateRange(from, to time.Time) *Value {
	if to.Before(from) {
		from, to = to, from
	}
	return &Value{
		mode: ModeRange,
		from: dateutil.StartOfDay(from),
		to:   dateutil.EndOfDay(to),
	}
}

// Mode returns which variant this value carries.
func (v *Value) Mode() Mode {
	return v.mode
}

// Date returns the selected date of a single value.
// For a range value it returns the range start.
func (v *Value) Date() time.Time {
	if v.mode == ModeRange {
		return v.from
	}
	return v.date
}

// Range returns the endpoints of a range value.
// For a single value both endpoints cover the selected day.
func (v *Value) Range() (from, to time.Time) {
	if v.mode == ModeSingle {
		return v.date, dateutil.EndOfDay(v.date)
	}
	return v.from, v.to
}

// Contains reports whether d falls on a day covered by the value.
func (v *Value) Contains(d time.Time) bool {
	if v == nil {
		return false
	}
	if v.mode == ModeSingle {
		return dateutil.SameDay(v.date, d)
	}
	day := dateutil.StartOfDay(d)
	return !day.Before(v.from) && !day.After(v.to)
}

// SingleDay reports whether the value covers exactly one day.
func (v *Value) SingleDay() bool {
	if v == nil {
		return false
	}
	if v.mode == ModeSingle {
		return true
	}
	return dateutil.SameDay(v.from, v.to)
}

// SameAs reports whether two values select the same days. Endpoints are
// compared at day granularity, so differing clock times do not matter.
func (v *Value) SameAs(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.mode != other.mode {
		return false
	}
	vf, vt := v.Range()
	of, ot := other.Range()
	return dateutil.SameDay(vf, of) && dateutil.SameDay(vt, ot)
}

// String renders the value for status lines and logs.
func (v *Value) String() string {
	if v == nil {
		return "none"
	}
	if v.mode == ModeSingle {
		return v.date.Format("2006-01-02")
	}
	if v.SingleDay() {
		return v.from.Format("2006-01-02")
	}
	return fmt.Sprintf("%s .. %s", v.from.Format("2006-01-02"), v.to.Format("2006-01-02"))
}
