package picker

import (
	"time"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// Options are the flags that shape how taps turn into values.
type Options struct {
	Mode Mode

	// AllowClear lets a tap on the current selection clear it.
	AllowClear bool

	// AllowRangeModification lets taps extend or shrink an existing
	// multi-day range. When false, tapping inside or around such a
	// range starts a fresh single-day range at the tapped date.
	AllowRangeModification bool
}

// NextValue computes the selection that results from tapping a date.
// It is a pure function: current is never mutated, and a nil result
// means the selection was cleared.
func NextValue(current *Value, tapped time.Time, opts Options) *Value {
	if opts.Mode == ModeSingle {
		return nextSingle(current, tapped, opts)
	}
	return nextRange(current, tapped, opts)
}

func nextSingle(current *Value, tapped time.Time, opts Options) *Value {
	if opts.AllowClear && current != nil && dateutil.SameDay(current.Date(), tapped) {
		return nil
	}
	return SingleDate(tapped)
}

func nextRange(current *Value, tapped time.Time, opts Options) *Value {
	if current == nil {
		return DateRange(tapped, tapped)
	}

	from, to := current.Range()

	// Tapping a fully selected single day clears it.
	if opts.AllowClear && dateutil.SameDay(tapped, from) && dateutil.SameDay(tapped, to) {
		return nil
	}

	// With modification disabled, any tap on a multi-day range abandons
	// it and starts over at the tapped date.
	if !opts.AllowRangeModification && !current.SingleDay() {
		return DateRange(tapped, tapped)
	}

	// Endpoint rules resolve ambiguous taps deterministically: the
	// from-endpoint rule is checked first, so a tap on a single-day
	// range re-anchors its end rather than its start.
	switch {
	case dateutil.SameDay(tapped, from):
		return DateRange(from, tapped)
	case dateutil.SameDay(tapped, to):
		return DateRange(tapped, to)
	case tapped.Before(from):
		return DateRange(tapped, to)
	default:
		return DateRange(from, tapped)
	}
}
