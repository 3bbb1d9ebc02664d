package picker

import (
	"testing"
	"time"
)

func TestShortcutMatches(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC) // a Wednesday

	today := Shortcut{Label: "Today", Make: func(n time.Time) *Value {
		return DateRange(n, n)
	}}

	if !today.Matches(DateRange(day(2024, time.June, 12), day(2024, time.June, 12)), now) {
		t.Error("today shortcut should match a single-day range on today")
	}
	if today.Matches(DateRange(day(2024, time.June, 11), day(2024, time.June, 12)), now) {
		t.Error("today shortcut should not match a two-day range")
	}
	if today.Matches(nil, now) {
		t.Error("shortcut should not match an empty selection")
	}
}

func TestDefaultShortcutsRange(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC) // Wednesday

	shortcuts := DefaultShortcuts(ModeRange)
	byLabel := make(map[string]Shortcut, len(shortcuts))
	for _, s := range shortcuts {
		byLabel[s.Label] = s
	}

	tests := []struct {
		label    string
		wantFrom time.Time
		wantTo   time.Time
	}{
		{label: "Today", wantFrom: day(2024, time.June, 12), wantTo: day(2024, time.June, 12)},
		{label: "This week", wantFrom: day(2024, time.June, 10), wantTo: day(2024, time.June, 16)},
		{label: "Last week", wantFrom: day(2024, time.June, 3), wantTo: day(2024, time.June, 9)},
		{label: "Last 7 days", wantFrom: day(2024, time.June, 6), wantTo: day(2024, time.June, 12)},
		{label: "This month", wantFrom: day(2024, time.June, 1), wantTo: day(2024, time.June, 30)},
		{label: "Last 30 days", wantFrom: day(2024, time.May, 14), wantTo: day(2024, time.June, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			s, ok := byLabel[tt.label]
			if !ok {
				t.Fatalf("shortcut %q missing", tt.label)
			}
			got := s.Make(now)
			want := DateRange(tt.wantFrom, tt.wantTo)
			if !got.SameAs(want) {
				t.Errorf("%s = %v, want %v", tt.label, got, want)
			}
		})
	}
}

func TestDefaultShortcutsSingle(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC)

	shortcuts := DefaultShortcuts(ModeSingle)
	for _, s := range shortcuts {
		v := s.Make(now)
		if v == nil || v.Mode() != ModeSingle {
			t.Errorf("%s produced %v, want a single-date value", s.Label, v)
		}
	}
}
