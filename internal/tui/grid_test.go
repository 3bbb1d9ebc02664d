package tui

import (
	"testing"
	"time"

	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/picker"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestModel(t *testing.T, pcfg picker.Config, results *[]picker.Result, opts ...ModelOption) *Model {
	t.Helper()
	cfg := config.Default()
	cfg.Picker.SelectWholeMonth = pcfg.SelectWholeMonth

	ctrl := picker.NewController(pcfg, func(r picker.Result) {
		if results != nil {
			*results = append(*results, r)
		}
	})
	return New(ctrl, cfg, opts...)
}

func boundedConfig() picker.Config {
	return picker.Config{
		Options: picker.Options{Mode: picker.ModeRange, AllowRangeModification: true},
		Bounds:  picker.NewBounds(date(2024, time.January, 1), date(2024, time.December, 31), 0, 0),
	}
}

func TestGridPosition(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil, WithNowDate(date(2024, time.June, 15)))

	// June 2024 is the sixth month of a window starting January 2024.
	pos := m.gridPosition(date(2024, time.June, 15))
	if pos.Section != 5 {
		t.Errorf("Section = %d, want 5", pos.Section)
	}
	// June 2024 starts on a Saturday: five leading cells before day 1
	// in a Monday-first grid, so the 15th sits at index 5+15-1.
	if pos.Cell != 19 {
		t.Errorf("Cell = %d, want 19", pos.Cell)
	}
}

func TestGridPositionDistinctAcrossMonths(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil)

	a := m.gridPosition(date(2024, time.June, 15))
	b := m.gridPosition(date(2024, time.July, 15))
	if a == b {
		t.Errorf("positions for different months must differ, both %+v", a)
	}
}

func TestClampToWindow(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "inside stays", in: date(2024, time.June, 15), want: date(2024, time.June, 15)},
		{name: "before clamps to start", in: date(2023, time.May, 1), want: date(2024, time.January, 1)},
		{name: "after clamps to end", in: date(2025, time.July, 4), want: date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.clampToWindow(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("clampToWindow(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoveCursorAcrossMonthEdge(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil, WithNowDate(date(2024, time.June, 30)))

	m.moveCursor(1)

	if !m.cursor.Equal(date(2024, time.July, 1)) {
		t.Errorf("cursor = %v, want 2024-07-01", m.cursor)
	}
	if m.month.Month() != time.July {
		t.Errorf("month = %v, want July (follows cursor)", m.month)
	}
}

func TestMoveCursorStopsAtWindowEdge(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil, WithNowDate(date(2024, time.December, 31)))

	m.moveCursor(7)

	if !m.cursor.Equal(date(2024, time.December, 31)) {
		t.Errorf("cursor = %v, want clamped to 2024-12-31", m.cursor)
	}
}

func TestShiftMonthKeepsDay(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil, WithNowDate(date(2024, time.June, 15)))

	m.shiftMonth(1)

	if !m.cursor.Equal(date(2024, time.July, 15)) {
		t.Errorf("cursor = %v, want 2024-07-15", m.cursor)
	}
}

func TestShiftMonthClampsDayNumber(t *testing.T) {
	m := newTestModel(t, boundedConfig(), nil, WithNowDate(date(2024, time.March, 31)))

	m.shiftMonth(1)

	if !m.cursor.Equal(date(2024, time.April, 30)) {
		t.Errorf("cursor = %v, want 2024-04-30", m.cursor)
	}
}
