package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/fecha/internal/picker"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecordAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v := picker.DateRange(date(2024, time.January, 1), date(2024, time.January, 15))
	if err := s.Record(ctx, v); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Mode != "range" {
		t.Errorf("mode = %q, want range", e.Mode)
	}
	if e.From.Day() != 1 || e.To.Day() != 15 {
		t.Errorf("range = %v..%v, want Jan 1..Jan 15", e.From, e.To)
	}
	if !e.Value().SameAs(v) {
		t.Errorf("round-tripped value = %v, want %v", e.Value(), v)
	}
}

func TestRecordSingle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v := picker.SingleDate(date(2024, time.June, 5))
	if err := s.Record(ctx, v); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Mode != "single" {
		t.Fatalf("expected one single entry, got %+v", entries)
	}
	if !entries[0].Value().SameAs(v) {
		t.Errorf("round-tripped value = %v, want %v", entries[0].Value(), v)
	}
}

func TestRecordNilIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Record(ctx, nil); err != nil {
		t.Fatalf("Record(nil) failed: %v", err)
	}

	entries, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for d := 1; d <= 3; d++ {
		if err := s.Record(ctx, picker.SingleDate(date(2024, time.March, d))); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected limit of 2 entries, got %d", len(entries))
	}
	if entries[0].From.Day() != 3 {
		t.Errorf("first entry day = %d, want newest (3)", entries[0].From.Day())
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Record(ctx, picker.SingleDate(date(2024, time.March, 1)))
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	entries, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries after Clear, got %d", len(entries))
	}
}
