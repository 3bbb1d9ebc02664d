// Package history provides SQLite storage for confirmed picker selections.
// It belongs to the host application; the picker core stays in-memory.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/fecha/internal/picker"
)

// Entry is one confirmed selection.
type Entry struct {
	ID       int64
	Mode     string
	From     time.Time
	To       time.Time
	PickedAt time.Time
}

// Value rebuilds the picker value this entry recorded.
func (e *Entry) Value() *picker.Value {
	if e.Mode == "single" {
		return picker.SingleDate(e.From)
	}
	return picker.DateRange(e.From, e.To)
}

// SQLite stores selection history in a SQLite database.
type SQLite struct {
	db *sql.DB
}

// New opens (or creates) the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Record stores a confirmed selection. Nil values are ignored.
func (s *SQLite) Record(ctx context.Context, v *picker.Value) error {
	if v == nil {
		return nil
	}

	from, to := v.Range()
	query := `
		INSERT INTO selections (mode, from_date, to_date, picked_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		v.Mode().String(),
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting selection: %w", err)
	}

	return nil
}

// List returns the most recent entries, newest first.
func (s *SQLite) List(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, mode, from_date, to_date, picked_at
		FROM selections
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying selections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*Entry
	for rows.Next() {
		var (
			e        Entry
			from     string
			to       string
			pickedAt string
		)
		if err := rows.Scan(&e.ID, &e.Mode, &from, &to, &pickedAt); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		if e.From, err = time.ParseInLocation("2006-01-02", from, time.Local); err != nil {
			return nil, fmt.Errorf("parsing from_date: %w", err)
		}
		if e.To, err = time.ParseInLocation("2006-01-02", to, time.Local); err != nil {
			return nil, fmt.Errorf("parsing to_date: %w", err)
		}
		if e.PickedAt, err = time.Parse(time.RFC3339, pickedAt); err != nil {
			return nil, fmt.Errorf("parsing picked_at: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selections: %w", err)
	}

	return entries, nil
}

// Clear removes all recorded selections.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM selections`); err != nil {
		return fmt.Errorf("clearing selections: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
