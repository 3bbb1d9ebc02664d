package history

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS selections (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			mode      TEXT NOT NULL CHECK(mode IN ('single', 'range')),
			from_date DATE NOT NULL,
			to_date   DATE NOT NULL,
			picked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_selections_picked ON selections(picked_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating selections table: %w", err)
	}

	return nil
}
