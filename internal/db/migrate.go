package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Generic key/value slots for client-side state blobs. The quote
	// builder keeps its selection under a single fixed key.
	`CREATE TABLE IF NOT EXISTS kv_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Local log of every submitted quote request.
	`CREATE TABLE IF NOT EXISTS quote_requests (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL,
		email      TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		items      TEXT NOT NULL,
		upfront    INTEGER NOT NULL DEFAULT 0,
		monthly    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quote_requests_created ON quote_requests(created_at)`,
}
