package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS recurrence_series (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	project_id    TEXT,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	priority      TEXT NOT NULL DEFAULT 'medium',
	kind          TEXT NOT NULL,
	behavior      TEXT NOT NULL DEFAULT 'after_completion',
	rule          TEXT,
	next_due_date TEXT NOT NULL,
	active        INTEGER NOT NULL DEFAULT 1,
	deleted_at    TIMESTAMP,
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_series_user_due
	ON recurrence_series (user_id, active, next_due_date);

CREATE TABLE IF NOT EXISTS task_items (
	id                      TEXT PRIMARY KEY,
	user_id                 TEXT NOT NULL,
	project_id              TEXT,
	title                   TEXT NOT NULL,
	description             TEXT NOT NULL DEFAULT '',
	priority                TEXT NOT NULL DEFAULT 'medium',
	due_date                TEXT,
	status                  TEXT NOT NULL DEFAULT 'open',
	recurrence_series_id    TEXT REFERENCES recurrence_series(id),
	recurrence_kind         TEXT NOT NULL DEFAULT 'none',
	recurrence_behavior     TEXT NOT NULL DEFAULT 'after_completion',
	recurrence_rule         TEXT,
	recurrence_processed_at TIMESTAMP,
	deleted_at              TIMESTAMP,
	created_at              TIMESTAMP NOT NULL,
	updated_at              TIMESTAMP NOT NULL
);

-- One materialized instance per (series, due date). Makes the reconciliation
-- engine's check-then-insert safe under concurrent passes.
CREATE UNIQUE INDEX IF NOT EXISTS idx_items_series_due
	ON task_items (recurrence_series_id, due_date)
	WHERE recurrence_series_id IS NOT NULL;

CREATE INDEX IF NOT EXISTS idx_items_user ON task_items (user_id);
`

// Open creates or opens the SQLite database at path, applies pragmas and
// bootstraps the schema. Safe to call repeatedly.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports a single writer; keep the pool at one connection to
	// avoid SQLITE_BUSY under concurrent syncs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}
