// Package sqlite implements the run archive on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/labelkit/pkg/labelkit/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite run archive with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL keeps concurrent readers off the writers' backs
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// InitSchema creates the archive tables if they don't exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	tool TEXT NOT NULL,
	started_at TEXT NOT NULL,
	records INTEGER NOT NULL DEFAULT 0,
	labeled INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_labels (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	label TEXT NOT NULL,
	total INTEGER NOT NULL,
	PRIMARY KEY (run_id, label)
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// RecordRun stores one run summary and its per-label totals.
func (s *sqliteStore) RecordRun(ctx context.Context, r store.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
INSERT INTO runs (id, tool, started_at, records, labeled)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	tool = excluded.tool,
	started_at = excluded.started_at,
	records = excluded.records,
	labeled = excluded.labeled`,
		r.ID, r.Tool, r.StartedAt.UTC().Format(time.RFC3339Nano), r.Records, r.Labeled)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_labels WHERE run_id = ?", r.ID); err != nil {
		return err
	}
	for label, total := range r.Totals {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO run_labels (run_id, label, total) VALUES (?, ?, ?)",
			r.ID, label, total)
		if err != nil {
			return fmt.Errorf("insert run label %s: %w", label, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns up to limit runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, tool, started_at, records, labeled
FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var r store.Run
		var started string
		if err := rows.Scan(&r.ID, &r.Tool, &started, &r.Records, &r.Labeled); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, started); err == nil {
			r.StartedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LabelTotals returns the per-label totals recorded for a run.
func (s *sqliteStore) LabelTotals(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT label, total FROM run_labels WHERE run_id = ?", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var label string
		var total int
		if err := rows.Scan(&label, &total); err != nil {
			return nil, err
		}
		totals[label] = total
	}
	return totals, rows.Err()
}
