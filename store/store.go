// ============================================================================
// RUN HISTORY STORE
// ============================================================================
//
// SQLite persistence for completed generation runs. Strictly a cold path:
// the store is opened after the timed loop finishes and records one row per
// run, so throughput comparisons across sessions, machines and element
// counts survive the process. Digest storage makes cross-machine result
// verification a SELECT away.

package store

import (
	"database/sql"
	"fmt"

	"main/report"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at    INTEGER NOT NULL,
	n             INTEGER NOT NULL,
	total         INTEGER NOT NULL,
	elapsed_ns    INTEGER NOT NULL,
	perms_per_sec REAL    NOT NULL,
	core          INTEGER NOT NULL,
	digest        TEXT    NOT NULL DEFAULT ''
);`

// Store wraps one open history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Insert records one completed run.
func (s *Store) Insert(r report.Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (started_at, n, total, elapsed_ns, perms_per_sec, core, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt, r.N, int64(r.Total), r.ElapsedNs, r.PermsPerSec, r.Core, r.Digest,
	)
	if err != nil {
		return fmt.Errorf("store: insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]report.Run, error) {
	rows, err := s.db.Query(
		`SELECT started_at, n, total, elapsed_ns, perms_per_sec, core, digest
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []report.Run
	for rows.Next() {
		var r report.Run
		var total int64
		if err := rows.Scan(&r.StartedAt, &r.N, &total, &r.ElapsedNs,
			&r.PermsPerSec, &r.Core, &r.Digest); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		r.Total = uint64(total)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}
	return out, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
