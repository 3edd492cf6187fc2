// Package history persists solve results in a local SQLite database so
// repeated runs of the same puzzle can be recognized and listed.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup. Solves are keyed by the hex
// encoding of the rendered initial board, so the same starting position
// maps to the same row regardless of the manifest it came from.
const schema = `
CREATE TABLE IF NOT EXISTS solves (
    board_key   TEXT PRIMARY KEY,
    name        TEXT NOT NULL DEFAULT '',
    outcome     TEXT NOT NULL,
    moves       INTEGER NOT NULL,
    expanded    INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    solved_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Record is one solve result row.
type Record struct {
	BoardKey   string
	Name       string
	Outcome    string
	Moves      int
	Expanded   int
	DurationMS int64
	SolvedAt   time.Time
}

// Store wraps the SQLite database holding solve history.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath, enables WAL
// mode and busy timeout, and creates the schema if missing. Parent
// directories are created as needed.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer;
	// one connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record upserts a solve result keyed by its initial board.
func (s *Store) Record(ctx context.Context, r Record) error {
	const q = `
		INSERT INTO solves (board_key, name, outcome, moves, expanded, duration_ms, solved_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(board_key) DO UPDATE SET
			name        = excluded.name,
			outcome     = excluded.outcome,
			moves       = excluded.moves,
			expanded    = excluded.expanded,
			duration_ms = excluded.duration_ms,
			solved_at   = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, q, r.BoardKey, r.Name, r.Outcome, r.Moves, r.Expanded, r.DurationMS); err != nil {
		return fmt.Errorf("history: record solve %q: %w", r.BoardKey, err)
	}
	return nil
}

// Lookup returns the recorded solve for a board key, if any.
func (s *Store) Lookup(ctx context.Context, boardKey string) (Record, bool, error) {
	const q = `SELECT board_key, name, outcome, moves, expanded, duration_ms, solved_at
		FROM solves WHERE board_key = ?`
	var r Record
	var ts string
	err := s.db.QueryRowContext(ctx, q, boardKey).Scan(
		&r.BoardKey, &r.Name, &r.Outcome, &r.Moves, &r.Expanded, &r.DurationMS, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("history: lookup %q: %w", boardKey, err)
	}
	solvedAt, err := parseTimestamp(ts)
	if err != nil {
		return Record{}, false, fmt.Errorf("history: parse timestamp: %w", err)
	}
	r.SolvedAt = solvedAt
	return r, true, nil
}

// List returns every recorded solve, most recent first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	const q = `SELECT board_key, name, outcome, moves, expanded, duration_ms, solved_at
		FROM solves ORDER BY solved_at DESC, board_key`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("history: list solves: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var r Record
		var ts string
		if err := rows.Scan(&r.BoardKey, &r.Name, &r.Outcome, &r.Moves, &r.Expanded, &r.DurationMS, &ts); err != nil {
			return nil, fmt.Errorf("history: scan solve: %w", err)
		}
		solvedAt, parseErr := parseTimestamp(ts)
		if parseErr != nil {
			return nil, fmt.Errorf("history: parse solve timestamp: %w", parseErr)
		}
		r.SolvedAt = solvedAt
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate solves: %w", err)
	}
	return result, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// timestampFormats lists the formats SQLite drivers may produce for
// CURRENT_TIMESTAMP. modernc.org/sqlite typically returns RFC 3339,
// while canonical SQLite returns the space-separated DateTime format.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

// parseTimestamp attempts to parse a SQLite timestamp string using known formats.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}
