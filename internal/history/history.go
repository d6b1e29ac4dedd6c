// Package history provides a SQLite-backed log of executed rolls.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS rolls (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	character TEXT NOT NULL,
	expression TEXT NOT NULL,
	pool INTEGER NOT NULL,
	modifier TEXT NOT NULL,
	rolls TEXT NOT NULL,
	successes INTEGER NOT NULL,
	rolled_at_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS rolls_character_idx ON rolls (character, rolled_at_ms);
`

// Entry is a single executed roll.
type Entry struct {
	Character  string
	Expression string
	Pool       int64
	Modifier   string
	Rolls      string
	Successes  int64
	RolledAt   time.Time
}

// Store persists roll entries to a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records an executed roll. Timestamps are persisted as UTC
// milliseconds.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rolls (character, expression, pool, modifier, rolls, successes, rolled_at_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Character, entry.Expression, entry.Pool, entry.Modifier,
		entry.Rolls, entry.Successes, toMillis(entry.RolledAt))
	if err != nil {
		return fmt.Errorf("append roll: %w", err)
	}
	return nil
}

// Recent returns up to limit rolls for the character, newest first.
func (s *Store) Recent(ctx context.Context, characterName string, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT character, expression, pool, modifier, rolls, successes, rolled_at_ms
		 FROM rolls WHERE character = ?
		 ORDER BY rolled_at_ms DESC, id DESC LIMIT ?`,
		characterName, limit)
	if err != nil {
		return nil, fmt.Errorf("list rolls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var millis int64
		if err := rows.Scan(&entry.Character, &entry.Expression, &entry.Pool,
			&entry.Modifier, &entry.Rolls, &entry.Successes, &millis); err != nil {
			return nil, fmt.Errorf("scan roll: %w", err)
		}
		entry.RolledAt = fromMillis(millis)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rolls: %w", err)
	}
	return entries, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
