package eventsource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists event streams in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the database at path.
// Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The driver opens lazily; force schema creation now so a bad path
	// fails at construction rather than first append.
	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		stream_id TEXT NOT NULL,
		version   INTEGER NOT NULL,
		id        TEXT NOT NULL UNIQUE,
		type      TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		data      BLOB,
		PRIMARY KEY (stream_id, version)
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Append adds events to a stream under optimistic concurrency control.
func (s *SQLiteStore) Append(ctx context.Context, streamID string, expectedVersion int, events []*Event) (int, error) {
	if len(events) == 0 {
		return expectedVersion, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	current, err := lastVersion(ctx, tx, streamID)
	if err != nil {
		return 0, err
	}
	if expectedVersion != current {
		return current, ErrVersionConflict
	}

	version := current
	for _, e := range events {
		version++
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (stream_id, version, id, type, timestamp, data)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			streamID, version, e.ID, e.Type, e.Timestamp.UTC().Format(time.RFC3339Nano), []byte(e.Data))
		if err != nil {
			return 0, err
		}
		e.StreamID = streamID
		e.Version = version
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return version, nil
}

func lastVersion(ctx context.Context, tx *sql.Tx, streamID string) (int, error) {
	var v sql.NullInt64
	err := tx.QueryRowContext(ctx,
		`SELECT MAX(version) FROM events WHERE stream_id = ?`, streamID).Scan(&v)
	if err != nil {
		return 0, err
	}
	if !v.Valid {
		return -1, nil
	}
	return int(v.Int64), nil
}

// Read returns a stream's events from the given version onward.
func (s *SQLiteStore) Read(ctx context.Context, streamID string, fromVersion int) ([]*Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT version, id, type, timestamp, data FROM events
		 WHERE stream_id = ? AND version >= ?
		 ORDER BY version`, streamID, fromVersion)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Event
	for rows.Next() {
		e := &Event{StreamID: streamID}
		var ts string
		var data []byte
		if err := rows.Scan(&e.Version, &e.ID, &e.Type, &ts, &data); err != nil {
			return nil, err
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse timestamp: %w", err)
		}
		if len(data) > 0 {
			e.Data = data
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		// Distinguish an unknown stream from an exhausted fromVersion.
		var exists int
		err := s.db.QueryRowContext(ctx,
			`SELECT 1 FROM events WHERE stream_id = ? LIMIT 1`, streamID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStreamNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Streams returns all stream IDs, sorted.
func (s *SQLiteStore) Streams(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT stream_id FROM events ORDER BY stream_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
