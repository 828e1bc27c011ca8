// Package history records committed portfolio mutations so the editing
// surface can show a recent-changes feed.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gkcodebase/folio/internal/portfolio"
)

// Entry is one recorded mutation. Section is empty when the whole document
// was replaced.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Version   uint64    `json:"version"`
	Section   string    `json:"section,omitempty"`
}

// Store persists history entries in the shared snapshot database.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

// Log inserts a new history entry. If entry.ID is empty a UUID is generated.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO edit_history (id, version, section) VALUES (?, ?, ?)`,
		entry.ID, entry.Version, entry.Section,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first. limit <= 0 means a
// default of 50.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, version, section
		FROM edit_history
		ORDER BY timestamp DESC, version DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Version, &e.Section); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteBefore removes all entries older than the given time. Returns the
// number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM edit_history WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old history entries: %w", err)
	}
	return res.RowsAffected()
}

// Follow subscribes to the session and records every committed mutation
// until ctx is done.
func Follow(ctx context.Context, session *portfolio.Session, store *Store) {
	events, cancel := session.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := store.Log(ctx, Entry{Version: event.Version, Section: event.Section}); err != nil {
				// Recording is best effort; the mutation itself already
				// committed.
				continue
			}
		}
	}
}
