package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/checklist/internal/checklist"
)

// Entry is a stored record together with its position and internal keys.
type Entry struct {
	Index  int              `json:"index"`
	ID     string           `json:"id"`
	Digest string           `json:"digest"`
	Record checklist.Record `json:"record"`
}

// ListChecklists returns every record in position order.
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) ListChecklists(ctx context.Context) ([]checklist.Record, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]checklist.Record, len(entries))
	for i, e := range entries {
		recs[i] = e.Record
	}
	return recs, nil
}

// ListEntries returns every record with its position, id and digest.
func (s *Store) ListEntries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT position, id, digest, body
		FROM checklists
		ORDER BY position ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query checklists: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e    Entry
			body string
		)
		if err := rows.Scan(&e.Index, &e.ID, &e.Digest, &body); err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		if e.Record, err = unmarshalRecord(body); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklists: %w", err)
	}
	return entries, nil
}

// GetChecklist returns the record at index.
func (s *Store) GetChecklist(ctx context.Context, index int) (checklist.Record, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `
		SELECT body FROM checklists WHERE position = ?
	`, index).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return checklist.Record{}, fmt.Errorf("get checklist %d: %w", index, ErrIndexOutOfRange)
	}
	if err != nil {
		return checklist.Record{}, fmt.Errorf("get checklist %d: %w", index, err)
	}
	return unmarshalRecord(body)
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM checklists`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count checklists: %w", err)
	}
	return n, nil
}
