package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/checklist/internal/checklist"
)

// AddChecklist appends rec and returns its position.
func (s *Store) AddChecklist(ctx context.Context, rec checklist.Record) (int, error) {
	body, digest, err := marshalRecord(rec)
	if err != nil {
		return 0, fmt.Errorf("add checklist: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return 0, fmt.Errorf("add checklist: generate id: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("add checklist: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var position int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM checklists`).Scan(&position); err != nil {
		return 0, fmt.Errorf("add checklist: count: %w", err)
	}

	now := timestamp()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO checklists
		(id, position, name, approved, created_by, approved_by, effective_date, body, digest, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id.String(),
		position,
		rec.Name,
		boolToInt(rec.Approved),
		rec.Metadata.CreatedBy,
		rec.Metadata.ApprovedBy,
		rec.Metadata.EffectiveDate,
		body,
		digest,
		now,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("add checklist: insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("add checklist: commit: %w", err)
	}
	return position, nil
}

// UpdateChecklist replaces the record at index.
func (s *Store) UpdateChecklist(ctx context.Context, index int, rec checklist.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("update checklist: begin tx: %w", err)
	}
	defer tx.Rollback()

	id, err := idAt(ctx, tx, index)
	if err != nil {
		return fmt.Errorf("update checklist %d: %w", index, err)
	}
	if err := replaceRecord(ctx, tx, id, rec); err != nil {
		return fmt.Errorf("update checklist %d: %w", index, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update checklist: commit: %w", err)
	}
	return nil
}

// DeleteChecklist removes the record at index and shifts every later
// record down by one position.
func (s *Store) DeleteChecklist(ctx context.Context, index int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete checklist: begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM checklists WHERE position = ?`, index)
	if err != nil {
		return fmt.Errorf("delete checklist %d: %w", index, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete checklist %d: rows affected: %w", index, err)
	}
	if n == 0 {
		return fmt.Errorf("delete checklist %d: %w", index, ErrIndexOutOfRange)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE checklists SET position = position - 1 WHERE position > ?
	`, index); err != nil {
		return fmt.Errorf("delete checklist %d: shift positions: %w", index, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete checklist: commit: %w", err)
	}
	return nil
}

// ApproveChecklist marks the record at index approved and stamps approvedBy.
func (s *Store) ApproveChecklist(ctx context.Context, index int, approvedBy string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("approve checklist: begin tx: %w", err)
	}
	defer tx.Rollback()

	var id, body string
	err = tx.QueryRowContext(ctx, `
		SELECT id, body FROM checklists WHERE position = ?
	`, index).Scan(&id, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("approve checklist %d: %w", index, ErrIndexOutOfRange)
	}
	if err != nil {
		return fmt.Errorf("approve checklist %d: %w", index, err)
	}

	rec, err := unmarshalRecord(body)
	if err != nil {
		return fmt.Errorf("approve checklist %d: %w", index, err)
	}
	rec.Approved = true
	rec.Metadata.ApprovedBy = approvedBy

	if err := replaceRecord(ctx, tx, id, rec); err != nil {
		return fmt.Errorf("approve checklist %d: %w", index, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("approve checklist: commit: %w", err)
	}
	return nil
}

// idAt returns the internal id of the record at position index.
func idAt(ctx context.Context, tx *sql.Tx, index int) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM checklists WHERE position = ?`, index).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrIndexOutOfRange
	}
	return id, err
}

func replaceRecord(ctx context.Context, tx *sql.Tx, id string, rec checklist.Record) error {
	body, digest, err := marshalRecord(rec)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE checklists
		SET name = ?, approved = ?, created_by = ?, approved_by = ?, effective_date = ?,
		    body = ?, digest = ?, updated_at = ?
		WHERE id = ?
	`,
		rec.Name,
		boolToInt(rec.Approved),
		rec.Metadata.CreatedBy,
		rec.Metadata.ApprovedBy,
		rec.Metadata.EffectiveDate,
		body,
		digest,
		timestamp(),
		id,
	)
	return err
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
