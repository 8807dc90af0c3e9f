package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/roach88/checklist/internal/checklist"
)

// MemStore is an in-memory checklist repository with the same position
// semantics as Store. Records are deep-copied on the way in and out.
//
// Thread-safety: all methods are safe for concurrent use, but a sequence of
// calls is not atomic; positions can shift between two calls.
type MemStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemStore creates an empty in-memory repository.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// AddChecklist appends rec and returns its position.
func (m *MemStore) AddChecklist(_ context.Context, rec checklist.Record) (int, error) {
	_, digest, err := marshalRecord(rec)
	if err != nil {
		return 0, fmt.Errorf("add checklist: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return 0, fmt.Errorf("add checklist: generate id: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{
		ID:     id.String(),
		Digest: digest,
		Record: copyRecord(rec),
	})
	return len(m.entries) - 1, nil
}

// UpdateChecklist replaces the record at index.
func (m *MemStore) UpdateChecklist(_ context.Context, index int, rec checklist.Record) error {
	_, digest, err := marshalRecord(rec)
	if err != nil {
		return fmt.Errorf("update checklist %d: %w", index, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("update checklist %d: %w", index, ErrIndexOutOfRange)
	}
	m.entries[index].Record = copyRecord(rec)
	m.entries[index].Digest = digest
	return nil
}

// DeleteChecklist removes the record at index.
func (m *MemStore) DeleteChecklist(_ context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("delete checklist %d: %w", index, ErrIndexOutOfRange)
	}
	m.entries = append(m.entries[:index:index], m.entries[index+1:]...)
	return nil
}

// ApproveChecklist marks the record at index approved and stamps approvedBy.
func (m *MemStore) ApproveChecklist(_ context.Context, index int, approvedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("approve checklist %d: %w", index, ErrIndexOutOfRange)
	}
	rec := m.entries[index].Record
	rec.Approved = true
	rec.Metadata.ApprovedBy = approvedBy
	m.entries[index].Record = rec
	return nil
}

// ListChecklists returns copies of every record in position order.
func (m *MemStore) ListChecklists(ctx context.Context) ([]checklist.Record, error) {
	entries, err := m.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	recs := make([]checklist.Record, len(entries))
	for i, e := range entries {
		recs[i] = e.Record
	}
	return recs, nil
}

// ListEntries returns copies of every entry in position order.
func (m *MemStore) ListEntries(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		e.Index = i
		e.Record = copyRecord(e.Record)
		out[i] = e
	}
	return out, nil
}

// GetChecklist returns a copy of the record at index.
func (m *MemStore) GetChecklist(_ context.Context, index int) (checklist.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.entries) {
		return checklist.Record{}, fmt.Errorf("get checklist %d: %w", index, ErrIndexOutOfRange)
	}
	return copyRecord(m.entries[index].Record), nil
}

// copyRecord deep-copies a record.
func copyRecord(rec checklist.Record) checklist.Record {
	out := rec
	out.HeaderFields = copyStrings(rec.HeaderFields)
	out.FooterFields = copyStrings(rec.FooterFields)
	out.HeaderData = copyMap(rec.HeaderData)
	out.FooterData = copyMap(rec.FooterData)
	if rec.Sections != nil {
		out.Sections = make([]checklist.RecordSection, len(rec.Sections))
		for i, s := range rec.Sections {
			rows := make([]checklist.Row, len(s.Rows))
			for r, row := range s.Rows {
				rows[r] = checklist.Row(copyStrings(row))
			}
			out.Sections[i] = checklist.RecordSection{
				Title:   s.Title,
				Columns: copyStrings(s.Columns),
				Rows:    rows,
			}
		}
	}
	return out
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
