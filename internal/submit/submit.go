// Package submit gates the hand-off of a finished checklist to a checklist
// repository.
package submit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/roach88/checklist/internal/builder"
	"github.com/roach88/checklist/internal/checklist"
)

// DateLayout is the layout of Metadata.EffectiveDate.
const DateLayout = "2006-01-02"

// Repository stores finalized checklists as an ordered list addressed by
// position. Positions shift after a delete; callers must not hold on to an
// index across deletions.
type Repository interface {
	AddChecklist(ctx context.Context, rec checklist.Record) (int, error)
	UpdateChecklist(ctx context.Context, index int, rec checklist.Record) error
	DeleteChecklist(ctx context.Context, index int) error
	ApproveChecklist(ctx context.Context, index int, approvedBy string) error
	ListChecklists(ctx context.Context) ([]checklist.Record, error)
}

// Submitter validates builder documents and adds them to a Repository.
type Submitter struct {
	repo Repository
	now  func() time.Time
	log  *zap.Logger
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithClock overrides the wall clock used for dates and names.
func WithClock(now func() time.Time) Option {
	return func(s *Submitter) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Submitter) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Submitter writing to repo.
func New(repo Repository, opts ...Option) *Submitter {
	s := &Submitter{
		repo: repo,
		now:  time.Now,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate reports whether doc may be submitted.
func Validate(doc checklist.Document) error {
	if len(doc.Sections) == 0 {
		return &ValidationError{Field: "sections", Message: MsgNoSections}
	}
	return checklist.Validate(doc)
}

// Finalize turns doc into the record that gets stored: the effective date
// and an empty footer date are stamped with today, createdBy fills an empty
// creator, the record starts unapproved and gets a timestamped name.
func Finalize(doc checklist.Document, now time.Time, createdBy string) checklist.Record {
	doc = doc.Clone()
	today := now.Format(DateLayout)

	if doc.Metadata.EffectiveDate == "" {
		doc.Metadata.EffectiveDate = today
	}
	if doc.Metadata.CreatedBy == "" {
		doc.Metadata.CreatedBy = createdBy
	}
	doc.Approved = false

	for i, name := range doc.FooterFields {
		if name == checklist.FooterDateField && i < len(doc.FooterValues) && doc.FooterValues[i] == "" {
			doc.FooterValues[i] = today
		}
	}

	return checklist.NewRecord(RecordName(now), doc)
}

// RecordName returns the human-readable name given to a record submitted at t.
func RecordName(t time.Time) string {
	return "Checklist " + t.Format("2006-01-02 15:04:05")
}

// Submit validates the builder's document, adds the finalized record to the
// repository and resets the builder to a fresh document. On any error the
// builder is left untouched. It returns the stored record and its index.
func (s *Submitter) Submit(ctx context.Context, b *builder.Builder, createdBy string) (checklist.Record, int, error) {
	doc := b.Document()
	if err := Validate(doc); err != nil {
		s.log.Info("submission rejected", zap.Error(err))
		return checklist.Record{}, -1, err
	}

	rec := Finalize(doc, s.now(), createdBy)
	index, err := s.repo.AddChecklist(ctx, rec)
	if err != nil {
		return checklist.Record{}, -1, fmt.Errorf("submit: %w", err)
	}

	s.log.Info("checklist submitted",
		zap.String("name", rec.Name),
		zap.Int("index", index),
		zap.Int("sections", len(rec.Sections)))

	b.Reset()
	return rec, index, nil
}
