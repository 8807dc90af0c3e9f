package builder

import (
	"go.uber.org/zap"

	"github.com/roach88/checklist/internal/checklist"
)

// Builder owns one checklist document and mutates it in place.
//
// Builder is not safe for concurrent use; an editing session is driven by
// one caller applying one operation at a time.
type Builder struct {
	doc     checklist.Document
	counter *Counter
	names   NameProvider
	log     *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithNames sets the provider used by AddField and AddColumn.
// The default provider always cancels.
func WithNames(p NameProvider) Option {
	return func(b *Builder) {
		if p != nil {
			b.names = p
		}
	}
}

// WithLogger sets the logger used to report guarded no-ops.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a builder holding a fresh default document.
func New(opts ...Option) *Builder {
	return FromInput(checklist.Input{}, opts...)
}

// FromInput creates a builder holding the document built from in.
func FromInput(in checklist.Input, opts ...Option) *Builder {
	b := &Builder{
		names: NoNames,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.load(in)
	return b
}

func (b *Builder) load(in checklist.Input) {
	doc, count := checklist.BuildInitialState(in)
	b.doc = doc
	b.counter = NewCounterAt(count)
}

// Document returns a deep copy of the current document.
func (b *Builder) Document() checklist.Document {
	return b.doc.Clone()
}

// SectionCount returns the last section id handed out.
func (b *Builder) SectionCount() int {
	return b.counter.Current()
}

// Reset starts a new editing session with a fresh default document.
func (b *Builder) Reset() {
	b.load(checklist.Input{})
	b.log.Debug("builder reset")
}

// noop logs a declined mutation.
func (b *Builder) noop(op, reason string, fields ...zap.Field) bool {
	b.log.Debug("operation declined",
		append([]zap.Field{zap.String("op", op), zap.String("reason", reason)}, fields...)...)
	return false
}
