package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/store"
	"github.com/roach88/checklist/internal/submit"
	"github.com/roach88/checklist/internal/template"
)

// repository is the register surface the commands need.
type repository interface {
	submit.Repository
	GetChecklist(ctx context.Context, index int) (checklist.Record, error)
	ListEntries(ctx context.Context) ([]store.Entry, error)
}

// openRepository opens the SQLite register, or an in-memory one when the
// path is empty. The returned func releases it.
func openRepository(opts *RootOptions, f *OutputFormatter) (repository, func(), error) {
	if opts.DB == "" {
		f.VerboseLog("Using in-memory register")
		return store.NewMemStore(), func() {}, nil
	}

	s, err := store.Open(opts.DB)
	if err != nil {
		return nil, nil, f.Fail(ExitCommandError, ErrCodeStoreFailed, fmt.Sprintf("cannot open register %s", opts.DB), err)
	}
	f.VerboseLog("Opened register %s", opts.DB)
	return s, func() { _ = s.Close() }, nil
}

// loadInput reads a document or template file in any supported format.
func loadInput(f *OutputFormatter, path string) (checklist.Input, error) {
	in, err := template.Load(path)
	switch {
	case err == nil:
		f.VerboseLog("Loaded %s", path)
		return in, nil
	case errors.Is(err, os.ErrNotExist):
		return checklist.Input{}, f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", path), nil)
	case errors.Is(err, template.ErrUnsupportedFormat):
		return checklist.Input{}, f.Fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("cannot read %s", path), err)
	default:
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return checklist.Input{}, f.Fail(ExitCommandError, ErrCodeReadFailed, fmt.Sprintf("cannot read %s", path), err)
		}
		return checklist.Input{}, f.Fail(ExitCommandError, ErrCodeParseFailed, fmt.Sprintf("cannot parse %s", path), err)
	}
}

// emitDocument writes encoded document JSON to out, or to stdout when out is
// empty. With --format json on stdout the document becomes the response
// data.
func emitDocument(f *OutputFormatter, out string, data []byte) error {
	if out != "" {
		return writeFile(f, out, data)
	}
	if f.Format == "json" {
		return f.Success(json.RawMessage(data))
	}
	_, err := f.Writer.Write(data)
	return err
}

// writeFile writes data to path, reporting failures as E007.
func writeFile(f *OutputFormatter, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return f.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("cannot write %s", path), err)
	}
	f.VerboseLog("Wrote %s (%d bytes)", path, len(data))
	return nil
}

// parseIndex parses a 0-based register index argument.
func parseIndex(f *OutputFormatter, arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, f.Fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("invalid index %q: must be a non-negative integer", arg), nil)
	}
	return index, nil
}

// storeFailure maps a register error to its CLI error.
func storeFailure(f *OutputFormatter, index int, err error) error {
	if errors.Is(err, store.ErrIndexOutOfRange) {
		return f.Fail(ExitCommandError, ErrCodeIndexRange, fmt.Sprintf("no checklist at index %d", index), nil)
	}
	return f.Fail(ExitCommandError, ErrCodeStoreFailed, "register operation failed", err)
}

// documentFailure maps a document validation error to its CLI error.
func documentFailure(f *OutputFormatter, err error) error {
	var validationErr *submit.ValidationError
	if errors.As(err, &validationErr) {
		return f.Fail(ExitFailure, ErrCodeNotSubmitted, validationErr.Message, nil)
	}
	var invariantErr *checklist.InvariantError
	if errors.As(err, &invariantErr) {
		return f.Fail(ExitFailure, ErrCodeInvalidDoc, invariantErr.Error(), nil)
	}
	return f.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
}
