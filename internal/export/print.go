package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/roach88/checklist/internal/checklist"
)

// Printer is the host print facility. It receives a rendered HTML page and
// is responsible for turning it into paper or PDF.
type Printer interface {
	Print(ctx context.Context, title string, page []byte) error
}

// Print validates doc, renders it as HTML and hands the page to p.
func Print(ctx context.Context, p Printer, doc checklist.Document, title string) error {
	var buf bytes.Buffer
	if err := HTML(&buf, doc, title); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	if err := p.Print(ctx, title, buf.Bytes()); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

// WriterPrinter "prints" by writing the page to W. Use it to produce a file
// that a browser or headless renderer converts to PDF.
type WriterPrinter struct {
	W io.Writer
}

// Print implements Printer.
func (p WriterPrinter) Print(ctx context.Context, _ string, page []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.W.Write(page)
	return err
}

// FilePrinter writes the page to Path, creating or truncating it.
type FilePrinter struct {
	Path string
}

// Print implements Printer.
func (p FilePrinter) Print(ctx context.Context, _ string, page []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(p.Path, page, 0o644)
}
