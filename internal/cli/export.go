package cli

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As    string
	Out   string
	Title string
}

// ExportFormats lists the values accepted by --as.
var ExportFormats = []string{"json", "sections", "html", "xlsx", "pdf"}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <document>",
		Short: "Export a document as JSON, HTML or a spreadsheet",
		Long: `Export a checklist document.

  json      full document: header and footer fields with values, titled sections
  sections  sections only: columns and rows
  html      standalone HTML page
  xlsx      spreadsheet with a Fields sheet and one sheet per section
  pdf       print: the HTML page is handed to the printer (--out file or stdout)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", "json", "export format (json|sections|html|xlsx|pdf)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Title, "title", "Checklist", "page title for html and pdf")

	return cmd
}

func runExport(opts *ExportOptions, docPath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	if !slices.Contains(ExportFormats, opts.As) {
		return f.Fail(ExitCommandError, ErrCodeInvalidArg,
			fmt.Sprintf("invalid export format %q: must be one of %v", opts.As, ExportFormats), nil)
	}

	in, err := loadInput(f, docPath)
	if err != nil {
		return err
	}
	doc, _ := checklist.BuildInitialState(in)

	if opts.As == "pdf" {
		return runPrint(opts, f, cmd, doc)
	}

	var data []byte
	switch opts.As {
	case "json":
		data, err = export.DocumentJSON(doc)
	case "sections":
		data, err = export.SectionsJSON(doc)
	case "html":
		var buf bytes.Buffer
		err = export.HTML(&buf, doc, opts.Title)
		data = buf.Bytes()
	case "xlsx":
		var buf bytes.Buffer
		err = export.XLSX(&buf, doc)
		data = buf.Bytes()
	}
	if err != nil {
		if checklist.IsInvariantError(err) {
			return documentFailure(f, err)
		}
		return f.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("cannot export as %s", opts.As), err)
	}

	if opts.Out != "" {
		return writeFile(f, opts.Out, data)
	}
	if opts.As == "json" || opts.As == "sections" {
		return emitDocument(f, "", data)
	}
	_, err = f.Writer.Write(data)
	return err
}

func runPrint(opts *ExportOptions, f *OutputFormatter, cmd *cobra.Command, doc checklist.Document) error {
	var printer export.Printer = export.WriterPrinter{W: f.Writer}
	if opts.Out != "" {
		printer = export.FilePrinter{Path: opts.Out}
	}

	if err := export.Print(cmd.Context(), printer, doc, opts.Title); err != nil {
		if checklist.IsInvariantError(err) {
			return documentFailure(f, err)
		}
		return f.Fail(ExitCommandError, ErrCodeWriteFailed, "print failed", err)
	}
	if opts.Out != "" {
		f.VerboseLog("Printed %s to %s", opts.Title, opts.Out)
	}
	return nil
}
