package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/checklist/internal/builder"
	"github.com/roach88/checklist/internal/export"
	"github.com/roach88/checklist/internal/script"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Out    string
	Prompt bool
}

// BuildResult summarises an applied script.
type BuildResult struct {
	Script       string `json:"script"`
	Steps        int    `json:"steps"`
	Applied      int    `json:"applied"`
	SectionCount int    `json:"sectionCount"`
	Out          string `json:"out"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <document> <script.yaml>",
		Short: "Apply an edit script to a document",
		Long: `Apply a YAML edit script to a checklist document.

Each step is one edit (add_row, update_cell, add_column, ...). Edits the
document refuses, such as writing to the serial-number column or renaming
the footer date, are skipped and reported as no-ops. Steps that add a field
or column without a name take names from the script's names list, or from
stdin with --prompt.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file path (default stdout)")
	cmd.Flags().BoolVar(&opts.Prompt, "prompt", false, "ask for unnamed fields and columns on stdin")

	return cmd
}

func runBuild(opts *BuildOptions, docPath, scriptPath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	in, err := loadInput(f, docPath)
	if err != nil {
		return err
	}

	s, err := script.Load(scriptPath)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeScriptFailed, fmt.Sprintf("cannot load script %s", scriptPath), err)
	}

	names := builder.FixedNames(s.Names...)
	if opts.Prompt {
		names = builder.PromptFrom(cmd.InOrStdin(), f.GetErrWriter())
	}
	b := builder.FromInput(in, builder.WithNames(names), builder.WithLogger(opts.logger()))

	report, err := script.Apply(b, s.Steps)
	if err != nil {
		var stepErr *script.StepError
		if errors.As(err, &stepErr) {
			return f.Fail(ExitCommandError, ErrCodeScriptFailed, stepErr.Error(), nil)
		}
		return f.Fail(ExitCommandError, ErrCodeScriptFailed, "cannot apply script", err)
	}
	report.Script = s.Name
	f.VerboseLog("%s", report.String())

	data, err := export.DocumentJSON(b.Document())
	if err != nil {
		return documentFailure(f, err)
	}

	if opts.Out == "" {
		return emitDocument(f, "", data)
	}
	if err := writeFile(f, opts.Out, data); err != nil {
		return err
	}

	if f.Format == "json" {
		return f.Success(BuildResult{
			Script:       s.Name,
			Steps:        len(report.Steps),
			Applied:      report.Applied(),
			SectionCount: report.SectionCount,
			Out:          opts.Out,
		})
	}
	fmt.Fprintf(f.Writer, "✓ %s: %d/%d steps applied, wrote %s\n", s.Name, report.Applied(), len(report.Steps), opts.Out)
	return nil
}
