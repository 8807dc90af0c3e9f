package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/checklist/internal/builder"
	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/export"
)

// NewOptions holds flags for the new command.
type NewOptions struct {
	*RootOptions
	Template string
	Out      string
}

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a checklist document",
		Long: `Create a checklist document as full-document JSON.

Without --template the document has the default header and footer fields
and one default section. A template (.json, .yaml, .yml or .cue) may supply
any subset of fields, values and sections; the rest falls back to defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "template file")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file path (default stdout)")

	return cmd
}

func runNew(opts *NewOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	var in checklist.Input
	if opts.Template != "" {
		var err error
		if in, err = loadInput(f, opts.Template); err != nil {
			return err
		}
	}

	b := builder.FromInput(in, builder.WithLogger(opts.logger()))
	data, err := export.DocumentJSON(b.Document())
	if err != nil {
		return documentFailure(f, err)
	}
	return emitDocument(f, opts.Out, data)
}
