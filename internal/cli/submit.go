package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/checklist/internal/builder"
	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/submit"
)

// SubmitOptions holds flags for the submit command.
type SubmitOptions struct {
	*RootOptions
	By string
}

// SubmitResult describes a filed checklist.
type SubmitResult struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	CreatedBy     string `json:"createdBy,omitempty"`
	EffectiveDate string `json:"effectiveDate"`
}

// NewSubmitCommand creates the submit command.
func NewSubmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SubmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "submit <document>",
		Short: "File a document in the checklist register",
		Long: `File a checklist document in the register as a new, unapproved record.

The record is named after the submission time and stamped with the
effective date. An empty footer date is filled with today's date. A
document without sections is rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "", "name recorded as the checklist's creator")

	return cmd
}

func runSubmit(opts *SubmitOptions, docPath string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	in, err := loadInput(f, docPath)
	if err != nil {
		return err
	}

	repo, release, err := openRepository(opts.RootOptions, f)
	if err != nil {
		return err
	}
	defer release()

	log := opts.logger()
	b := builder.FromInput(in, builder.WithLogger(log))
	rec, index, err := submit.New(repo, submit.WithLogger(log)).Submit(cmd.Context(), b, opts.By)
	if err != nil {
		if submit.IsValidationError(err) || checklist.IsInvariantError(err) {
			return documentFailure(f, err)
		}
		return storeFailure(f, index, err)
	}

	if f.Format == "json" {
		return f.Success(SubmitResult{
			Index:         index,
			Name:          rec.Name,
			CreatedBy:     rec.Metadata.CreatedBy,
			EffectiveDate: rec.Metadata.EffectiveDate,
		})
	}
	fmt.Fprintf(f.Writer, "✓ Submitted %q as #%d\n", rec.Name, index)
	return nil
}
