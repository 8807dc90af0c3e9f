package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/export"
	"github.com/roach88/checklist/internal/store"
	"github.com/roach88/checklist/internal/submit"
)

// RegisterEntry is one row of the register listing.
type RegisterEntry struct {
	Index         int    `json:"index"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Approved      bool   `json:"approved"`
	CreatedBy     string `json:"createdBy,omitempty"`
	ApprovedBy    string `json:"approvedBy,omitempty"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
	Sections      int    `json:"sections"`
	Digest        string `json:"digest"`
}

func newRegisterEntry(e store.Entry) RegisterEntry {
	return RegisterEntry{
		Index:         e.Index,
		ID:            e.ID,
		Name:          e.Record.Name,
		Approved:      e.Record.Approved,
		CreatedBy:     e.Record.Metadata.CreatedBy,
		ApprovedBy:    e.Record.Metadata.ApprovedBy,
		EffectiveDate: e.Record.Metadata.EffectiveDate,
		Sections:      len(e.Record.Sections),
		Digest:        e.Digest,
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List filed checklists",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	repo, release, err := openRepository(opts, f)
	if err != nil {
		return err
	}
	defer release()

	entries, err := repo.ListEntries(cmd.Context())
	if err != nil {
		return storeFailure(f, -1, err)
	}

	out := make([]RegisterEntry, len(entries))
	for i, e := range entries {
		out[i] = newRegisterEntry(e)
	}

	if f.Format == "json" {
		return f.Success(out)
	}
	if len(out) == 0 {
		fmt.Fprintln(f.Writer, "No checklists filed")
		return nil
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tAPPROVED\tCREATED BY\tEFFECTIVE")
	for _, e := range out {
		approved := "no"
		if e.Approved {
			approved = "yes (" + e.ApprovedBy + ")"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.Index, e.Name, approved, e.CreatedBy, e.EffectiveDate)
	}
	return tw.Flush()
}

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Out string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Print a filed checklist as a document",
		Long: `Print the filed checklist at <index> as full-document JSON.

The output can be edited and filed back with update.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file path (default stdout)")

	return cmd
}

func runShow(opts *ShowOptions, arg string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	index, err := parseIndex(f, arg)
	if err != nil {
		return err
	}

	repo, release, err := openRepository(opts.RootOptions, f)
	if err != nil {
		return err
	}
	defer release()

	rec, err := repo.GetChecklist(cmd.Context(), index)
	if err != nil {
		return storeFailure(f, index, err)
	}
	f.VerboseLog("%s (approved: %t, created by %q)", rec.Name, rec.Approved, rec.Metadata.CreatedBy)

	doc, _ := checklist.BuildInitialState(rec.Input())
	data, err := export.DocumentJSON(doc)
	if err != nil {
		return documentFailure(f, err)
	}
	return emitDocument(f, opts.Out, data)
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <index> <document>",
		Short: "Replace the content of a filed checklist",
		Long: `Replace the content of the filed checklist at <index> with <document>.

The record keeps its name, creator and effective date. Editing withdraws
any approval; approve the record again once reviewed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runUpdate(opts *RootOptions, arg, docPath string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	index, err := parseIndex(f, arg)
	if err != nil {
		return err
	}
	in, err := loadInput(f, docPath)
	if err != nil {
		return err
	}

	repo, release, err := openRepository(opts, f)
	if err != nil {
		return err
	}
	defer release()

	existing, err := repo.GetChecklist(cmd.Context(), index)
	if err != nil {
		return storeFailure(f, index, err)
	}

	doc, _ := checklist.BuildInitialState(in)
	if err := submit.Validate(doc); err != nil {
		return documentFailure(f, err)
	}
	doc.Metadata = existing.Metadata
	doc.Metadata.ApprovedBy = ""
	doc.Approved = false

	if err := repo.UpdateChecklist(cmd.Context(), index, checklist.NewRecord(existing.Name, doc)); err != nil {
		return storeFailure(f, index, err)
	}
	opts.logger().Info("checklist updated", zap.Int("index", index), zap.String("name", existing.Name))

	return f.Success(fmt.Sprintf("✓ Updated #%d %q", index, existing.Name))
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Remove a filed checklist",
		Long: `Remove the filed checklist at <index>.

Later checklists move up by one: indexes always run from 0 without gaps.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
}

func runDelete(opts *RootOptions, arg string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)

	index, err := parseIndex(f, arg)
	if err != nil {
		return err
	}

	repo, release, err := openRepository(opts, f)
	if err != nil {
		return err
	}
	defer release()

	if err := repo.DeleteChecklist(cmd.Context(), index); err != nil {
		return storeFailure(f, index, err)
	}
	return f.Success(fmt.Sprintf("✓ Deleted #%d", index))
}

// ApproveOptions holds flags for the approve command.
type ApproveOptions struct {
	*RootOptions
	By string
}

// NewApproveCommand creates the approve command.
func NewApproveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApproveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "approve <index>",
		Short:         "Mark a filed checklist as approved",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApprove(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "", "name of the approver (required)")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func runApprove(opts *ApproveOptions, arg string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	index, err := parseIndex(f, arg)
	if err != nil {
		return err
	}

	repo, release, err := openRepository(opts.RootOptions, f)
	if err != nil {
		return err
	}
	defer release()

	if err := repo.ApproveChecklist(cmd.Context(), index, opts.By); err != nil {
		return storeFailure(f, index, err)
	}
	opts.logger().Info("checklist approved", zap.Int("index", index), zap.String("by", opts.By))

	return f.Success(fmt.Sprintf("✓ Approved #%d", index))
}
