package script

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/checklist/internal/builder"
	"github.com/roach88/checklist/internal/checklist"
)

// StepResult records the outcome of one step.
type StepResult struct {
	Step    int
	Op      Op
	Applied bool
	// Section is the id the step addressed, or the new id for add_section.
	Section int
}

// Report summarises a replay.
type Report struct {
	Script       string
	Steps        []StepResult
	SectionCount int
}

// Applied counts the steps that changed the document.
func (r Report) Applied() int {
	n := 0
	for _, s := range r.Steps {
		if s.Applied {
			n++
		}
	}
	return n
}

// String renders the report one step per line.
func (r Report) String() string {
	var sb strings.Builder
	if r.Script != "" {
		fmt.Fprintf(&sb, "script: %s\n", r.Script)
	}
	for _, s := range r.Steps {
		outcome := "no-op"
		if s.Applied {
			outcome = "applied"
		}
		if s.Section != 0 {
			fmt.Fprintf(&sb, "%3d %-20s section=%d %s\n", s.Step, s.Op, s.Section, outcome)
		} else {
			fmt.Fprintf(&sb, "%3d %-20s %s\n", s.Step, s.Op, outcome)
		}
	}
	fmt.Fprintf(&sb, "applied: %d/%d\n", r.Applied(), len(r.Steps))
	fmt.Fprintf(&sb, "section count: %d\n", r.SectionCount)
	return sb.String()
}

// Run builds the script's starting document and applies its steps.
func Run(s *Script, log *zap.Logger) (*builder.Builder, Report, error) {
	opts := []builder.Option{
		builder.WithNames(builder.FixedNames(s.Names...)),
		builder.WithLogger(log),
	}

	var b *builder.Builder
	if s.Start != nil {
		b = builder.FromInput(*s.Start, opts...)
	} else {
		b = builder.New(opts...)
	}

	report, err := Apply(b, s.Steps)
	if err != nil {
		return nil, Report{}, err
	}
	report.Script = s.Name
	return b, report, nil
}

// Apply validates the steps and then applies them in order. Invalid steps
// are rejected before anything is applied; guarded edits are reported as
// no-ops, not errors.
func Apply(b *builder.Builder, steps []Step) (Report, error) {
	if err := ValidateSteps(steps); err != nil {
		return Report{}, err
	}

	report := Report{Steps: make([]StepResult, 0, len(steps))}
	for i, st := range steps {
		res := StepResult{Step: i + 1, Op: st.Op}
		if sectionOps[st.Op] && st.Op != OpReset {
			res.Section = st.Section
		}
		if fieldOps[st.Op] {
			kind, _ := checklist.ParseFieldKind(st.Kind)
			res.Applied = applyField(b, kind, st)
		} else {
			res.Applied, res.Section = applySection(b, st, res.Section)
		}
		report.Steps = append(report.Steps, res)
	}
	report.SectionCount = b.SectionCount()
	return report, nil
}

func applyField(b *builder.Builder, kind checklist.FieldKind, st Step) bool {
	switch st.Op {
	case OpAddField:
		if st.Name != "" {
			return b.AddNamedField(kind, st.Name)
		}
		return b.AddField(kind)
	case OpDeleteField:
		return b.DeleteField(kind)
	case OpUpdateFieldName:
		return b.UpdateFieldName(kind, st.Index, st.Name)
	case OpUpdateFieldValue:
		return b.UpdateFieldValue(kind, st.Index, st.Value)
	case OpSetField:
		return b.SetFieldValue(kind, st.Name, st.Value)
	}
	return false
}

func applySection(b *builder.Builder, st Step, section int) (bool, int) {
	switch st.Op {
	case OpAddSection:
		return true, b.AddSection()
	case OpDeleteSection:
		return b.DeleteSection(st.Section), section
	case OpAddRow:
		return b.AddRow(st.Section), section
	case OpDeleteRow:
		return b.DeleteRow(st.Section), section
	case OpMoveRow:
		return b.MoveRow(st.Section, st.From, st.To), section
	case OpAddColumn:
		if st.Name != "" {
			return b.AddNamedColumn(st.Section, st.Name), section
		}
		return b.AddColumn(st.Section), section
	case OpDeleteColumn:
		return b.DeleteColumn(st.Section, st.Col), section
	case OpUpdateColumnName:
		return b.UpdateColumnName(st.Section, st.Col, st.Name), section
	case OpUpdateCell:
		return b.UpdateCell(st.Section, st.Row, st.Col, st.Value), section
	case OpUpdateSectionTitle:
		return b.UpdateSectionTitle(st.Section, st.Value), section
	case OpReset:
		b.Reset()
		return true, section
	}
	return false, section
}
