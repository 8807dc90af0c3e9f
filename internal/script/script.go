// Package script replays recorded builder edits.
//
// A script is a YAML file naming an ordered list of edit steps, the same
// intents an interactive editor emits (add a row, rename a column, set a
// cell). Scripts drive the builder from the command line and serve as
// end-to-end fixtures in tests.
package script

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/checklist/internal/checklist"
)

// Op names one builder intent.
type Op string

const (
	OpAddField           Op = "add_field"
	OpDeleteField        Op = "delete_field"
	OpUpdateFieldName    Op = "update_field_name"
	OpUpdateFieldValue   Op = "update_field_value"
	OpSetField           Op = "set_field"
	OpAddSection         Op = "add_section"
	OpDeleteSection      Op = "delete_section"
	OpAddRow             Op = "add_row"
	OpDeleteRow          Op = "delete_row"
	OpMoveRow            Op = "move_row"
	OpAddColumn          Op = "add_column"
	OpDeleteColumn       Op = "delete_column"
	OpUpdateColumnName   Op = "update_column_name"
	OpUpdateCell         Op = "update_cell"
	OpUpdateSectionTitle Op = "update_section_title"
	OpReset              Op = "reset"
)

var fieldOps = map[Op]bool{
	OpAddField:         true,
	OpDeleteField:      true,
	OpUpdateFieldName:  true,
	OpUpdateFieldValue: true,
	OpSetField:         true,
}

var sectionOps = map[Op]bool{
	OpAddSection:         true,
	OpDeleteSection:      true,
	OpAddRow:             true,
	OpDeleteRow:          true,
	OpMoveRow:            true,
	OpAddColumn:          true,
	OpDeleteColumn:       true,
	OpUpdateColumnName:   true,
	OpUpdateCell:         true,
	OpUpdateSectionTitle: true,
	OpReset:              true,
}

// Known reports whether op is a recognised intent.
func (op Op) Known() bool {
	return fieldOps[op] || sectionOps[op]
}

// Script is a named sequence of edits, optionally starting from initial
// data other than the default document.
type Script struct {
	// Name identifies the script; golden files are named after it.
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// Start is the initial data. Nil starts from the default document.
	Start *checklist.Input `yaml:"start,omitempty"`

	// Names answers add_field and add_column steps that carry no name,
	// in order. Once exhausted such steps are cancelled.
	Names []string `yaml:"names,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Step is one edit. Which fields are read depends on Op.
type Step struct {
	Op Op `yaml:"op"`

	// Kind is "header" or "footer" for field operations.
	Kind string `yaml:"kind,omitempty"`

	// Index addresses a header or footer field.
	Index int `yaml:"index,omitempty"`

	Section int    `yaml:"section,omitempty"`
	Row     int    `yaml:"row,omitempty"`
	Col     int    `yaml:"col,omitempty"`
	From    int    `yaml:"from,omitempty"`
	To      int    `yaml:"to,omitempty"`
	Name    string `yaml:"name,omitempty"`
	Value   string `yaml:"value,omitempty"`
}

// StepError reports an invalid step by its 1-based position.
type StepError struct {
	Step    int
	Op      Op
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Step, e.Op, e.Message)
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a script, rejecting unknown keys and invalid steps.
func Parse(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("invalid script: name is required")
	}
	if err := ValidateSteps(s.Steps); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// ValidateSteps checks every op is known and every field op names a valid
// kind.
func ValidateSteps(steps []Step) error {
	for i, st := range steps {
		if !st.Op.Known() {
			return &StepError{Step: i + 1, Op: st.Op, Message: "unknown op"}
		}
		if fieldOps[st.Op] {
			if _, err := checklist.ParseFieldKind(st.Kind); err != nil {
				return &StepError{Step: i + 1, Op: st.Op, Message: err.Error()}
			}
		}
	}
	return nil
}
