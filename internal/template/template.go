// Package template loads partial initial data for a checklist from files.
//
// A template is anything BuildInitialState accepts: header and footer field
// lists with optional values, a list of partially specified sections,
// metadata and the approval flag. Templates may be written as JSON, YAML or
// CUE; CUE templates can carry their own constraints, which are checked
// before the template is decoded.
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/export"
)

// Format identifies a template encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// cueRoot is the optional top-level field a CUE template places its data
// under, leaving room for definitions alongside it.
const cueRoot = "checklist"

// ErrUnsupportedFormat is returned for file extensions with no loader.
var ErrUnsupportedFormat = errors.New("unsupported template format")

// FormatOf returns the template format implied by the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a template file, choosing the decoder by extension.
func Load(path string) (checklist.Input, error) {
	format, err := FormatOf(path)
	if err != nil {
		return checklist.Input{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return checklist.Input{}, fmt.Errorf("read template: %w", err)
	}

	in, err := Parse(data, format, path)
	if err != nil {
		return checklist.Input{}, fmt.Errorf("load template %s: %w", path, err)
	}
	return in, nil
}

// Parse decodes template data in the given format. name is used in CUE
// error positions and may be empty.
func Parse(data []byte, format Format, name string) (checklist.Input, error) {
	switch format {
	case FormatJSON:
		return export.ParseDocument(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatCUE:
		return parseCUE(data, name)
	default:
		return checklist.Input{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func parseYAML(data []byte) (checklist.Input, error) {
	var in checklist.Input
	if err := yaml.Unmarshal(data, &in); err != nil {
		return checklist.Input{}, fmt.Errorf("parse yaml: %w", err)
	}
	return in, nil
}

func parseCUE(data []byte, name string) (checklist.Input, error) {
	ctx := cuecontext.New()

	var opts []cue.BuildOption
	if name != "" {
		opts = append(opts, cue.Filename(name))
	}
	value := ctx.CompileBytes(data, opts...)
	if err := value.Err(); err != nil {
		return checklist.Input{}, fmt.Errorf("compile cue: %w", err)
	}

	if root := value.LookupPath(cue.ParsePath(cueRoot)); root.Exists() {
		value = root
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return checklist.Input{}, fmt.Errorf("validate cue: %w", err)
	}

	var in checklist.Input
	if err := value.Decode(&in); err != nil {
		return checklist.Input{}, fmt.Errorf("decode cue: %w", err)
	}
	return in, nil
}
