package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/checklist/internal/checklist"
)

type sectionJSON struct {
	Title   string          `json:"title,omitempty"`
	Columns []string        `json:"columns"`
	Rows    []checklist.Row `json:"rows"`
}

type documentJSON struct {
	HeaderFields []string          `json:"headerFields"`
	HeaderData   map[string]string `json:"headerData"`
	FooterFields []string          `json:"footerFields"`
	FooterData   map[string]string `json:"footerData"`
	Sections     []sectionJSON     `json:"sections"`
}

// SectionsJSON encodes only the sections: columns and rows, no titles.
func SectionsJSON(doc checklist.Document) ([]byte, error) {
	if err := checklist.Validate(doc); err != nil {
		return nil, err
	}
	out := make([]sectionJSON, len(doc.Sections))
	for i, s := range doc.Sections {
		out[i] = sectionJSON{Columns: nonNil(s.Columns), Rows: nonNilRows(s.Rows)}
	}
	return encode(out)
}

// DocumentJSON encodes the full document: header and footer fields with
// their values keyed by name, and every section with its title.
func DocumentJSON(doc checklist.Document) ([]byte, error) {
	if err := checklist.Validate(doc); err != nil {
		return nil, err
	}
	return encode(toDocumentJSON(doc))
}

func toDocumentJSON(doc checklist.Document) documentJSON {
	out := documentJSON{
		HeaderFields: nonNil(doc.HeaderFields),
		HeaderData:   doc.FieldData(checklist.Header),
		FooterFields: nonNil(doc.FooterFields),
		FooterData:   doc.FieldData(checklist.Footer),
		Sections:     make([]sectionJSON, len(doc.Sections)),
	}
	for i, s := range doc.Sections {
		out.Sections[i] = sectionJSON{
			Title:   s.Title,
			Columns: nonNil(s.Columns),
			Rows:    nonNilRows(s.Rows),
		}
	}
	return out
}

// ParseDocument decodes any of the exported or persisted shapes into
// factory input: a bare sections array, the full document form, or a
// stored checklist record. Feed the result to checklist.BuildInitialState.
func ParseDocument(data []byte) (checklist.Input, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return checklist.Input{}, errors.New("parse document: empty input")
	}

	if data[0] == '[' {
		var sections []checklist.SectionInput
		if err := json.Unmarshal(data, &sections); err != nil {
			return checklist.Input{}, fmt.Errorf("parse document: %w", err)
		}
		if sections == nil {
			sections = []checklist.SectionInput{}
		}
		return checklist.Input{Sections: sections}, nil
	}

	var in checklist.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return checklist.Input{}, fmt.Errorf("parse document: %w", err)
	}
	return in, nil
}

// encode marshals v as indented JSON without HTML escaping.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilRows(rows []checklist.Row) []checklist.Row {
	out := make([]checklist.Row, len(rows))
	for i, r := range rows {
		out[i] = checklist.Row(nonNil(r))
	}
	return out
}
