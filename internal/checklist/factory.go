package checklist

import "fmt"

// SectionInput is a partially specified section. Zero values fall back to
// the default template.
type SectionInput struct {
	ID      int      `json:"id,omitempty" yaml:"id,omitempty"`
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Columns []string `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows    []Row    `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// Input is partially specified initial data for a document, typically a
// persisted checklist or a template file.
//
// Sections distinguishes nil (one default section) from an empty, non-nil
// slice (no sections at all).
type Input struct {
	HeaderFields []string          `json:"headerFields,omitempty" yaml:"headerFields,omitempty"`
	HeaderValues []string          `json:"headerValues,omitempty" yaml:"headerValues,omitempty"`
	HeaderData   map[string]string `json:"headerData,omitempty" yaml:"headerData,omitempty"`
	FooterFields []string          `json:"footerFields,omitempty" yaml:"footerFields,omitempty"`
	FooterValues []string          `json:"footerValues,omitempty" yaml:"footerValues,omitempty"`
	FooterData   map[string]string `json:"footerData,omitempty" yaml:"footerData,omitempty"`
	Sections     []SectionInput    `json:"sections" yaml:"sections"`
	Metadata     Metadata          `json:"metadata" yaml:"metadata"`
	Approved     bool              `json:"approved,omitempty" yaml:"approved,omitempty"`
}

// NewSection builds an invariant-satisfying section.
//
// Empty overrides.Columns selects the default five-column template; empty
// overrides.Rows selects one blank row. Every row is fitted to the column
// count and the result is renumbered. overrides.ID is ignored in favour of id.
func NewSection(id int, overrides SectionInput) Section {
	columns := copyStrings(overrides.Columns)
	if len(columns) == 0 {
		columns = DefaultColumns()
	}

	title := overrides.Title
	if title == "" {
		title = fmt.Sprintf("Section %d", id)
	}

	var rows []Row
	if len(overrides.Rows) == 0 {
		rows = []Row{BlankRow(len(columns))}
	} else {
		rows = make([]Row, len(overrides.Rows))
		for i, r := range overrides.Rows {
			rows[i] = fitRow(r, len(columns))
		}
	}

	return Renumber(Section{
		ID:      id,
		Title:   title,
		Columns: columns,
		Rows:    rows,
	})
}

// BuildInitialState produces a document from partial input, merging in the
// built-in defaults. It never fails.
//
// The second result is the section counter: the largest section id seen or
// the number of sections, whichever is larger. A builder hands out
// counter+1 as the next section id.
func BuildInitialState(in Input) (Document, int) {
	doc := Document{
		Metadata: in.Metadata,
		Approved: in.Approved,
	}

	doc.HeaderFields = in.HeaderFields
	if len(doc.HeaderFields) == 0 {
		doc.HeaderFields = defaultHeaderFields
	}
	doc.HeaderFields = copyStrings(doc.HeaderFields)
	doc.HeaderValues = resolveValues(doc.HeaderFields, in.HeaderValues, in.HeaderData)

	doc.FooterFields = in.FooterFields
	if len(doc.FooterFields) == 0 {
		doc.FooterFields = defaultFooterFields
	}
	doc.FooterFields = copyStrings(doc.FooterFields)
	doc.FooterValues = resolveValues(doc.FooterFields, in.FooterValues, in.FooterData)

	inputs := in.Sections
	if inputs == nil {
		inputs = []SectionInput{{}}
	}

	doc.Sections = make([]Section, 0, len(inputs))
	maxID := 0
	for i, si := range inputs {
		id := si.ID
		if id <= 0 {
			id = i + 1
		}
		if id > maxID {
			maxID = id
		}
		doc.Sections = append(doc.Sections, NewSection(id, si))
	}

	count := maxID
	if len(doc.Sections) > count {
		count = len(doc.Sections)
	}
	return doc, count
}

// Default returns a fresh document with the default header, footer and a
// single default section, plus its section counter.
func Default() (Document, int) {
	return BuildInitialState(Input{})
}

// resolveValues aligns values with fields: positional value first, then the
// by-name map, then the empty string.
func resolveValues(fields, values []string, data map[string]string) []string {
	out := make([]string, len(fields))
	for i, name := range fields {
		switch {
		case i < len(values):
			out[i] = values[i]
		case data != nil:
			out[i] = data[name]
		}
	}
	return out
}
