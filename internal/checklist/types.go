package checklist

import (
	"fmt"
	"strings"
)

// FieldKind selects which parallel name/value pair a field operation targets.
type FieldKind int

const (
	// Header selects HeaderFields/HeaderValues.
	Header FieldKind = iota
	// Footer selects FooterFields/FooterValues.
	Footer
)

// String returns "header" or "footer".
func (k FieldKind) String() string {
	switch k {
	case Header:
		return "header"
	case Footer:
		return "footer"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// ParseFieldKind parses "header" or "footer" (case-insensitive).
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "header":
		return Header, nil
	case "footer":
		return Footer, nil
	default:
		return 0, fmt.Errorf("invalid field kind %q: must be header or footer", s)
	}
}

// Row is one table row: one cell string per section column.
type Row []string

// Section is a titled sub-table within a checklist document.
//
// ID is internal to an editing session and is never serialized.
type Section struct {
	ID      int
	Title   string
	Columns []string
	Rows    []Row
}

// Metadata holds creation and approval bookkeeping. Values are free-form.
type Metadata struct {
	CreatedBy     string `json:"createdBy" yaml:"createdBy"`
	ApprovedBy    string `json:"approvedBy" yaml:"approvedBy"`
	EffectiveDate string `json:"effectiveDate" yaml:"effectiveDate"`
}

// Document is the in-memory representation of a checklist.
type Document struct {
	HeaderFields []string
	HeaderValues []string
	FooterFields []string
	FooterValues []string
	Sections     []Section
	Metadata     Metadata
	Approved     bool
}

// Fields returns the field names and values for the given kind.
func (d *Document) Fields(kind FieldKind) (names, values []string) {
	if kind == Footer {
		return d.FooterFields, d.FooterValues
	}
	return d.HeaderFields, d.HeaderValues
}

// SetFields replaces the field names and values for the given kind.
func (d *Document) SetFields(kind FieldKind, names, values []string) {
	if kind == Footer {
		d.FooterFields, d.FooterValues = names, values
		return
	}
	d.HeaderFields, d.HeaderValues = names, values
}

// FieldData returns the fields of kind as a name -> value map.
// When a name repeats, the last value wins.
func (d *Document) FieldData(kind FieldKind) map[string]string {
	names, values := d.Fields(kind)
	data := make(map[string]string, len(names))
	for i, name := range names {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		data[name] = v
	}
	return data
}

// SectionIndex returns the slice index of the section with the given id, or -1.
func (d *Document) SectionIndex(id int) int {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		HeaderFields: copyStrings(d.HeaderFields),
		HeaderValues: copyStrings(d.HeaderValues),
		FooterFields: copyStrings(d.FooterFields),
		FooterValues: copyStrings(d.FooterValues),
		Metadata:     d.Metadata,
		Approved:     d.Approved,
	}
	if d.Sections != nil {
		out.Sections = make([]Section, len(d.Sections))
		for i, s := range d.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := Section{
		ID:      s.ID,
		Title:   s.Title,
		Columns: copyStrings(s.Columns),
	}
	if s.Rows != nil {
		out.Rows = make([]Row, len(s.Rows))
		for i, r := range s.Rows {
			out.Rows[i] = Row(copyStrings(r))
		}
	}
	return out
}
