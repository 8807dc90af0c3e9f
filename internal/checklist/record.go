package checklist

// RecordSection is the persisted form of a section.
type RecordSection struct {
	Title   string   `json:"title,omitempty"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Record is a finalized checklist as handed to a checklist repository.
//
// HeaderData and FooterData carry the field values so that a stored record
// can be reopened for editing.
type Record struct {
	Name         string            `json:"name"`
	Approved     bool              `json:"approved"`
	Metadata     Metadata          `json:"metadata"`
	HeaderFields []string          `json:"headerFields"`
	HeaderData   map[string]string `json:"headerData,omitempty"`
	FooterFields []string          `json:"footerFields"`
	FooterData   map[string]string `json:"footerData,omitempty"`
	Sections     []RecordSection   `json:"sections"`
}

// NewRecord snapshots doc into a record with the given name.
// The record shares no memory with doc.
func NewRecord(name string, doc Document) Record {
	rec := Record{
		Name:         name,
		Approved:     doc.Approved,
		Metadata:     doc.Metadata,
		HeaderFields: copyStrings(doc.HeaderFields),
		HeaderData:   doc.FieldData(Header),
		FooterFields: copyStrings(doc.FooterFields),
		FooterData:   doc.FieldData(Footer),
		Sections:     make([]RecordSection, len(doc.Sections)),
	}
	for i, s := range doc.Sections {
		c := s.Clone()
		rec.Sections[i] = RecordSection{
			Title:   c.Title,
			Columns: c.Columns,
			Rows:    c.Rows,
		}
	}
	return rec
}

// Input converts the record back into factory input for reopening it in a
// builder. Section ids are reassigned by position.
func (r Record) Input() Input {
	in := Input{
		HeaderFields: copyStrings(r.HeaderFields),
		HeaderData:   r.HeaderData,
		FooterFields: copyStrings(r.FooterFields),
		FooterData:   r.FooterData,
		Sections:     make([]SectionInput, len(r.Sections)),
		Metadata:     r.Metadata,
		Approved:     r.Approved,
	}
	for i, s := range r.Sections {
		in.Sections[i] = SectionInput{
			Title:   s.Title,
			Columns: copyStrings(s.Columns),
			Rows:    s.Rows,
		}
	}
	return in
}
