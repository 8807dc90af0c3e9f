package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSection_DefaultTemplate(t *testing.T) {
	s := NewSection(1, SectionInput{})

	assert.Equal(t, 1, s.ID)
	assert.Equal(t, "Section 1", s.Title)
	assert.Equal(t, []string{"Sl No", "Point to Check", "Status", "Action Required", "Remarks"}, s.Columns)
	assert.Equal(t, []Row{{"1", "", "", "", ""}}, s.Rows)
}

func TestNewSection_FitsRowsToColumns(t *testing.T) {
	s := NewSection(4, SectionInput{
		Title:   "Electrical",
		Columns: []string{"Item", "Status"},
		Rows: []Row{
			{"Panel"},
			{"Cable", "OK", "extra"},
		},
	})

	assert.Equal(t, "Electrical", s.Title)
	assert.Equal(t, []Row{{"Panel", ""}, {"Cable", "OK"}}, s.Rows)
}

func TestNewSection_DoesNotAliasInput(t *testing.T) {
	cols := []string{"Sl No", "Note"}
	rows := []Row{{"", "a"}}
	s := NewSection(1, SectionInput{Columns: cols, Rows: rows})

	s.Columns[1] = "changed"
	s.Rows[0][1] = "changed"

	assert.Equal(t, "Note", cols[1])
	assert.Equal(t, "a", rows[0][1])
}

func TestBuildInitialState_Defaults(t *testing.T) {
	doc, count := Default()

	assert.Equal(t, DefaultHeaderFields(), doc.HeaderFields)
	assert.Equal(t, make([]string, 7), doc.HeaderValues)
	assert.Equal(t, DefaultFooterFields(), doc.FooterFields)
	assert.Equal(t, make([]string, 6), doc.FooterValues)
	assert.Equal(t, FooterDateField, doc.FooterFields[5])
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, 1, doc.Sections[0].ID)
	assert.Equal(t, 1, count)
	assert.NoError(t, Validate(doc))
}

func TestBuildInitialState_ValueResolution(t *testing.T) {
	doc, _ := BuildInitialState(Input{
		HeaderFields: []string{"A", "B", "C"},
		HeaderValues: []string{"x"},
		HeaderData:   map[string]string{"A": "ignored", "B": "from-map"},
		FooterData:   map[string]string{"Remarks": "fine"},
	})

	assert.Equal(t, []string{"x", "from-map", ""}, doc.HeaderValues)
	assert.Equal(t, "fine", doc.FooterValues[0])
	assert.Len(t, doc.FooterValues, len(doc.FooterFields))
}

func TestBuildInitialState_SectionIDs(t *testing.T) {
	tests := []struct {
		name      string
		sections  []SectionInput
		wantIDs   []int
		wantCount int
	}{
		{
			name:      "positional ids",
			sections:  []SectionInput{{}, {}, {}},
			wantIDs:   []int{1, 2, 3},
			wantCount: 3,
		},
		{
			name:      "explicit ids keep max",
			sections:  []SectionInput{{ID: 7}, {ID: 2}},
			wantIDs:   []int{7, 2},
			wantCount: 7,
		},
		{
			name:      "count exceeds max id",
			sections:  []SectionInput{{ID: 1}, {ID: 1}, {}},
			wantIDs:   []int{1, 1, 3},
			wantCount: 3,
		},
		{
			name:      "empty but present",
			sections:  []SectionInput{},
			wantIDs:   []int{},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, count := BuildInitialState(Input{Sections: tt.sections})
			ids := make([]int, 0, len(doc.Sections))
			for _, s := range doc.Sections {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestBuildInitialState_RecomputesSerialColumn(t *testing.T) {
	doc, _ := BuildInitialState(Input{
		HeaderFields: []string{"A", "B"},
		HeaderValues: []string{"x", "y"},
		Sections: []SectionInput{{
			Columns: []string{"Sl No", "Note"},
			Rows:    []Row{{"", "n1"}, {"", "n2"}},
		}},
	})

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []Row{{"1", "n1"}, {"2", "n2"}}, doc.Sections[0].Rows)
	assert.Equal(t, map[string]string{"A": "x", "B": "y"}, doc.FieldData(Header))
}

func TestRecord_RoundTrip(t *testing.T) {
	doc, _ := BuildInitialState(Input{
		HeaderFields: []string{"Inspector"},
		HeaderValues: []string{"R. Iyer"},
		Sections: []SectionInput{
			{Title: "Fire", Columns: []string{"Sl No", "Item"}, Rows: []Row{{"", "Extinguisher"}}},
		},
		Metadata: Metadata{CreatedBy: "admin"},
	})

	rec := NewRecord("Checklist 1", doc)
	back, count := BuildInitialState(rec.Input())

	assert.Equal(t, 1, count)
	assert.Equal(t, doc.HeaderFields, back.HeaderFields)
	assert.Equal(t, doc.HeaderValues, back.HeaderValues)
	assert.Equal(t, doc.FooterValues, back.FooterValues)
	assert.Equal(t, doc.Sections, back.Sections)
	assert.Equal(t, "admin", back.Metadata.CreatedBy)
}

func TestClone_IsDeep(t *testing.T) {
	doc, _ := Default()
	c := doc.Clone()

	c.HeaderFields[0] = "changed"
	c.Sections[0].Rows[0][1] = "changed"
	c.Sections[0].Columns[1] = "changed"

	assert.Equal(t, "Name", doc.HeaderFields[0])
	assert.Equal(t, "", doc.Sections[0].Rows[0][1])
	assert.Equal(t, "Point to Check", doc.Sections[0].Columns[1])
}
