package builder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/checklist/internal/checklist"
)

// AddSection appends a default section with the next id and returns the id.
func (b *Builder) AddSection() int {
	id := b.counter.Next()
	b.doc.Sections = append(b.doc.Sections, checklist.NewSection(id, checklist.SectionInput{}))
	return id
}

// DeleteSection removes the section with the given id. Remaining sections
// keep their ids.
func (b *Builder) DeleteSection(id int) bool {
	kept := b.doc.Sections[:0]
	removed := false
	for _, s := range b.doc.Sections {
		if s.ID == id {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		return b.noop("delete_section", "no such section", zap.Int("section", id))
	}
	b.doc.Sections = kept
	return true
}

// AddRow appends a blank row to the section.
func (b *Builder) AddRow(id int) bool {
	return b.edit("add_row", id, true, func(s *checklist.Section) bool {
		s.Rows = append(s.Rows, checklist.BlankRow(len(s.Columns)))
		return true
	})
}

// DeleteRow removes the section's last row.
func (b *Builder) DeleteRow(id int) bool {
	return b.edit("delete_row", id, true, func(s *checklist.Section) bool {
		if len(s.Rows) == 0 {
			return false
		}
		s.Rows = s.Rows[:len(s.Rows)-1]
		return true
	})
}

// MoveRow moves the row at from to position to, shifting the rows between.
func (b *Builder) MoveRow(id, from, to int) bool {
	return b.edit("move_row", id, true, func(s *checklist.Section) bool {
		n := len(s.Rows)
		if from < 0 || from >= n || to < 0 || to >= n || from == to {
			return false
		}
		row := s.Rows[from]
		rows := append(s.Rows[:from:from], s.Rows[from+1:]...)
		rows = append(rows[:to], append([]checklist.Row{row}, rows[to:]...)...)
		s.Rows = rows
		return true
	})
}

// AddColumn asks the NameProvider for a column name and appends the column.
// Every row gains an empty trailing cell.
func (b *Builder) AddColumn(id int) bool {
	if b.doc.SectionIndex(id) < 0 {
		return b.noop("add_column", "no such section", zap.Int("section", id))
	}
	name, ok := b.names("New column name")
	if !ok {
		return b.noop("add_column", "cancelled", zap.Int("section", id))
	}
	return b.AddNamedColumn(id, name)
}

// AddNamedColumn appends a column with the given name. Empty names are
// declined.
func (b *Builder) AddNamedColumn(id int, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.noop("add_column", "empty name", zap.Int("section", id))
	}
	return b.edit("add_column", id, true, func(s *checklist.Section) bool {
		s.Columns = append(s.Columns, name)
		for r := range s.Rows {
			s.Rows[r] = append(s.Rows[r], "")
		}
		return true
	})
}

// DeleteColumn removes the column at col and the matching cell of every row.
func (b *Builder) DeleteColumn(id, col int) bool {
	return b.edit("delete_column", id, true, func(s *checklist.Section) bool {
		if col < 0 || col >= len(s.Columns) {
			return false
		}
		s.Columns = append(s.Columns[:col:col], s.Columns[col+1:]...)
		for r, row := range s.Rows {
			if col < len(row) {
				s.Rows[r] = append(row[:col:col], row[col+1:]...)
			}
		}
		return true
	})
}

// UpdateColumnName renames the column at col. The section is renumbered in
// case the column became, or stopped being, the serial-number column.
func (b *Builder) UpdateColumnName(id, col int, name string) bool {
	return b.edit("update_column_name", id, true, func(s *checklist.Section) bool {
		if col < 0 || col >= len(s.Columns) {
			return false
		}
		s.Columns[col] = name
		return true
	})
}

// UpdateCell sets one cell. Writes to the serial-number column are declined.
func (b *Builder) UpdateCell(id, row, col int, value string) bool {
	return b.edit("update_cell", id, false, func(s *checklist.Section) bool {
		if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Columns) {
			return false
		}
		if col == checklist.SerialColumn(s.Columns) {
			return false
		}
		s.Rows[row][col] = value
		return true
	})
}

// UpdateSectionTitle replaces the section title.
func (b *Builder) UpdateSectionTitle(id int, title string) bool {
	return b.edit("update_section_title", id, false, func(s *checklist.Section) bool {
		s.Title = title
		return true
	})
}

// edit applies fn to every section with the given id and renumbers the
// changed sections when renumber is set. Other sections pass through
// unchanged.
func (b *Builder) edit(op string, id int, renumber bool, fn func(*checklist.Section) bool) bool {
	found, changed := false, false
	for i := range b.doc.Sections {
		s := &b.doc.Sections[i]
		if s.ID != id {
			continue
		}
		found = true
		if !fn(s) {
			continue
		}
		changed = true
		if renumber {
			*s = checklist.Renumber(*s)
		}
	}
	switch {
	case !found:
		return b.noop(op, "no such section", zap.Int("section", id))
	case !changed:
		return b.noop(op, "guarded or out of range", zap.Int("section", id))
	}
	return true
}
