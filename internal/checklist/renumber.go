package checklist

import (
	"strconv"
	"strings"
)

// IsSerialColumn reports whether a column name denotes the serial-number
// column. The comparison is trimmed and case-insensitive.
func IsSerialColumn(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == serialColumnKey
}

// SerialColumn returns the index of the section's serial-number column,
// or -1 if it has none. The first matching column wins.
func SerialColumn(columns []string) int {
	for i, c := range columns {
		if IsSerialColumn(c) {
			return i
		}
	}
	return -1
}

// Renumber returns a copy of s with its serial-number column set to the
// 1-based row index of every row. Sections without a serial column are
// returned unchanged. Rows are padded or truncated to len(Columns) first.
//
// Renumber is idempotent.
func Renumber(s Section) Section {
	col := SerialColumn(s.Columns)
	if col < 0 {
		return s
	}

	out := s.Clone()
	for r := range out.Rows {
		row := fitRow(out.Rows[r], len(out.Columns))
		row[col] = strconv.Itoa(r + 1)
		out.Rows[r] = row
	}
	return out
}

// fitRow pads row with empty cells or truncates it to exactly n cells.
// The returned row never aliases the input.
func fitRow(row Row, n int) Row {
	out := make(Row, n)
	copy(out, row)
	return out
}

// BlankRow returns a row of n empty cells.
func BlankRow(n int) Row {
	return make(Row, n)
}
