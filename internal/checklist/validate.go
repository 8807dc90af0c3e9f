package checklist

import (
	"errors"
	"fmt"
	"strconv"
)

// InvariantError reports a structurally invalid document.
type InvariantError struct {
	// Field names the part of the document that is inconsistent,
	// e.g. "header", "sections[1].rows[3]".
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invalid document: %s: %s", e.Field, e.Message)
}

// IsInvariantError returns true if err is or wraps an InvariantError.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// Validate asserts the structural invariants of doc and returns the first
// violation found. It does not check serial numbering of sections; use
// CheckNumbering for that.
func Validate(doc Document) error {
	if len(doc.HeaderFields) != len(doc.HeaderValues) {
		return &InvariantError{
			Field:   "header",
			Message: fmt.Sprintf("%d fields but %d values", len(doc.HeaderFields), len(doc.HeaderValues)),
		}
	}
	if len(doc.FooterFields) != len(doc.FooterValues) {
		return &InvariantError{
			Field:   "footer",
			Message: fmt.Sprintf("%d fields but %d values", len(doc.FooterFields), len(doc.FooterValues)),
		}
	}

	for i, s := range doc.Sections {
		for r, row := range s.Rows {
			if len(row) != len(s.Columns) {
				return &InvariantError{
					Field:   fmt.Sprintf("sections[%d].rows[%d]", i, r),
					Message: fmt.Sprintf("row has %d cells, section has %d columns", len(row), len(s.Columns)),
				}
			}
		}
	}
	return nil
}

// CheckNumbering returns an InvariantError if a section's serial column is
// not "1".."N" in row order.
func CheckNumbering(s Section) error {
	col := SerialColumn(s.Columns)
	if col < 0 {
		return nil
	}
	for r, row := range s.Rows {
		if col >= len(row) || row[col] != strconv.Itoa(r+1) {
			return &InvariantError{
				Field:   fmt.Sprintf("section %d rows[%d]", s.ID, r),
				Message: "serial number out of sequence",
			}
		}
	}
	return nil
}
