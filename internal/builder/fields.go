package builder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/roach88/checklist/internal/checklist"
)

// AddField asks the NameProvider for a field name and appends it with an
// empty value. Empty or cancelled input leaves the document unchanged.
func (b *Builder) AddField(kind checklist.FieldKind) bool {
	name, ok := b.names(fmt.Sprintf("New %s field name", kind))
	if !ok {
		return b.noop("add_field", "cancelled", zap.Stringer("kind", kind))
	}
	return b.AddNamedField(kind, name)
}

// AddNamedField appends a field with the given name. Names that are empty
// after trimming are declined.
func (b *Builder) AddNamedField(kind checklist.FieldKind, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return b.noop("add_field", "empty name", zap.Stringer("kind", kind))
	}
	names, values := b.doc.Fields(kind)
	b.doc.SetFields(kind, append(names, name), append(values, ""))
	return true
}

// DeleteField removes the last field and its value.
func (b *Builder) DeleteField(kind checklist.FieldKind) bool {
	names, values := b.doc.Fields(kind)
	if len(names) == 0 {
		return b.noop("delete_field", "no fields", zap.Stringer("kind", kind))
	}
	n := len(names) - 1
	if len(values) > n {
		values = values[:n]
	}
	b.doc.SetFields(kind, names[:n], values)
	return true
}

// UpdateFieldName renames the field at index. The footer's "Footer Date"
// key is locked.
func (b *Builder) UpdateFieldName(kind checklist.FieldKind, index int, name string) bool {
	names, _ := b.doc.Fields(kind)
	if index < 0 || index >= len(names) {
		return b.noop("update_field_name", "index out of range", zap.Int("index", index))
	}
	if kind == checklist.Footer && names[index] == checklist.FooterDateField {
		return b.noop("update_field_name", "locked field", zap.String("field", names[index]))
	}
	names[index] = name
	return true
}

// UpdateFieldValue sets the value at index.
func (b *Builder) UpdateFieldValue(kind checklist.FieldKind, index int, value string) bool {
	_, values := b.doc.Fields(kind)
	if index < 0 || index >= len(values) {
		return b.noop("update_field_value", "index out of range", zap.Int("index", index))
	}
	values[index] = value
	return true
}

// SetFieldValue sets the value of the first field with the given name.
// Used to stamp externally supplied values such as the footer date.
func (b *Builder) SetFieldValue(kind checklist.FieldKind, name, value string) bool {
	names, _ := b.doc.Fields(kind)
	for i, n := range names {
		if n == name {
			return b.UpdateFieldValue(kind, i, value)
		}
	}
	return b.noop("set_field_value", "no such field", zap.String("field", name))
}
