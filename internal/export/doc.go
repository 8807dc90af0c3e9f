// Package export converts checklist documents into their external forms.
//
// Supported forms:
//   - SectionsJSON: array of {columns, rows}, ids and titles stripped
//   - DocumentJSON: header, footer and sections; the form read back by ParseDocument
//   - Canonical/Digest: RFC 8785 canonical JSON of the document form and its SHA-256
//   - HTML: a standalone printable page
//   - XLSX: a workbook with one sheet per section
//
// Every emitter asserts the document invariants first and returns a
// *checklist.InvariantError instead of writing a malformed document.
// Section ids are internal and never serialized.
package export
