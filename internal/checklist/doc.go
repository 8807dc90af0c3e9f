// Package checklist provides the in-memory document model for inspection
// checklists.
//
// A Document carries three parts:
//   - Header fields: ordered name/value pairs rendered above the tables
//   - Sections: titled sub-tables, each with its own columns and rows
//   - Footer fields: ordered name/value pairs rendered below the tables
//
// Structural invariants maintained by every constructor in this package:
//   - len(HeaderFields) == len(HeaderValues), same for the footer
//   - every row of a section has exactly len(Columns) cells
//   - a section's serial-number column ("Sl No", compared trimmed and
//     case-insensitively) holds "1".."N" in row order
//
// This package imports nothing internal. The builder, export, submit and
// store packages all depend on it.
package checklist
