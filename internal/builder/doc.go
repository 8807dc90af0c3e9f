// Package builder applies editing operations to a checklist document.
//
// A Builder owns exactly one checklist.Document for the length of an editing
// session. Every operation runs to completion synchronously and reports
// whether it changed the document. Invalid indices, empty names and guarded
// edits are silent no-ops, never errors:
//   - the "Footer Date" footer field key cannot be renamed
//   - cells of the serial-number column cannot be written
//   - deleting from an empty field list or row list does nothing
//
// Section ids come from a counter that only moves forward, so an id is never
// handed out twice in one session even after its section is deleted.
//
// New field and column names are obtained through an injected NameProvider
// so the same code serves a terminal prompt, a script or a test.
package builder
