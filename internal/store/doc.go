// Package store provides checklist repositories: a SQLite-backed Store and
// an in-memory MemStore with identical semantics.
//
// Both keep checklists as one ordered list addressed by 0-based position:
//   - AddChecklist appends and returns the new position
//   - DeleteChecklist closes the gap, shifting later positions down by one
//   - an out-of-range position yields ErrIndexOutOfRange
//
// Positions are not stable identifiers. A caller that deletes position 2
// and then updates position 3 touches what used to be position 4. Each
// record also carries an internal UUIDv7 key and a content digest, reported
// by ListEntries, for callers that need a stable reference.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - one open connection: SQLite allows a single writer
package store
