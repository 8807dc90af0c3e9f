package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/export"
)

// marshalRecord converts a record to JSON TEXT for storage and computes the
// content digest of the document it describes.
func marshalRecord(rec checklist.Record) (body, digest string, err error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return "", "", fmt.Errorf("marshal record: %w", err)
	}

	doc, _ := checklist.BuildInitialState(rec.Input())
	digest, err = export.Digest(doc)
	if err != nil {
		return "", "", fmt.Errorf("marshal record: %w", err)
	}

	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), digest, nil
}

// unmarshalRecord parses JSON TEXT back into a record.
func unmarshalRecord(body string) (checklist.Record, error) {
	var rec checklist.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return checklist.Record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
