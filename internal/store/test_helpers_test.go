package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/checklist/internal/checklist"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// pragma reads the current value of a SQLite pragma.
func pragma(t *testing.T, s *Store, name string) string {
	t.Helper()
	var value string
	require.NoError(t, s.db.QueryRow("PRAGMA "+name).Scan(&value))
	return value
}

// testRecord creates a small finalized record with the given name.
func testRecord(name string) checklist.Record {
	return checklist.Record{
		Name: name,
		Metadata: checklist.Metadata{
			CreatedBy:     "inspector",
			EffectiveDate: "2026-10-16",
		},
		HeaderFields: []string{"Site"},
		HeaderData:   map[string]string{"Site": "Depot 4"},
		FooterFields: []string{checklist.FooterDateField},
		FooterData:   map[string]string{checklist.FooterDateField: "2026-10-16"},
		Sections: []checklist.RecordSection{{
			Title:   "Fire",
			Columns: []string{"Sl No", "Item", "Status"},
			Rows:    []checklist.Row{{"1", "Extinguisher", "OK"}},
		}},
	}
}
