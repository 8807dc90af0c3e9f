package script

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/checklist/internal/export"
)

// AssertGolden runs the script and compares its report followed by the
// resulting document JSON against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/script -update
func AssertGolden(t *testing.T, s *Script) {
	t.Helper()

	b, report, err := Run(s, nil)
	if err != nil {
		t.Fatalf("run script %s: %v", s.Name, err)
	}

	docJSON, err := export.DocumentJSON(b.Document())
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}

	snapshot := append([]byte(report.String()+"\n"), docJSON...)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, snapshot)
}
