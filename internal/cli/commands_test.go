package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/checklist/internal/checklist"
	"github.com/roach88/checklist/internal/export"
	"github.com/roach88/checklist/internal/testutil"
)

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func loadDocument(t *testing.T, data string) checklist.Document {
	t.Helper()
	in, err := export.ParseDocument([]byte(data))
	require.NoError(t, err)
	doc, _ := checklist.BuildInitialState(in)
	return doc
}

const siteTemplate = `headerFields: [Site]
footerFields: [Footer Date]
sections:
  - title: Fire
    columns: [Sl No, Item, Status]
    rows:
      - ["", Extinguisher, ""]
`

func TestNew_Default(t *testing.T) {
	out, err := execute(t, "", "new")
	require.NoError(t, err)

	doc := loadDocument(t, out)
	assert.Equal(t, checklist.DefaultHeaderFields(), doc.HeaderFields)
	assert.Equal(t, checklist.DefaultFooterFields(), doc.FooterFields)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Section 1", doc.Sections[0].Title)
}

func TestNew_JSONEnvelope(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "new")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "headerFields")
	assert.Contains(t, data, "sections")
}

func TestNew_FromTemplateToFile(t *testing.T) {
	dir := t.TempDir()
	tmpl := testutil.WriteFile(t, dir, "site.yaml", siteTemplate)
	outPath := filepath.Join(dir, "doc.json")

	out, err := execute(t, "", "new", "--template", tmpl, "--out", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	doc := loadDocument(t, testutil.ReadFile(t, outPath))
	assert.Equal(t, []string{"Site"}, doc.HeaderFields)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []checklist.Row{{"1", "Extinguisher", ""}}, doc.Sections[0].Rows)
}

func TestNew_MissingTemplate(t *testing.T) {
	out, err := execute(t, "", "new", "--template", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "file not found")
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.WriteFile(t, dir, "site.yaml", siteTemplate)
	scriptPath := testutil.WriteFile(t, dir, "edits.yaml", `name: walkthrough
names: [Location]
steps:
  - op: update_cell
    section: 1
    row: 0
    col: 2
    value: OK
  - op: add_row
    section: 1
  - op: update_cell
    section: 1
    row: 1
    col: 0
    value: "7"
  - op: add_column
    section: 1
`)
	outPath := filepath.Join(dir, "built.json")

	out, err := execute(t, "", "build", docPath, scriptPath, "--out", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "walkthrough: 3/4 steps applied")

	doc := loadDocument(t, testutil.ReadFile(t, outPath))
	sec := doc.Sections[0]
	assert.Equal(t, []string{"Sl No", "Item", "Status", "Location"}, sec.Columns)
	assert.Equal(t, []checklist.Row{
		{"1", "Extinguisher", "OK", ""},
		{"2", "", "", ""},
	}, sec.Rows)
}

func TestBuild_PromptsForNames(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.WriteFile(t, dir, "site.yaml", siteTemplate)
	scriptPath := testutil.WriteFile(t, dir, "edits.yaml", `name: prompted
steps:
  - op: add_field
    kind: header
  - op: add_column
    section: 1
`)

	out, err := execute(t, "Inspector\nLocation\n", "build", docPath, scriptPath, "--prompt")
	require.NoError(t, err)

	doc := loadDocument(t, out)
	assert.Equal(t, []string{"Site", "Inspector"}, doc.HeaderFields)
	assert.Equal(t, "Location", doc.Sections[0].Columns[3])
}

func TestBuild_InvalidScript(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.WriteFile(t, dir, "site.yaml", siteTemplate)
	scriptPath := testutil.WriteFile(t, dir, "edits.yaml", "name: bad\nsteps:\n  - op: explode\n")

	_, err := execute(t, "", "--format", "json", "build", docPath, scriptPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeScriptFailed)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.WriteFile(t, dir, "site.yaml", siteTemplate)

	t.Run("sections", func(t *testing.T) {
		out, err := execute(t, "", "export", docPath, "--as", "sections")
		require.NoError(t, err)
		var sections []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &sections))
		require.Len(t, sections, 1)
		assert.NotContains(t, sections[0], "title")
	})

	t.Run("html", func(t *testing.T) {
		out, err := execute(t, "", "export", docPath, "--as", "html", "--title", "Depot")
		require.NoError(t, err)
		assert.Contains(t, out, "<title>Depot</title>")
		assert.Contains(t, out, "<h2>Fire</h2>")
	})

	t.Run("xlsx", func(t *testing.T) {
		outPath := filepath.Join(dir, "site.xlsx")
		_, err := execute(t, "", "export", docPath, "--as", "xlsx", "--out", outPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(testutil.ReadFile(t, outPath), "PK"), "xlsx is a zip archive")
	})

	t.Run("pdf", func(t *testing.T) {
		outPath := filepath.Join(dir, "site.print.html")
		_, err := execute(t, "", "export", docPath, "--as", "pdf", "--out", outPath)
		require.NoError(t, err)
		assert.Contains(t, testutil.ReadFile(t, outPath), "<!DOCTYPE html>")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := execute(t, "", "export", docPath, "--as", "docx")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrCodeInvalidArg)
	})
}

func TestSubmit_RejectsEmptySections(t *testing.T) {
	dir := t.TempDir()
	docPath := testutil.WriteFile(t, dir, "empty.json", `{"sections": []}`)
	db := filepath.Join(dir, "register.db")

	out, err := execute(t, "", "--db", db, "--format", "json", "submit", docPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeNotSubmitted, resp.Error.Code)
	assert.Equal(t, "Add at least one section before submitting", resp.Error.Message)

	out, err = execute(t, "", "--db", db, "--format", "json", "list")
	require.NoError(t, err)
	assert.Empty(t, decodeResponse(t, out).Data)
}

func TestRegisterLifecycle(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "register.db")
	docPath := testutil.WriteFile(t, dir, "site.yaml", siteTemplate)

	for _, by := range []string{"first-inspector", "second-inspector"} {
		out, err := execute(t, "", "--db", db, "--format", "json", "submit", docPath, "--by", by)
		require.NoError(t, err)
		resp := decodeResponse(t, out)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, by, data["createdBy"])
	}

	_, err := execute(t, "", "--db", db, "approve", "1", "--by", "manager")
	require.NoError(t, err)

	// Edit record 0 through show/update.
	shown := filepath.Join(dir, "shown.json")
	_, err = execute(t, "", "--db", db, "show", "0", "--out", shown)
	require.NoError(t, err)
	doc := loadDocument(t, testutil.ReadFile(t, shown))
	assert.NotEmpty(t, doc.FooterValues[0], "footer date stamped on submit")
	doc.Sections[0].Rows[0][2] = "Expired"
	data, err := export.DocumentJSON(doc)
	require.NoError(t, err)
	edited := testutil.WriteFile(t, dir, "edited.json", string(data))

	out, err := execute(t, "", "--db", db, "update", "0", edited)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated #0")

	out, err = execute(t, "", "--db", db, "--format", "json", "list")
	require.NoError(t, err)
	var list struct {
		Data []RegisterEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, "first-inspector", list.Data[0].CreatedBy)
	assert.False(t, list.Data[0].Approved)
	assert.True(t, list.Data[1].Approved)
	assert.Equal(t, "manager", list.Data[1].ApprovedBy)
	assert.Len(t, list.Data[0].Digest, 64)

	out, err = execute(t, "", "--db", db, "show", "0")
	require.NoError(t, err)
	assert.Equal(t, "Expired", loadDocument(t, out).Sections[0].Rows[0][2])

	_, err = execute(t, "", "--db", db, "delete", "0")
	require.NoError(t, err)

	out, err = execute(t, "", "--db", db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "second-inspector")
	assert.NotContains(t, out, "first-inspector")
	assert.Contains(t, out, "yes (manager)")
}

func TestRegister_IndexErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "register.db")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"show out of range", []string{"show", "3"}, ErrCodeIndexRange},
		{"delete out of range", []string{"delete", "0"}, ErrCodeIndexRange},
		{"approve out of range", []string{"approve", "0", "--by", "m"}, ErrCodeIndexRange},
		{"not a number", []string{"show", "first"}, ErrCodeInvalidArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--db", db, "--format", "json"}, tt.args...)
			out, err := execute(t, "", args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Equal(t, tt.code, decodeResponse(t, out).Error.Code)
		})
	}
}

func TestList_EmptyInMemory(t *testing.T) {
	out, err := execute(t, "", "--db", "", "list")
	require.NoError(t, err)
	assert.Equal(t, "No checklists filed\n", out)
}
