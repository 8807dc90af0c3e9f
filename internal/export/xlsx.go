package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/checklist/internal/checklist"
)

// fieldsSheet is the name of the sheet that holds header and footer fields.
const fieldsSheet = "Fields"

// maxSheetName is Excel's sheet name length limit in characters.
const maxSheetName = 31

// XLSX writes doc as a workbook: a "Fields" sheet with the header and
// footer fields, then one sheet per section named after its title.
func XLSX(w io.Writer, doc checklist.Document) error {
	if err := checklist.Validate(doc); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", fieldsSheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	rows := [][]string{{"Header", "Value"}}
	for i, name := range doc.HeaderFields {
		rows = append(rows, []string{name, doc.HeaderValues[i]})
	}
	rows = append(rows, []string{}, []string{"Footer", "Value"})
	for i, name := range doc.FooterFields {
		rows = append(rows, []string{name, doc.FooterValues[i]})
	}
	if err := writeRows(f, fieldsSheet, rows); err != nil {
		return err
	}

	used := map[string]bool{strings.ToLower(fieldsSheet): true}
	for _, s := range doc.Sections {
		name := sheetName(s.Title, used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx: new sheet %q: %w", name, err)
		}
		rows := make([][]string, 0, len(s.Rows)+1)
		rows = append(rows, s.Columns)
		for _, r := range s.Rows {
			rows = append(rows, r)
		}
		if err := writeRows(f, name, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for r, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: sheet %q row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}

// sheetName derives a valid, unique sheet name from a section title.
// Excel forbids : \ / ? * [ ] in names, limits them to 31 characters,
// rejects a leading or trailing apostrophe and compares names
// case-insensitively.
func sheetName(title string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, title)
	base = trimSheetName(base)
	if base == "" {
		base = "Section"
	}
	base = trimSheetName(truncateRunes(base, maxSheetName))

	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = trimSheetName(truncateRunes(base, maxSheetName-utf8.RuneCountInString(suffix))) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func trimSheetName(s string) string {
	return strings.Trim(s, "' \t\n\r")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
