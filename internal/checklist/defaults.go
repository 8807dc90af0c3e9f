package checklist

// FooterDateField is the footer field whose name can never be edited.
const FooterDateField = "Footer Date"

// serialColumnKey is the normalized name of the serial-number column.
const serialColumnKey = "sl no"

var defaultHeaderFields = []string{
	"Name",
	"Designation",
	"Date",
	"Location of Visit",
	"Address",
	"Time In",
	"Time Out",
}

var defaultFooterFields = []string{
	"Remarks",
	"Signature 1",
	"Signature 2",
	"Designation 1",
	"Designation 2",
	FooterDateField,
}

var defaultColumns = []string{
	"Sl No",
	"Point to Check",
	"Status",
	"Action Required",
	"Remarks",
}

// DefaultHeaderFields returns a fresh copy of the built-in header field list.
func DefaultHeaderFields() []string {
	return copyStrings(defaultHeaderFields)
}

// DefaultFooterFields returns a fresh copy of the built-in footer field list.
// The last entry is FooterDateField.
func DefaultFooterFields() []string {
	return copyStrings(defaultFooterFields)
}

// DefaultColumns returns a fresh copy of the default section template columns.
func DefaultColumns() []string {
	return copyStrings(defaultColumns)
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
