package export

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/roach88/checklist/internal/checklist"
)

const printStyle = `body{font-family:sans-serif;margin:2em}
table{border-collapse:collapse;width:100%;margin-bottom:1.5em}
th,td{border:1px solid #444;padding:4px 8px;text-align:left}
@media print{h2{page-break-after:avoid}}`

// HTML renders doc as a standalone printable HTML page with the given title.
func HTML(w io.Writer, doc checklist.Document, title string) error {
	if err := checklist.Validate(doc); err != nil {
		return err
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element(atom.Html)
	root.AppendChild(page)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element(atom.Title), title))
	head.AppendChild(withText(element(atom.Style), printStyle))
	page.AppendChild(head)

	body := element(atom.Body)
	page.AppendChild(body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(fieldTable("header", doc.HeaderFields, doc.HeaderValues))

	for _, s := range doc.Sections {
		body.AppendChild(withText(element(atom.H2), s.Title))
		body.AppendChild(sectionTable(s))
	}

	body.AppendChild(fieldTable("footer", doc.FooterFields, doc.FooterValues))

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func fieldTable(class string, names, values []string) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: class})
	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	for i, name := range names {
		tr := element(atom.Tr)
		tr.AppendChild(withText(element(atom.Th), name))
		tr.AppendChild(withText(element(atom.Td), values[i]))
		tbody.AppendChild(tr)
	}
	return table
}

func sectionTable(s checklist.Section) *html.Node {
	table := element(atom.Table, html.Attribute{Key: "class", Val: "section"})

	thead := element(atom.Thead)
	headRow := element(atom.Tr)
	for _, c := range s.Columns {
		headRow.AppendChild(withText(element(atom.Th), c))
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range s.Rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			tr.AppendChild(withText(element(atom.Td), cell))
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func withText(n *html.Node, text string) *html.Node {
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}
