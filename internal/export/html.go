package export

import (
	"fmt"
	"html"
	"io"
)

// WriteHTML serializes the table as a single HTML table. Spreadsheet
// applications open the document directly when served with an Excel
// content type and a .xls filename. Cell values are written verbatim so
// the "<br>"/"<b>" markup survives; header names are escaped.
func WriteHTML(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, "<table border=\"1\">\n<tr>"); err != nil {
		return err
	}
	for _, h := range t.Header {
		if _, err := fmt.Fprintf(w, "<th>%s</th>", html.EscapeString(h)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</tr>\n"); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if _, err := io.WriteString(w, "<tr>"); err != nil {
			return err
		}
		for i, cell := range row {
			// First column is the field name; escape it like the header.
			if i == 0 {
				cell = html.EscapeString(cell)
			}
			if _, err := fmt.Fprintf(w, "<td>%s</td>", cell); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr>\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</table>\n")
	return err
}
