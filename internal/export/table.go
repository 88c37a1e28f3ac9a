// Package export renders a batch of extraction results as a transposed
// comparison table (rows = fields, columns = files) and serializes it to
// spreadsheet-compatible formats.
package export

import (
	"strings"

	"trialscope/internal/domain"
)

// Table is the transposed comparison view of a batch. The header starts
// with a fixed "Field" column followed by one column per file; each row
// holds a field name and its value per file.
type Table struct {
	Header []string
	Rows   [][]string
}

// BuildTable assembles the comparison table for the selected fields, in
// the order given. Cell values keep their embedded markup.
func BuildTable(records []domain.FileRecord, fields []domain.FieldName) Table {
	header := make([]string, 0, len(records)+1)
	header = append(header, "Field")
	for _, r := range records {
		header = append(header, r.Name)
	}

	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		row := make([]string, 0, len(records)+1)
		row = append(row, string(f))
		for _, r := range records {
			row = append(row, r.Fields[f])
		}
		rows = append(rows, row)
	}

	return Table{Header: header, Rows: rows}
}

// markupToPlain converts cell markup for formats without HTML support:
// "<br>" becomes a newline and bold tags are dropped.
func markupToPlain(s string) string {
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = strings.ReplaceAll(s, "<b>", "")
	s = strings.ReplaceAll(s, "</b>", "")
	return s
}
