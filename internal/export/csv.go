package export

import (
	"encoding/csv"
	"io"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV serializes the table as CSV with a leading BOM. Markup inside
// cells is converted to plain text with embedded newlines.
func WriteCSV(w io.Writer, t Table) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		plain := make([]string, len(row))
		for i, cell := range row {
			plain[i] = markupToPlain(cell)
		}
		if err := cw.Write(plain); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
