package domain

// ExtractionResult maps every catalog field to its formatted string value.
// Values may carry lightweight markup: "<br>" for line breaks and
// "<b>"/"</b>" for emphasis. Absent data is represented by the field's
// sentinel default, never by a missing key.
type ExtractionResult map[FieldName]string

// FileRecord pairs a source file name with its extraction result.
type FileRecord struct {
	Name   string           `json:"name"`
	Fields ExtractionResult `json:"fields"`
}

// Batch is the outcome of processing one file selection: the records for
// files that parsed successfully, in input order, plus the accumulated
// per-file error text for files that did not.
type Batch struct {
	Records []FileRecord `json:"records"`
	Errors  string       `json:"errors"`
}
