// Package batch turns a user's file selection into extraction results.
// Files are processed sequentially in selection order; a file that fails
// to parse is reported and skipped without aborting the rest.
package batch

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"trialscope/internal/domain"
	"trialscope/internal/extract"
)

// FileInput is one raw file handed over by the upload layer.
type FileInput struct {
	Name string
	Data []byte
}

// Process parses every input as a trial record and extracts its fields.
// The returned batch keeps successfully parsed files in input order; parse
// failures accumulate in Errors as one message per line.
func Process(inputs []FileInput) domain.Batch {
	var (
		records  []domain.FileRecord
		errLines []string
	)

	for _, in := range inputs {
		rec, err := parseRecord(in.Data)
		if err != nil {
			log.Printf("batch.Process: %s: %v", in.Name, err)
			errLines = append(errLines, fmt.Sprintf("Error reading %s: %v", in.Name, err))
			continue
		}
		records = append(records, domain.FileRecord{
			Name:   in.Name,
			Fields: extract.Extract(rec),
		})
	}

	return domain.Batch{
		Records: records,
		Errors:  strings.Join(errLines, "\n"),
	}
}

// parseRecord decodes one file as a JSON object. Any valid JSON that is
// not an object (including a bare null) is rejected, since extraction
// needs a traversable tree.
func parseRecord(data []byte) (extract.Record, error) {
	var rec extract.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("document is not a JSON object")
	}
	return rec, nil
}
