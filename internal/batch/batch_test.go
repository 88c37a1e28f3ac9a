package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialscope/internal/domain"
)

func trialJSON(nctID string) []byte {
	return []byte(`{"protocolSection": {"identificationModule": {"nctId": "` + nctID + `"}}}`)
}

func TestProcess_KeepsInputOrder(t *testing.T) {
	result := Process([]FileInput{
		{Name: "a.json", Data: trialJSON("NCT00000001")},
		{Name: "b.json", Data: trialJSON("NCT00000002")},
		{Name: "c.json", Data: trialJSON("NCT00000003")},
	})

	require.Len(t, result.Records, 3)
	assert.Equal(t, "a.json", result.Records[0].Name)
	assert.Equal(t, "b.json", result.Records[1].Name)
	assert.Equal(t, "c.json", result.Records[2].Name)
	assert.Empty(t, result.Errors)
}

// A file that fails to parse is skipped; the survivors keep their relative
// order and the error message names the failed file.
func TestProcess_FailedFileDoesNotAbortBatch(t *testing.T) {
	result := Process([]FileInput{
		{Name: "a.json", Data: trialJSON("NCT00000001")},
		{Name: "b.json", Data: []byte(`{not json`)},
		{Name: "c.json", Data: trialJSON("NCT00000003")},
	})

	require.Len(t, result.Records, 2)
	assert.Equal(t, "a.json", result.Records[0].Name)
	assert.Equal(t, "c.json", result.Records[1].Name)

	assert.Contains(t, result.Errors, "b.json")
	assert.True(t, strings.HasPrefix(result.Errors, "Error reading b.json: "))
}

func TestProcess_MultipleFailuresOneLineEach(t *testing.T) {
	result := Process([]FileInput{
		{Name: "bad1.json", Data: []byte(`[1, 2, 3]`)},
		{Name: "ok.json", Data: trialJSON("NCT00000009")},
		{Name: "bad2.json", Data: []byte(``)},
	})

	require.Len(t, result.Records, 1)
	assert.Equal(t, "ok.json", result.Records[0].Name)

	lines := strings.Split(result.Errors, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "bad1.json")
	assert.Contains(t, lines[1], "bad2.json")
}

func TestProcess_RejectsNonObjectJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"null", `null`},
		{"array", `[]`},
		{"string", `"NCT00000001"`},
		{"number", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Process([]FileInput{{Name: "x.json", Data: []byte(tt.data)}})
			assert.Empty(t, result.Records)
			assert.Contains(t, result.Errors, "x.json")
		})
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	result := Process(nil)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Errors)
}

func TestProcess_RecordsCarryFullCatalog(t *testing.T) {
	result := Process([]FileInput{{Name: "a.json", Data: trialJSON("NCT01234567")}})

	require.Len(t, result.Records, 1)
	fields := result.Records[0].Fields
	assert.Len(t, fields, domain.CatalogSize)
	assert.Equal(t, "NCT01234567", fields[domain.FieldReference])
}
