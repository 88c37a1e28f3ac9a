package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialscope/internal/domain"
	"trialscope/internal/export"
	"trialscope/internal/handler"
	"trialscope/internal/router"
	"trialscope/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires a fresh service into the full route table.
func newTestRouter() *gin.Engine {
	svc := service.NewBatchService()
	return router.Setup(
		handler.NewBatchHandler(svc, 1024*1024, 3),
		handler.NewFieldHandler(svc),
		handler.NewExportHandler(svc, "Trial Comparison"),
		handler.NewHealthHandler(),
		nil,
	)
}

// multipartBody builds a multipart form with one "files" part per entry.
func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func uploadBatch(t *testing.T, r *gin.Engine, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, files)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batches", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the APIResponse wire format for decoding in tests.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

const trialA = `{"protocolSection": {"identificationModule": {"nctId": "NCT00000001"}}}`

func TestHealthz(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestCreateBatch(t *testing.T) {
	r := newTestRouter()
	rec := uploadBatch(t, r, map[string]string{
		"a.json":   trialA,
		"bad.json": `{broken`,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var batch domain.Batch
	require.NoError(t, json.Unmarshal(env.Data, &batch))
	require.Len(t, batch.Records, 1)
	assert.Equal(t, "a.json", batch.Records[0].Name)
	assert.Len(t, batch.Records[0].Fields, domain.CatalogSize)
	assert.Contains(t, batch.Errors, "bad.json")
}

func TestCreateBatch_TooManyFiles(t *testing.T) {
	r := newTestRouter()
	rec := uploadBatch(t, r, map[string]string{
		"1.json": trialA, "2.json": trialA, "3.json": trialA, "4.json": trialA,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "TOO_MANY_FILES", env.Error.Code)
}

func TestCreateBatch_FileTooLarge(t *testing.T) {
	r := newTestRouter()
	rec := uploadBatch(t, r, map[string]string{
		"huge.json": strings.Repeat("x", 2*1024*1024),
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FILE_TOO_LARGE", env.Error.Code)
}

func TestCreateBatch_NotMultipart(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batches", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
}

func TestCurrentBatch_InitiallyEmpty(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/batches/current", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var batch domain.Batch
	require.NoError(t, json.Unmarshal(env.Data, &batch))
	assert.Empty(t, batch.Records)
}

func TestListFields(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/fields", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var data struct {
		Catalog  []domain.FieldName `json:"catalog"`
		Selected []domain.FieldName `json:"selected"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Catalog, domain.CatalogSize)
	assert.Equal(t, data.Catalog, data.Selected)
}

func TestSetSelection(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"valid subset", `{"fields": ["Reference", "Sponsor"]}`, http.StatusOK, ""},
		{"unknown field", `{"fields": ["Reference", "Bogus"]}`, http.StatusBadRequest, "UNKNOWN_FIELD"},
		{"empty list", `{"fields": []}`, http.StatusBadRequest, "EMPTY_SELECTION"},
		{"missing fields key", `{}`, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/fields/selection", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}

			var data struct {
				Selected []domain.FieldName `json:"selected"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, []domain.FieldName{domain.FieldReference, domain.FieldSponsor}, data.Selected)
		})
	}
}

func TestExport_EmptyBatchRejected(t *testing.T) {
	r := newTestRouter()
	for _, path := range []string{"/api/v1/export/html", "/api/v1/export/csv", "/api/v1/export/xlsx"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get("Content-Disposition"))
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "EXPORT_EMPTY", env.Error.Code)
		})
	}
}

func TestExport_HTML(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, uploadBatch(t, r, map[string]string{"a.json": trialA}).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/html", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.ms-excel", rec.Header().Get("Content-Type"))
	cd := rec.Header().Get("Content-Disposition")
	assert.Contains(t, cd, "attachment")
	assert.Contains(t, cd, "trial_comparison_")
	assert.Contains(t, cd, ".xls")
	assert.Contains(t, rec.Body.String(), "<table")
	assert.Contains(t, rec.Body.String(), "<td>NCT00000001</td>")
}

func TestExport_CSV(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, uploadBatch(t, r, map[string]string{"a.json": trialA}).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/csv", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), export.BOM))
}

func TestExport_XLSX(t *testing.T) {
	r := newTestRouter()
	require.Equal(t, http.StatusOK, uploadBatch(t, r, map[string]string{"a.json": trialA}).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/xlsx", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}
