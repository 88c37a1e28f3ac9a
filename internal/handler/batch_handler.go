package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"trialscope/internal/batch"
	"trialscope/internal/domain"
	"trialscope/internal/service"
)

// BatchHandler handles batch upload and retrieval endpoints.
type BatchHandler struct {
	batchService service.BatchService
	maxFileSize  int64
	maxFiles     int
}

// NewBatchHandler creates a new BatchHandler. maxFileSize is in bytes.
func NewBatchHandler(batchService service.BatchService, maxFileSize int64, maxFiles int) *BatchHandler {
	return &BatchHandler{batchService: batchService, maxFileSize: maxFileSize, maxFiles: maxFiles}
}

// Create handles POST /api/v1/batches
// @Summary      Process a file selection
// @Description  Parses each uploaded JSON trial record, extracts the field catalog, and replaces the current batch
// @Tags         batches
// @Accept       multipart/form-data
// @Produce      json
// @Param        files formData file true "Trial record JSON files"
// @Success      200 {object} APIResponse{data=domain.Batch}
// @Failure      400 {object} APIResponse
// @Router       /batches [post]
func (h *BatchHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart form with a 'files' part is required")
		return
	}

	files := form.File["files"]
	if len(files) > h.maxFiles {
		HandleError(c, domain.ErrTooManyFiles)
		return
	}

	inputs := make([]batch.FileInput, 0, len(files))
	for _, fh := range files {
		if fh.Size > h.maxFileSize {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file "+fh.Filename)
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read uploaded file "+fh.Filename)
			return
		}
		inputs = append(inputs, batch.FileInput{Name: fh.Filename, Data: data})
	}

	result := h.batchService.ProcessFiles(inputs)
	RespondOK(c, result)
}

// Current handles GET /api/v1/batches/current
// @Summary      Current batch
// @Description  Returns the extraction results and error text of the most recent file selection
// @Tags         batches
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.Batch}
// @Router       /batches/current [get]
func (h *BatchHandler) Current(c *gin.Context) {
	RespondOK(c, h.batchService.Current())
}
