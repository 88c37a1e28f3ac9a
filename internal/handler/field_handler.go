package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trialscope/internal/domain"
	"trialscope/internal/service"
)

// FieldHandler exposes the field catalog and the current selection.
type FieldHandler struct {
	batchService service.BatchService
}

// NewFieldHandler creates a new FieldHandler.
func NewFieldHandler(batchService service.BatchService) *FieldHandler {
	return &FieldHandler{batchService: batchService}
}

// fieldsResponse pairs the fixed catalog with the current selection.
type fieldsResponse struct {
	Catalog  []domain.FieldName `json:"catalog"`
	Selected []domain.FieldName `json:"selected"`
}

// List handles GET /api/v1/fields
// @Summary      Field catalog
// @Description  Returns the fixed field catalog in display order plus the current selection
// @Tags         fields
// @Produce      json
// @Success      200 {object} APIResponse{data=fieldsResponse}
// @Router       /fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	RespondOK(c, fieldsResponse{
		Catalog:  domain.Catalog(),
		Selected: h.batchService.Selection(),
	})
}

// SetSelection handles PUT /api/v1/fields/selection
// @Summary      Set field selection
// @Description  Replaces the set of fields used for display and export
// @Tags         fields
// @Accept       json
// @Produce      json
// @Param        request body object true "Selected field names"
// @Success      200 {object} APIResponse{data=fieldsResponse}
// @Failure      400 {object} APIResponse
// @Router       /fields/selection [put]
func (h *FieldHandler) SetSelection(c *gin.Context) {
	var req struct {
		Fields []domain.FieldName `json:"fields" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "fields is required")
		return
	}

	if err := h.batchService.SetSelection(req.Fields); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fieldsResponse{
		Catalog:  domain.Catalog(),
		Selected: h.batchService.Selection(),
	})
}
