package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"trialscope/internal/export"
	"trialscope/internal/service"
)

// exportBaseName is the stem of every export attachment filename.
const exportBaseName = "trial_comparison"

// ExportHandler serializes the current batch to downloadable documents.
type ExportHandler struct {
	batchService service.BatchService
	sheetName    string
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(batchService service.BatchService, sheetName string) *ExportHandler {
	return &ExportHandler{batchService: batchService, sheetName: sheetName}
}

// HTML handles GET /api/v1/export/html
// @Summary      Export as HTML table
// @Description  Exports the comparison table as an HTML document Excel can open
// @Tags         export
// @Produce      application/vnd.ms-excel
// @Success      200 {string} string "HTML table"
// @Failure      400 {object} APIResponse
// @Router       /export/html [get]
func (h *ExportHandler) HTML(c *gin.Context) {
	t, err := h.batchService.Table()
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteHTML(&buf, t); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(exportBaseName, "xls")+`"`)
	c.Data(http.StatusOK, "application/vnd.ms-excel", buf.Bytes())
}

// CSV handles GET /api/v1/export/csv
// @Summary      Export as CSV
// @Description  Exports the comparison table as BOM-prefixed CSV
// @Tags         export
// @Produce      text/csv
// @Success      200 {string} string "CSV document"
// @Failure      400 {object} APIResponse
// @Router       /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	t, err := h.batchService.Table()
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, t); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(exportBaseName, "csv")+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// XLSX handles GET /api/v1/export/xlsx
// @Summary      Export as XLSX
// @Description  Exports the comparison table as an XLSX workbook
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {string} string "XLSX workbook"
// @Failure      400 {object} APIResponse
// @Router       /export/xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	t, err := h.batchService.Table()
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, t, h.sheetName); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.BuildFilename(exportBaseName, "xlsx")+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
