package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"docsage/internal/domain"
	"docsage/internal/export"
)

// ExportHandler handles document export endpoints.
type ExportHandler struct {
	exportService *export.Service
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles GET /api/v1/documents/:document_hash/export
// @Summary Export a document's history as XLSX
// @Description Download the conversation history and extraction snapshot for a document as an Excel workbook.
// @Tags documents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param document_hash path string true "Document hash (SHA-256 hex)"
// @Success 200 {file} binary "XLSX workbook"
// @Failure 422 {object} ErrorResponseBody "Invalid document hash"
// @Security BearerAuth
// @Router /documents/{document_hash}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	documentHash := c.Param("document_hash")
	if !domain.ValidDocumentHash(documentHash) {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_INPUT", "document_hash must be a 64-character lowercase hex digest")
		return
	}

	data, err := h.exportService.DocumentXLSX(c.Request.Context(), documentHash)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("document-%s.xlsx", documentHash[:12])
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
