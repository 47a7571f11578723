package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docsage/internal/service"
)

// DocumentHandler handles document text ingestion endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Ingest handles POST /api/v1/documents
// @Summary Ingest document text
// @Description Store extracted page text for a document and return the content hash that identifies it in all other endpoints.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body IngestRequest true "Page text"
// @Success 201 {object} Response{data=IngestResponse} "Document stored"
// @Failure 422 {object} ErrorResponseBody "Invalid input"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_INPUT", "pages are required")
		return
	}

	hash, err := h.documentService.Ingest(c.Request.Context(), req.Pages)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, IngestResponse{DocumentHash: hash, Pages: len(req.Pages)})
}

// GetText handles GET /api/v1/documents/:document_hash/text
// @Summary Get document text
// @Description Fetch the stored page text for a document.
// @Tags documents
// @Produce json
// @Param document_hash path string true "Document hash (SHA-256 hex)"
// @Success 200 {object} Response{data=[]domain.Page} "Page text"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 422 {object} ErrorResponseBody "Invalid document hash"
// @Security BearerAuth
// @Router /documents/{document_hash}/text [get]
func (h *DocumentHandler) GetText(c *gin.Context) {
	pages, err := h.documentService.GetText(c.Request.Context(), c.Param("document_hash"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, pages)
}
