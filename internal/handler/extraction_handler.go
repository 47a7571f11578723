package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docsage/internal/domain"
	"docsage/internal/service"
)

// ExtractionHandler handles adaptive structured extraction endpoints.
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

// ExtractionStatusBody is the wire form of an extraction job's state.
type ExtractionStatusBody struct {
	DocumentHash string                   `json:"document_hash"`
	Status       string                   `json:"status" example:"processing"`
	Result       *domain.ExtractionResult `json:"result,omitempty"`
	Error        string                   `json:"error,omitempty"`
	StartedAt    *time.Time               `json:"started_at,omitempty"`
	CompletedAt  *time.Time               `json:"completed_at,omitempty"`
}

// statusBody converts service state to the wire form. Running jobs surface as
// "processing" so pollers see one stable in-flight label.
func statusBody(st *service.ExtractionStatus) ExtractionStatusBody {
	body := ExtractionStatusBody{
		DocumentHash: st.DocumentHash,
		Status:       string(st.Status),
		StartedAt:    st.StartedAt,
		CompletedAt:  st.CompletedAt,
	}
	if st.Status == domain.JobStatusRunning {
		body.Status = "processing"
	}
	if st.Status == domain.JobStatusSucceeded {
		body.Result = st.Result
	}
	if st.Status == domain.JobStatusFailed {
		body.Error = st.ErrorDetail
	}
	return body
}

// Extract handles POST /api/v1/extract
// @Summary Start or attach to document extraction
// @Description Begin adaptive structured extraction for a document. If a job already covers the document, its current state is returned; a succeeded job returns the stored result, a failed job is retried.
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Document to extract"
// @Success 200 {object} Response{data=ExtractionStatusBody} "Stored result of an already-succeeded job"
// @Success 202 {object} Response{data=ExtractionStatusBody} "Extraction in flight; poll for the result"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 422 {object} ErrorResponseBody "Invalid input"
// @Security BearerAuth
// @Router /extract [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_INPUT", "document_hash is required")
		return
	}

	status, _, err := h.extractionService.StartOrAttach(c.Request.Context(), req.DocumentHash)
	if err != nil {
		HandleError(c, err)
		return
	}

	if status.Status == domain.JobStatusSucceeded {
		RespondOK(c, statusBody(status))
		return
	}
	RespondAccepted(c, statusBody(status))
}

// Poll handles GET /api/v1/extractions/:document_hash
// @Summary Poll extraction status
// @Description Read the current state of a document's extraction job. A document that was never extracted reports status 'not_started'.
// @Tags extraction
// @Produce json
// @Param document_hash path string true "Document hash (SHA-256 hex)"
// @Success 200 {object} Response{data=ExtractionStatusBody} "Job state"
// @Failure 422 {object} ErrorResponseBody "Invalid document hash"
// @Security BearerAuth
// @Router /extractions/{document_hash} [get]
func (h *ExtractionHandler) Poll(c *gin.Context) {
	status, err := h.extractionService.Poll(c.Request.Context(), c.Param("document_hash"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, statusBody(status))
}

// Invalidate handles DELETE /api/v1/extractions/:document_hash
// @Summary Invalidate an extraction job
// @Description Remove the stored extraction job so the next extract request starts fresh.
// @Tags extraction
// @Produce json
// @Param document_hash path string true "Document hash (SHA-256 hex)"
// @Success 200 {object} Response{data=MessageResponse} "Job removed"
// @Failure 422 {object} ErrorResponseBody "Invalid document hash"
// @Security BearerAuth
// @Router /extractions/{document_hash} [delete]
func (h *ExtractionHandler) Invalidate(c *gin.Context) {
	if err := h.extractionService.Invalidate(c.Request.Context(), c.Param("document_hash")); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "extraction job removed"})
}
