package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docsage/internal/service"
)

// AskHandler handles question-answering endpoints.
type AskHandler struct {
	askService service.AskService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(askService service.AskService) *AskHandler {
	return &AskHandler{askService: askService}
}

// Ask handles POST /api/v1/ask
// @Summary Ask a question about a document
// @Description Answer a natural-language question against a document's text. Repeats of the same question are served from the conversation store.
// @Tags ask
// @Accept json
// @Produce json
// @Param request body AskRequest true "Question details"
// @Success 200 {object} Response{data=domain.Conversation} "Answer record"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 422 {object} ErrorResponseBody "Invalid input"
// @Failure 502 {object} ErrorResponseBody "Model unavailable or unusable response"
// @Security BearerAuth
// @Router /ask [post]
func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_INPUT", "document_hash and question are required")
		return
	}

	conv, err := h.askService.Ask(c.Request.Context(), &service.AskInput{
		DocumentHash: req.DocumentHash,
		Question:     req.Question,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, conv)
}
