package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docsage/internal/service"
)

// ConversationHandler handles conversation history endpoints.
type ConversationHandler struct {
	askService service.AskService
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(askService service.AskService) *ConversationHandler {
	return &ConversationHandler{askService: askService}
}

// List handles GET /api/v1/conversations
// @Summary List conversations for a document
// @Description List all stored question/answer records for a document, oldest first.
// @Tags conversations
// @Produce json
// @Param document_hash query string true "Document hash (SHA-256 hex)"
// @Success 200 {object} Response{data=[]domain.Conversation} "Conversation records"
// @Failure 422 {object} ErrorResponseBody "Invalid document hash"
// @Security BearerAuth
// @Router /conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	convs, err := h.askService.List(c.Request.Context(), c.Query("document_hash"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, convs)
}

// Delete handles DELETE /api/v1/conversations/:document_hash/question
// @Summary Delete one conversation
// @Description Delete the stored record for one exact (document, question) pair.
// @Tags conversations
// @Accept json
// @Produce json
// @Param document_hash path string true "Document hash (SHA-256 hex)"
// @Param request body DeleteQuestionRequest true "Question to delete"
// @Success 200 {object} Response{data=MessageResponse} "Record deleted"
// @Failure 404 {object} ErrorResponseBody "No record for that question"
// @Failure 422 {object} ErrorResponseBody "Invalid input"
// @Security BearerAuth
// @Router /conversations/{document_hash}/question [delete]
func (h *ConversationHandler) Delete(c *gin.Context) {
	var req DeleteQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "INVALID_INPUT", "question is required")
		return
	}

	if err := h.askService.Delete(c.Request.Context(), c.Param("document_hash"), req.Question); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "conversation deleted"})
}

// DeleteAll handles DELETE /api/v1/conversations/:document_hash
// @Summary Delete all conversations for a document
// @Description Remove every stored question/answer record for a document.
// @Tags conversations
// @Produce json
// @Param document_hash path string true "Document hash (SHA-256 hex)"
// @Success 200 {object} Response{data=DeleteAllResponse} "Number of records removed"
// @Failure 422 {object} ErrorResponseBody "Invalid document hash"
// @Security BearerAuth
// @Router /conversations/{document_hash} [delete]
func (h *ConversationHandler) DeleteAll(c *gin.Context) {
	n, err := h.askService.DeleteAll(c.Request.Context(), c.Param("document_hash"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DeleteAllResponse{Deleted: n})
}
