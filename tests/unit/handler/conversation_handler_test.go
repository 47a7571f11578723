package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
	"docsage/internal/handler"
	"docsage/mocks"
)

func TestConversationHandler_List(t *testing.T) {
	mockAsk := new(mocks.MockAskService)
	h := handler.NewConversationHandler(mockAsk)

	mockAsk.On("List", mock.Anything, testHash).Return([]domain.Conversation{
		{DocumentHash: testHash, Question: "q1", Answer: "a1"},
		{DocumentHash: testHash, Question: "q2", Answer: "a2"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/conversations?document_hash="+testHash, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    []domain.Conversation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestConversationHandler_Delete_NotFound(t *testing.T) {
	mockAsk := new(mocks.MockAskService)
	h := handler.NewConversationHandler(mockAsk)

	mockAsk.On("Delete", mock.Anything, testHash, "never asked").
		Return(domain.ErrConversationNotFound)

	body, _ := json.Marshal(map[string]string{"question": "never asked"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "document_hash", Value: testHash}}
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONVERSATION_NOT_FOUND", resp.Error.Code)
}

func TestConversationHandler_DeleteAll(t *testing.T) {
	mockAsk := new(mocks.MockAskService)
	h := handler.NewConversationHandler(mockAsk)

	mockAsk.On("DeleteAll", mock.Anything, testHash).Return(int64(4), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "document_hash", Value: testHash}}
	h.DeleteAll(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Deleted int64 `json:"deleted"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Data.Deleted)
}
