package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
	"docsage/internal/handler"
	"docsage/internal/service"
	"docsage/mocks"
)

func getWithParam(h gin.HandlerFunc, param, value string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: param, Value: value}}
	h(c)
	return w
}

func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	return resp.Data
}

func TestExtractionHandler_Extract_NewJobIsProcessing(t *testing.T) {
	mockSvc := new(mocks.MockExtractionService)
	h := handler.NewExtractionHandler(mockSvc)

	mockSvc.On("StartOrAttach", mock.Anything, testHash).Return(&service.ExtractionStatus{
		DocumentHash: testHash,
		Status:       domain.JobStatusRunning,
	}, true, nil)

	w := postJSON(h.Extract, "/api/v1/extract", map[string]string{"document_hash": testHash})

	assert.Equal(t, http.StatusAccepted, w.Code)
	data := decodeStatus(t, w)
	assert.Equal(t, "processing", data["status"])
	assert.NotContains(t, data, "result")
}

func TestExtractionHandler_Extract_SucceededReturnsResult(t *testing.T) {
	mockSvc := new(mocks.MockExtractionService)
	h := handler.NewExtractionHandler(mockSvc)

	completed := time.Now().UTC()
	mockSvc.On("StartOrAttach", mock.Anything, testHash).Return(&service.ExtractionStatus{
		DocumentHash: testHash,
		Status:       domain.JobStatusSucceeded,
		Result: &domain.ExtractionResult{
			Classification: domain.Classification{DocumentType: "invoice", Confidence: 0.9},
			Fields: map[string]domain.FieldValue{
				"total": {Value: 42.5, Confidence: 0.9},
			},
		},
		CompletedAt: &completed,
	}, false, nil)

	w := postJSON(h.Extract, "/api/v1/extract", map[string]string{"document_hash": testHash})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeStatus(t, w)
	assert.Equal(t, "succeeded", data["status"])
	result := data["result"].(map[string]interface{})
	classification := result["classification"].(map[string]interface{})
	assert.Equal(t, "invoice", classification["document_type"])
}

func TestExtractionHandler_Extract_DocumentNotFound(t *testing.T) {
	mockSvc := new(mocks.MockExtractionService)
	h := handler.NewExtractionHandler(mockSvc)

	mockSvc.On("StartOrAttach", mock.Anything, testHash).
		Return(nil, false, domain.ErrDocumentNotFound)

	w := postJSON(h.Extract, "/api/v1/extract", map[string]string{"document_hash": testHash})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtractionHandler_Poll_NotStarted(t *testing.T) {
	mockSvc := new(mocks.MockExtractionService)
	h := handler.NewExtractionHandler(mockSvc)

	mockSvc.On("Poll", mock.Anything, testHash).Return(&service.ExtractionStatus{
		DocumentHash: testHash,
		Status:       domain.JobStatusNotStarted,
	}, nil)

	w := getWithParam(h.Poll, "document_hash", testHash)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeStatus(t, w)
	assert.Equal(t, "not_started", data["status"])
}

func TestExtractionHandler_Poll_FailedShowsError(t *testing.T) {
	mockSvc := new(mocks.MockExtractionService)
	h := handler.NewExtractionHandler(mockSvc)

	mockSvc.On("Poll", mock.Anything, testHash).Return(&service.ExtractionStatus{
		DocumentHash: testHash,
		Status:       domain.JobStatusFailed,
		ErrorDetail:  "model timeout",
	}, nil)

	w := getWithParam(h.Poll, "document_hash", testHash)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeStatus(t, w)
	assert.Equal(t, "failed", data["status"])
	assert.Equal(t, "model timeout", data["error"])
}

func TestExtractionHandler_Poll_InvalidHash(t *testing.T) {
	mockSvc := new(mocks.MockExtractionService)
	h := handler.NewExtractionHandler(mockSvc)

	mockSvc.On("Poll", mock.Anything, "bad").Return(nil, domain.ErrInvalidInput)

	w := getWithParam(h.Poll, "document_hash", "bad")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
