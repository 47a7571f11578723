package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
	"docsage/internal/handler"
	"docsage/mocks"
)

func TestDocumentHandler_Ingest_Success(t *testing.T) {
	mockDocs := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockDocs)

	mockDocs.On("Ingest", mock.Anything, mock.AnythingOfType("[]domain.Page")).Return(testHash, nil)

	w := postJSON(h.Ingest, "/api/v1/documents", map[string]interface{}{
		"pages": []map[string]interface{}{
			{"page": 1, "text": "Invoice #001"},
			{"page": 2, "text": "Total: $42.50"},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			DocumentHash string `json:"document_hash"`
			Pages        int    `json:"pages"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, testHash, resp.Data.DocumentHash)
	assert.Equal(t, 2, resp.Data.Pages)
	mockDocs.AssertExpectations(t)
}

func TestDocumentHandler_Ingest_EmptyPages(t *testing.T) {
	mockDocs := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockDocs)

	mockDocs.On("Ingest", mock.Anything, mock.AnythingOfType("[]domain.Page")).
		Return("", domain.ErrInvalidInput)

	w := postJSON(h.Ingest, "/api/v1/documents", map[string]interface{}{
		"pages": []map[string]interface{}{},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestDocumentHandler_GetText_Success(t *testing.T) {
	mockDocs := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockDocs)

	mockDocs.On("GetText", mock.Anything, testHash).Return([]domain.Page{
		{Number: 1, Text: "Invoice #001"},
	}, nil)

	w := getWithParam(h.GetText, "document_hash", testHash)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invoice #001")
}

func TestDocumentHandler_GetText_NotFound(t *testing.T) {
	mockDocs := new(mocks.MockDocumentService)
	h := handler.NewDocumentHandler(mockDocs)

	mockDocs.On("GetText", mock.Anything, testHash).Return(nil, domain.ErrDocumentNotFound)

	w := getWithParam(h.GetText, "document_hash", testHash)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DOCUMENT_NOT_FOUND")
}
