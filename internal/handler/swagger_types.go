package handler

import (
	"docsage/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// AskRequest represents the ask request body.
type AskRequest struct {
	DocumentHash string `json:"document_hash" binding:"required" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	Question     string `json:"question" binding:"required" example:"What is the total amount due?"`
}

// ExtractRequest represents the extract request body.
type ExtractRequest struct {
	DocumentHash string `json:"document_hash" binding:"required" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
}

// DeleteQuestionRequest represents the delete-one-conversation request body.
type DeleteQuestionRequest struct {
	Question string `json:"question" binding:"required" example:"What is the total amount due?"`
}

// IngestRequest represents the document ingestion request body.
type IngestRequest struct {
	Pages []domain.Page `json:"pages" binding:"required"`
}

// --- Response Types ---

// IngestResponse represents the document ingestion response.
type IngestResponse struct {
	DocumentHash string `json:"document_hash" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	Pages        int    `json:"pages" example:"3"`
}

// DeleteAllResponse reports how many conversation records were removed.
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted" example:"4"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
