package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"docsage/internal/domain"
	"docsage/internal/port"
)

// DocumentService handles ingestion of extracted document text and lookups
// against the text store.
type DocumentService interface {
	// Ingest stores page text and returns the content hash that identifies
	// the document from then on.
	Ingest(ctx context.Context, pages []domain.Page) (string, error)
	GetText(ctx context.Context, documentHash string) ([]domain.Page, error)
}

type documentService struct {
	store port.DocumentTextStore
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(store port.DocumentTextStore) DocumentService {
	return &documentService{store: store}
}

func (s *documentService) Ingest(ctx context.Context, pages []domain.Page) (string, error) {
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: at least one page is required", domain.ErrInvalidInput)
	}
	for i := range pages {
		if pages[i].Number <= 0 {
			pages[i].Number = i + 1
		}
	}

	hash := hashPages(pages)
	if err := s.store.PutText(ctx, hash, pages); err != nil {
		return "", err
	}

	log.Printf("documentService.Ingest: stored document %s (%d pages)", hash, len(pages))
	return hash, nil
}

func (s *documentService) GetText(ctx context.Context, documentHash string) ([]domain.Page, error) {
	if !domain.ValidDocumentHash(documentHash) {
		return nil, fmt.Errorf("%w: document_hash must be a 64-character lowercase hex digest", domain.ErrInvalidInput)
	}
	return s.store.GetText(ctx, documentHash)
}

// hashPages derives the document identity from the page text alone, so the
// same content always maps to the same hash regardless of page metadata.
func hashPages(pages []domain.Page) string {
	h := sha256.New()
	for _, p := range pages {
		h.Write([]byte(strings.TrimSpace(p.Text)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
