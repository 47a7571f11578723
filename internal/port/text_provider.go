package port

import (
	"context"

	"docsage/internal/domain"
)

// DocumentTextProvider resolves a document hash to its extracted,
// page-segmented text. Returns domain.ErrDocumentNotFound when no document
// with that hash exists.
type DocumentTextProvider interface {
	GetText(ctx context.Context, documentHash string) ([]domain.Page, error)
}

// DocumentTextStore is the write side of the text store, used by ingestion.
type DocumentTextStore interface {
	DocumentTextProvider
	PutText(ctx context.Context, documentHash string, pages []domain.Page) error
}
