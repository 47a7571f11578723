package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Ingest(ctx context.Context, pages []domain.Page) (string, error) {
	args := m.Called(ctx, pages)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) GetText(ctx context.Context, documentHash string) ([]domain.Page, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Page), args.Error(1)
}
