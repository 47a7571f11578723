package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
)

// MockTextProvider is a mock implementation of port.DocumentTextStore.
type MockTextProvider struct {
	mock.Mock
}

func (m *MockTextProvider) GetText(ctx context.Context, documentHash string) ([]domain.Page, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Page), args.Error(1)
}

func (m *MockTextProvider) PutText(ctx context.Context, documentHash string, pages []domain.Page) error {
	args := m.Called(ctx, documentHash, pages)
	return args.Error(0)
}
