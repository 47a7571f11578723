package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsage/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) StartOrAttach(ctx context.Context, documentHash string) (*service.ExtractionStatus, bool, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*service.ExtractionStatus), args.Bool(1), args.Error(2)
}

func (m *MockExtractionService) Poll(ctx context.Context, documentHash string) (*service.ExtractionStatus, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionStatus), args.Error(1)
}

func (m *MockExtractionService) Invalidate(ctx context.Context, documentHash string) error {
	args := m.Called(ctx, documentHash)
	return args.Error(0)
}
