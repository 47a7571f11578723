package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
)

// MockExtractionJobRepo is a mock implementation of port.ExtractionJobRepository.
type MockExtractionJobRepo struct {
	mock.Mock
}

func (m *MockExtractionJobRepo) StartIfIdle(ctx context.Context, documentHash string) (*domain.ExtractionJob, bool, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.ExtractionJob), args.Bool(1), args.Error(2)
}

func (m *MockExtractionJobRepo) Get(ctx context.Context, documentHash string) (*domain.ExtractionJob, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionJob), args.Error(1)
}

func (m *MockExtractionJobRepo) Complete(ctx context.Context, documentHash string, result []byte) error {
	args := m.Called(ctx, documentHash, result)
	return args.Error(0)
}

func (m *MockExtractionJobRepo) Fail(ctx context.Context, documentHash string, detail string) error {
	args := m.Called(ctx, documentHash, detail)
	return args.Error(0)
}

func (m *MockExtractionJobRepo) Delete(ctx context.Context, documentHash string) error {
	args := m.Called(ctx, documentHash)
	return args.Error(0)
}
