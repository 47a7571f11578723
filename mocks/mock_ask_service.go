package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
	"docsage/internal/service"
)

// MockAskService is a mock implementation of service.AskService.
type MockAskService struct {
	mock.Mock
}

func (m *MockAskService) Ask(ctx context.Context, input *service.AskInput) (*domain.Conversation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockAskService) List(ctx context.Context, documentHash string) ([]domain.Conversation, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockAskService) Delete(ctx context.Context, documentHash, question string) error {
	args := m.Called(ctx, documentHash, question)
	return args.Error(0)
}

func (m *MockAskService) DeleteAll(ctx context.Context, documentHash string) (int64, error) {
	args := m.Called(ctx, documentHash)
	return args.Get(0).(int64), args.Error(1)
}
