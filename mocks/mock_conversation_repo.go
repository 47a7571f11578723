package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsage/internal/domain"
)

// MockConversationRepo is a mock implementation of port.ConversationRepository.
type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) Get(ctx context.Context, documentHash, question string) (*domain.Conversation, error) {
	args := m.Called(ctx, documentHash, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockConversationRepo) Put(ctx context.Context, conv *domain.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversationRepo) List(ctx context.Context, documentHash string) ([]domain.Conversation, error) {
	args := m.Called(ctx, documentHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversation), args.Error(1)
}

func (m *MockConversationRepo) Delete(ctx context.Context, documentHash, question string) error {
	args := m.Called(ctx, documentHash, question)
	return args.Error(0)
}

func (m *MockConversationRepo) DeleteAll(ctx context.Context, documentHash string) (int64, error) {
	args := m.Called(ctx, documentHash)
	return args.Get(0).(int64), args.Error(1)
}
