package service

import (
	"context"
	"time"

	"quiz-lens/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockQuizExtractionRepository ---
type MockQuizExtractionRepository struct {
	mock.Mock
}

func (m *MockQuizExtractionRepository) SaveExtraction(ctx context.Context, extraction *domain.QuizExtraction) error {
	args := m.Called(ctx, extraction)
	return args.Error(0)
}

func (m *MockQuizExtractionRepository) GetExtractionByID(ctx context.Context, id string) (*domain.QuizExtraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizExtraction), args.Error(1)
}

func (m *MockQuizExtractionRepository) GetLatestExtractionByMessageID(ctx context.Context, messageID string) (*domain.QuizExtraction, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizExtraction), args.Error(1)
}

// --- MockTransactionManager ---
// Runs fn directly so repository expectations still apply.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// Ensure all required methods for interfaces are present in the mocks
var (
	_ domain.Cache                    = (*MockCache)(nil)
	_ domain.QuizExtractionRepository = (*MockQuizExtractionRepository)(nil)
	_ domain.TransactionManager       = (*MockTransactionManager)(nil)
)
