package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quiz-lens/internal/cache"
	"quiz-lens/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const cachedContent = "Question 1: What is the largest planet?\nA) Mars\nB) Jupiter\nAnswer: B"

func cachedQuiz() domain.ParsedQuiz {
	return domain.ParsedQuiz{
		HasQuiz: true,
		Questions: []domain.QuizQuestion{{
			Number:   1,
			Question: "What is the largest planet?",
			Options:  []domain.Option{{Letter: "A", Text: "Mars"}, {Letter: "B", Text: "Jupiter"}},
			Answer:   "B",
		}},
	}
}

func TestParseCacheService_GetParsed(t *testing.T) {
	ctx := context.Background()
	key := cache.ParsedQuizKey(cachedContent)

	t.Run("Hit", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, time.Hour)

		data, err := json.Marshal(cachedQuiz())
		require.NoError(t, err)
		mockCache.On("Get", ctx, key).Return(string(data), nil).Once()

		got, err := svc.GetParsed(ctx, cachedContent)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, cachedQuiz(), *got)
		mockCache.AssertExpectations(t)
	})

	t.Run("Miss", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, time.Hour)
		mockCache.On("Get", ctx, key).Return("", domain.ErrCacheMiss).Once()

		got, err := svc.GetParsed(ctx, cachedContent)
		assert.NoError(t, err)
		assert.Nil(t, got)
		mockCache.AssertExpectations(t)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, time.Hour)
		backendErr := errors.New("connection refused")
		mockCache.On("Get", ctx, key).Return("", backendErr).Once()

		got, err := svc.GetParsed(ctx, cachedContent)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, backendErr)

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeCacheError, domainErr.Code)
		mockCache.AssertExpectations(t)
	})

	t.Run("CorruptEntryIsMiss", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, time.Hour)
		mockCache.On("Get", ctx, key).Return("{not json", nil).Once()

		got, err := svc.GetParsed(ctx, cachedContent)
		assert.NoError(t, err)
		assert.Nil(t, got)
		mockCache.AssertExpectations(t)
	})

	t.Run("NullQuestionsNormalized", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, time.Hour)
		mockCache.On("Get", ctx, key).Return(`{"questions":null,"has_quiz":false}`, nil).Once()

		got, err := svc.GetParsed(ctx, cachedContent)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EmptyQuiz(), *got)
	})
}

func TestParseCacheService_PutParsed(t *testing.T) {
	ctx := context.Background()
	key := cache.ParsedQuizKey(cachedContent)

	t.Run("WritesWithTTL", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, 30*time.Minute)

		mockCache.On("Set", ctx, key, mock.AnythingOfType("string"), 30*time.Minute).
			Run(func(args mock.Arguments) {
				var stored domain.ParsedQuiz
				require.NoError(t, json.Unmarshal([]byte(args.String(2)), &stored))
				assert.Equal(t, cachedQuiz(), stored)
			}).
			Return(nil).Once()

		assert.NoError(t, svc.PutParsed(ctx, cachedContent, cachedQuiz()))
		mockCache.AssertExpectations(t)
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, 0)
		mockCache.On("Set", ctx, key, mock.Anything, DefaultParseCacheExpiration).Return(nil).Once()

		assert.NoError(t, svc.PutParsed(ctx, cachedContent, cachedQuiz()))
		mockCache.AssertExpectations(t)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockCache := new(MockCache)
		svc := NewParseCacheService(mockCache, time.Hour)
		mockCache.On("Set", ctx, key, mock.Anything, time.Hour).Return(errors.New("READONLY")).Once()

		err := svc.PutParsed(ctx, cachedContent, cachedQuiz())
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeCacheError, domainErr.Code)
	})
}

func TestParseCacheService_Invalidate(t *testing.T) {
	ctx := context.Background()
	mockCache := new(MockCache)
	svc := NewParseCacheService(mockCache, time.Hour)

	mockCache.On("Delete", ctx, cache.ParsedQuizKey(cachedContent)).Return(nil).Once()
	assert.NoError(t, svc.Invalidate(ctx, cachedContent))

	mockCache.On("Delete", ctx, cache.ParsedQuizKey("other")).Return(errors.New("timeout")).Once()
	assert.Error(t, svc.Invalidate(ctx, "other"))

	mockCache.AssertExpectations(t)
}

func TestParseCacheService_NilCache(t *testing.T) {
	ctx := context.Background()
	svc := NewParseCacheService(nil, 0)

	got, err := svc.GetParsed(ctx, cachedContent)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, svc.PutParsed(ctx, cachedContent, cachedQuiz()))
	assert.NoError(t, svc.Invalidate(ctx, cachedContent))
}
