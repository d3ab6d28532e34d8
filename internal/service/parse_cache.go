package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quiz-lens/internal/cache"
	"quiz-lens/internal/domain"
	"quiz-lens/internal/logger"

	"go.uber.org/zap"
)

// DefaultParseCacheExpiration applies when no TTL is configured.
const DefaultParseCacheExpiration = 24 * time.Hour

// ParseCacheService stores parse results keyed by the content hash.
type ParseCacheService interface {
	// GetParsed returns nil, nil on a miss.
	GetParsed(ctx context.Context, content string) (*domain.ParsedQuiz, error)
	PutParsed(ctx context.Context, content string, quiz domain.ParsedQuiz) error
	Invalidate(ctx context.Context, content string) error
}

type parseCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewParseCacheService creates a new instance of parseCacheServiceImpl.
// A nil cache turns every call into a no-op miss.
func NewParseCacheService(cache domain.Cache, ttl time.Duration) ParseCacheService {
	if ttl <= 0 {
		ttl = DefaultParseCacheExpiration
	}
	return &parseCacheServiceImpl{cache: cache, ttl: ttl}
}

func (s *parseCacheServiceImpl) GetParsed(ctx context.Context, content string) (*domain.ParsedQuiz, error) {
	if s.cache == nil {
		return nil, nil
	}

	key := cache.ParsedQuizKey(content)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("ParseCacheService: cache miss", zap.String("key", key))
			return nil, nil
		}
		return nil, domain.NewCacheError("failed to read parse cache", err)
	}

	var quiz domain.ParsedQuiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		// A corrupt entry is treated as a miss and overwritten by the next put.
		logger.Get().Warn("ParseCacheService: failed to unmarshal cached quiz",
			zap.Error(err),
			zap.String("key", key))
		return nil, nil
	}
	if quiz.Questions == nil {
		quiz.Questions = []domain.QuizQuestion{}
	}
	return &quiz, nil
}

func (s *parseCacheServiceImpl) PutParsed(ctx context.Context, content string, quiz domain.ParsedQuiz) error {
	if s.cache == nil {
		return nil
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		return domain.NewInternalError("failed to marshal parsed quiz", err)
	}

	key := cache.ParsedQuizKey(content)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewCacheError("failed to write parse cache", err)
	}
	return nil
}

func (s *parseCacheServiceImpl) Invalidate(ctx context.Context, content string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, cache.ParsedQuizKey(content)); err != nil {
		return domain.NewCacheError("failed to delete parse cache entry", err)
	}
	return nil
}
