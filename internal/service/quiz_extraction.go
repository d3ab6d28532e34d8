package service

import (
	"context"

	"quiz-lens/internal/cache"
	"quiz-lens/internal/config"
	"quiz-lens/internal/domain"
	"quiz-lens/internal/logger"
	"quiz-lens/internal/quizparser"
	"quiz-lens/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// BatchItem is one message of a batch parse.
type BatchItem struct {
	MessageID string
	Content   string
}

// QuizExtractionService defines the interface for quiz extraction operations
type QuizExtractionService interface {
	// Parse returns the quiz carried by content, served from cache when possible.
	Parse(ctx context.Context, content string) (domain.ParsedQuiz, error)
	// Refresh drops any cached result for content and parses it again.
	Refresh(ctx context.Context, content string) (domain.ParsedQuiz, error)
	// IsQuiz reports whether Parse would find a quiz.
	IsQuiz(ctx context.Context, content string) (bool, error)
	// ParseAndStore parses content and, when a quiz is found and messageID is
	// set, persists it. The extraction is nil when nothing was stored.
	ParseAndStore(ctx context.Context, messageID, content string) (domain.ParsedQuiz, *domain.QuizExtraction, error)
	// ParseBatch returns results in input order. Found quizzes of items with a
	// message ID are stored in a single transaction.
	ParseBatch(ctx context.Context, items []BatchItem) ([]domain.ParsedQuiz, error)
	GetExtraction(ctx context.Context, id string) (*domain.QuizExtraction, error)
	GetLatestForMessage(ctx context.Context, messageID string) (*domain.QuizExtraction, error)
}

// quizExtractionService implements QuizExtractionService
type quizExtractionService struct {
	parser     *quizparser.Parser
	parseCache ParseCacheService
	repo       domain.QuizExtractionRepository // nil when no database is configured
	tm         domain.TransactionManager       // nil when no database is configured
	cfg        config.ParserConfig
	newID      func() string
	group      singleflight.Group
}

// NewQuizExtractionService creates a new instance of quizExtractionService
func NewQuizExtractionService(
	parser *quizparser.Parser,
	parseCache ParseCacheService,
	repo domain.QuizExtractionRepository,
	tm domain.TransactionManager,
	cfg config.ParserConfig,
) QuizExtractionService {
	if parser == nil {
		parser = quizparser.New()
	}
	if parseCache == nil {
		parseCache = NewParseCacheService(nil, cfg.CacheTTL)
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	return &quizExtractionService{
		parser:     parser,
		parseCache: parseCache,
		repo:       repo,
		tm:         tm,
		cfg:        cfg,
		newID:      util.NewULID,
	}
}

// Parse implements QuizExtractionService
func (s *quizExtractionService) Parse(ctx context.Context, content string) (domain.ParsedQuiz, error) {
	if err := s.checkContent(content); err != nil {
		return domain.ParsedQuiz{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.ParsedQuiz{}, err
	}

	cached, err := s.parseCache.GetParsed(ctx, content)
	if err != nil {
		logger.Get().Warn("QuizExtractionService: parse cache read failed, parsing directly", zap.Error(err))
	} else if cached != nil {
		return *cached, nil
	}

	// Concurrent requests for the same content share one parse and one cache write.
	v, _, _ := s.group.Do(cache.ContentHash(content), func() (interface{}, error) {
		quiz := s.parser.Parse(content)
		if err := s.parseCache.PutParsed(context.WithoutCancel(ctx), content, quiz); err != nil {
			logger.Get().Warn("QuizExtractionService: parse cache write failed", zap.Error(err))
		}
		return quiz, nil
	})
	return v.(domain.ParsedQuiz), nil
}

// Refresh implements QuizExtractionService
func (s *quizExtractionService) Refresh(ctx context.Context, content string) (domain.ParsedQuiz, error) {
	if err := s.parseCache.Invalidate(ctx, content); err != nil {
		logger.Get().Warn("QuizExtractionService: parse cache invalidation failed", zap.Error(err))
	}
	return s.Parse(ctx, content)
}

// IsQuiz implements QuizExtractionService
func (s *quizExtractionService) IsQuiz(ctx context.Context, content string) (bool, error) {
	quiz, err := s.Parse(ctx, content)
	if err != nil {
		return false, err
	}
	return quiz.HasQuiz, nil
}

// ParseAndStore implements QuizExtractionService
func (s *quizExtractionService) ParseAndStore(ctx context.Context, messageID, content string) (domain.ParsedQuiz, *domain.QuizExtraction, error) {
	quiz, err := s.Parse(ctx, content)
	if err != nil {
		return domain.ParsedQuiz{}, nil, err
	}
	if !s.shouldStore(messageID, quiz) {
		return quiz, nil, nil
	}

	extraction := domain.NewQuizExtraction(s.newID(), messageID, quiz)
	if err := s.repo.SaveExtraction(ctx, extraction); err != nil {
		return domain.ParsedQuiz{}, nil, domain.NewInternalError("Failed to store quiz extraction", err)
	}

	logger.Get().Info("QuizExtractionService: stored quiz extraction",
		zap.String("extraction_id", extraction.ID),
		zap.String("message_id", messageID),
		zap.Int("question_count", extraction.QuestionCount))
	return quiz, extraction, nil
}

// ParseBatch implements QuizExtractionService
func (s *quizExtractionService) ParseBatch(ctx context.Context, items []BatchItem) ([]domain.ParsedQuiz, error) {
	results := make([]domain.ParsedQuiz, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, item := range items {
		g.Go(func() error {
			quiz, err := s.Parse(gctx, item.Content)
			if err != nil {
				return err
			}
			results[i] = quiz
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var extractions []*domain.QuizExtraction
	for i, item := range items {
		if s.shouldStore(item.MessageID, results[i]) {
			extractions = append(extractions, domain.NewQuizExtraction(s.newID(), item.MessageID, results[i]))
		}
	}
	if len(extractions) == 0 {
		return results, nil
	}

	if err := s.saveAll(ctx, extractions); err != nil {
		return nil, domain.NewInternalError("Failed to store quiz extractions", err)
	}
	logger.Get().Info("QuizExtractionService: stored batch extractions",
		zap.Int("batch_size", len(items)),
		zap.Int("stored", len(extractions)))
	return results, nil
}

func (s *quizExtractionService) saveAll(ctx context.Context, extractions []*domain.QuizExtraction) error {
	save := func(ctx context.Context) error {
		for _, e := range extractions {
			if err := s.repo.SaveExtraction(ctx, e); err != nil {
				return err
			}
		}
		return nil
	}
	if s.tm == nil {
		return save(ctx)
	}
	return s.tm.WithTransaction(ctx, save)
}

// GetExtraction implements QuizExtractionService
func (s *quizExtractionService) GetExtraction(ctx context.Context, id string) (*domain.QuizExtraction, error) {
	if s.repo == nil {
		return nil, domain.NewExtractionNotFoundError(id)
	}

	extraction, err := s.repo.GetExtractionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz extraction", err)
	}
	if extraction == nil {
		return nil, domain.NewExtractionNotFoundError(id)
	}
	return extraction, nil
}

// GetLatestForMessage implements QuizExtractionService
func (s *quizExtractionService) GetLatestForMessage(ctx context.Context, messageID string) (*domain.QuizExtraction, error) {
	notFound := domain.NewNotFoundError("No quiz extraction for message").WithContext("message_id", messageID)
	if s.repo == nil {
		return nil, notFound
	}

	extraction, err := s.repo.GetLatestExtractionByMessageID(ctx, messageID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz extraction", err)
	}
	if extraction == nil {
		return nil, notFound
	}
	return extraction, nil
}

func (s *quizExtractionService) shouldStore(messageID string, quiz domain.ParsedQuiz) bool {
	if messageID == "" || !quiz.HasQuiz {
		return false
	}
	if s.repo == nil {
		logger.Get().Debug("QuizExtractionService: no extraction store configured, skipping save",
			zap.String("message_id", messageID))
		return false
	}
	return true
}

func (s *quizExtractionService) checkContent(content string) error {
	if s.cfg.MaxContentLength > 0 && len(content) > s.cfg.MaxContentLength {
		return domain.ValidationErrors{
			domain.NewOutOfRangeError("content", len(content), 0, s.cfg.MaxContentLength),
		}
	}
	return nil
}
