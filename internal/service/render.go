package service

import (
	"context"

	"quiz-lens/internal/domain"
	"quiz-lens/internal/dto"
	"quiz-lens/internal/sanitize"
)

// RenderService turns a chat message into display-ready output: a quiz when
// one is found, sanitized HTML otherwise.
type RenderService interface {
	Render(ctx context.Context, content string) (*dto.RenderResponse, error)
}

type renderService struct {
	extraction QuizExtractionService
	sanitizer  *sanitize.Sanitizer
}

// NewRenderService creates a new instance of renderService
func NewRenderService(extraction QuizExtractionService, sanitizer *sanitize.Sanitizer) RenderService {
	if sanitizer == nil {
		sanitizer = sanitize.New()
	}
	return &renderService{extraction: extraction, sanitizer: sanitizer}
}

func (s *renderService) Render(ctx context.Context, content string) (*dto.RenderResponse, error) {
	quiz, err := s.extraction.Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	if !quiz.HasQuiz {
		return &dto.RenderResponse{
			Kind: dto.RenderKindText,
			HTML: s.sanitizer.Sanitize(content),
		}, nil
	}

	return &dto.RenderResponse{
		Kind: dto.RenderKindQuiz,
		Quiz: s.sanitizeQuiz(quiz),
	}, nil
}

// sanitizeQuiz returns a sanitized copy. quiz may be shared with the cache and
// concurrent callers, so its question and option slices are never written to.
func (s *renderService) sanitizeQuiz(quiz domain.ParsedQuiz) *domain.ParsedQuiz {
	out := quiz
	out.IntroText = s.sanitizer.Sanitize(quiz.IntroText)
	out.OutroText = s.sanitizer.Sanitize(quiz.OutroText)
	out.Questions = make([]domain.QuizQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		q.Question = s.sanitizer.Sanitize(q.Question)
		q.Explanation = s.sanitizer.Sanitize(q.Explanation)
		q.DetailedExplanation = s.sanitizer.Sanitize(q.DetailedExplanation)
		q.Hint = s.sanitizer.Sanitize(q.Hint)

		options := make([]domain.Option, len(q.Options))
		for j, opt := range q.Options {
			opt.Text = s.sanitizer.Sanitize(opt.Text)
			options[j] = opt
		}
		q.Options = options
		out.Questions[i] = q
	}
	return &out
}
