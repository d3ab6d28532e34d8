package dto

import (
	"time"

	"quiz-lens/internal/domain"
)

// ParseRequest carries one chat message to parse.
// @Description Request body for parsing a message
type ParseRequest struct {
	Content   string `json:"content"`
	MessageID string `json:"message_id,omitempty"` // ULID; when set, a found quiz is stored
	Refresh   bool   `json:"refresh,omitempty"`    // bypass the parse cache
}

// ParseResponse is the parsed quiz, plus the stored extraction ID when one was written.
// @Description Parsed quiz
type ParseResponse struct {
	domain.ParsedQuiz
	ExtractionID string `json:"extraction_id,omitempty"`
}

// DetectRequest represents a detection request
type DetectRequest struct {
	Content string `json:"content"`
}

// DetectResponse represents a detection result
type DetectResponse struct {
	IsQuiz bool `json:"is_quiz"`
}

// BatchParseRequest represents several messages parsed in one call
// @Description Request body for batch parsing
type BatchParseRequest struct {
	Messages []ParseRequest `json:"messages"`
}

// BatchParseResponse keeps results in request order
type BatchParseResponse struct {
	Results []domain.ParsedQuiz `json:"results"`
}

// ExtractionResponse represents a stored extraction in the API response
// @Description Stored quiz extraction
type ExtractionResponse struct {
	ID            string            `json:"id"`
	MessageID     string            `json:"message_id"`
	HasQuiz       bool              `json:"has_quiz"`
	QuestionCount int               `json:"question_count"`
	Quiz          domain.ParsedQuiz `json:"quiz"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewExtractionResponse maps a domain extraction to its API shape
func NewExtractionResponse(e *domain.QuizExtraction) *ExtractionResponse {
	if e == nil {
		return nil
	}
	return &ExtractionResponse{
		ID:            e.ID,
		MessageID:     e.MessageID,
		HasQuiz:       e.HasQuiz,
		QuestionCount: e.QuestionCount,
		Quiz:          e.Quiz,
		CreatedAt:     e.CreatedAt,
	}
}

// Render kinds
const (
	RenderKindQuiz = "quiz"
	RenderKindText = "text"
)

// RenderRequest represents a message to prepare for display
type RenderRequest struct {
	Content string `json:"content"`
}

// RenderResponse is either a quiz or sanitized HTML, selected by Kind.
// @Description Display-ready message
type RenderResponse struct {
	Kind string             `json:"kind" yaml:"kind"`
	Quiz *domain.ParsedQuiz `json:"quiz,omitempty" yaml:"quiz,omitempty"`
	HTML string             `json:"html,omitempty" yaml:"html,omitempty"`
}

// HealthResponse represents the health check result
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
