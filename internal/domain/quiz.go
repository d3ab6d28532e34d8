package domain

import (
	"strings"
	"time"
)

// Option is one lettered choice of a multiple-choice question.
type Option struct {
	Letter string `json:"letter" yaml:"letter"` // A-D, uppercase
	Text   string `json:"text" yaml:"text"`
}

// QuizQuestion is a single question recovered from a model message.
// Empty optional fields mean the message did not carry them.
type QuizQuestion struct {
	Number              int      `json:"number" yaml:"number"`
	Question            string   `json:"question" yaml:"question"`
	Options             []Option `json:"options" yaml:"options"`
	Answer              string   `json:"answer,omitempty" yaml:"answer,omitempty"`
	Explanation         string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	DetailedExplanation string   `json:"detailed_explanation,omitempty" yaml:"detailed_explanation,omitempty"`
	Hint                string   `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// HasAnswer reports whether an answer letter was recovered.
func (q QuizQuestion) HasAnswer() bool {
	return q.Answer != ""
}

// OptionByLetter returns the first option carrying the given letter.
func (q QuizQuestion) OptionByLetter(letter string) (Option, bool) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for _, opt := range q.Options {
		if opt.Letter == letter {
			return opt, true
		}
	}
	return Option{}, false
}

// ParsedQuiz is the structured result of parsing one message.
// HasQuiz is always equal to len(Questions) > 0.
type ParsedQuiz struct {
	Questions []QuizQuestion `json:"questions" yaml:"questions"`
	HasQuiz   bool           `json:"has_quiz" yaml:"has_quiz"`
	IntroText string         `json:"intro_text,omitempty" yaml:"intro_text,omitempty"`
	OutroText string         `json:"outro_text,omitempty" yaml:"outro_text,omitempty"`
}

// EmptyQuiz is the result for text that carries no quiz.
func EmptyQuiz() ParsedQuiz {
	return ParsedQuiz{Questions: []QuizQuestion{}}
}

// QuizExtraction is a stored parse result for a chat message.
type QuizExtraction struct {
	ID            string
	MessageID     string
	HasQuiz       bool
	QuestionCount int
	Quiz          ParsedQuiz
	CreatedAt     time.Time
}

// NewQuizExtraction builds an extraction record for a message.
func NewQuizExtraction(id, messageID string, quiz ParsedQuiz) *QuizExtraction {
	return &QuizExtraction{
		ID:            id,
		MessageID:     messageID,
		HasQuiz:       quiz.HasQuiz,
		QuestionCount: len(quiz.Questions),
		Quiz:          quiz,
		CreatedAt:     time.Now(),
	}
}

// Validate validates the extraction before it is persisted
func (e *QuizExtraction) Validate() error {
	if e.ID == "" {
		return NewValidationError("extraction ID is required")
	}
	if e.MessageID == "" {
		return NewValidationError("message ID is required")
	}
	if e.HasQuiz != (e.QuestionCount > 0) {
		return NewValidationError("has_quiz must match question count")
	}
	return nil
}
