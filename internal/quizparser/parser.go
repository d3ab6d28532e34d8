// Package quizparser recovers multiple-choice quizzes from model-generated
// chat messages.
//
// Parsing is a pure pipeline: normalize, detect, segment, extract each
// question, extract border text, assemble. It performs no I/O, keeps no
// state between calls and never fails; text that is not a quiz yields a
// ParsedQuiz with HasQuiz false.
package quizparser

import "quiz-lens/internal/domain"

// Parser parses quiz messages. The zero value is not usable; call New.
// A Parser is safe for concurrent use as long as its Observer is.
type Parser struct {
	observer Observer
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithObserver routes extraction diagnostics to o.
func WithObserver(o Observer) ParserOption {
	return func(p *Parser) {
		if o != nil {
			p.observer = o
		}
	}
}

// New creates a Parser. Without options diagnostics are discarded.
func New(opts ...ParserOption) *Parser {
	p := &Parser{observer: nopObserver{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse parses content with a Parser that discards diagnostics.
func Parse(content string) domain.ParsedQuiz {
	return defaultParser.Parse(content)
}

// IsQuizContent reports whether Parse(content) finds a quiz.
func IsQuizContent(content string) bool {
	return defaultParser.IsQuizContent(content)
}

// Parse extracts the quiz carried by one message.
func (p *Parser) Parse(content string) domain.ParsedQuiz {
	normalized := normalize(content)
	if !looksLikeQuiz(normalized) {
		return domain.EmptyQuiz()
	}

	segments := segment(normalized)
	questions := make([]domain.QuizQuestion, 0, len(segments))
	for i, seg := range segments {
		next := len(normalized)
		if i+1 < len(segments) && segments[i+1].Start >= seg.Start {
			next = segments[i+1].Start
		}
		if q, ok := p.extractQuestion(seg, normalized[seg.Start:next]); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return domain.EmptyQuiz()
	}

	intro := extractIntro(normalized, segments[0])
	outro := extractOutro(normalized, segments[len(segments)-1])
	return assemble(questions, intro, outro)
}

// IsQuizContent reports whether p.Parse(content) finds a quiz.
func (p *Parser) IsQuizContent(content string) bool {
	return p.Parse(content).HasQuiz
}

func assemble(questions []domain.QuizQuestion, intro, outro string) domain.ParsedQuiz {
	if questions == nil {
		questions = []domain.QuizQuestion{}
	}
	return domain.ParsedQuiz{
		Questions: questions,
		HasQuiz:   len(questions) > 0,
		IntroText: intro,
		OutroText: outro,
	}
}
