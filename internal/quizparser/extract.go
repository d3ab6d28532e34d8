package quizparser

import (
	"regexp"
	"strings"

	"quiz-lens/internal/domain"
)

// minQuestionLen is the question text length a segment must exceed to be kept.
const minQuestionLen = 5

// optionStrategy returns the options found in a question window, or nothing.
type optionStrategy func(window string) []domain.Option

// answerStrategy returns the uppercase answer letter found in a question window.
type answerStrategy func(window string) (string, bool)

var optionStrategies = []optionStrategy{
	parenOptions,
	dotOptions,
}

var answerStrategies = []answerStrategy{
	answerBy(answerEmphasizedRe),
	answerBy(answerPlainRe),
	answerBy(answerLooseRe),
	answerBy(answerLineRe),
}

// extractQuestion builds the question for one segment. window runs from the
// segment's marker to the next segment's marker (or end of text).
func (p *Parser) extractQuestion(seg Segment, window string) (domain.QuizQuestion, bool) {
	text := isolateQuestionText(seg.Text)
	if runeLen(text) <= minQuestionLen {
		p.observer.Observe(Event{
			Kind:   EventQuestionDiscarded,
			Number: seg.Number,
			Sample: truncateRunes(window, sampleLen),
		})
		return domain.QuizQuestion{}, false
	}

	q := domain.QuizQuestion{
		Number:              seg.Number,
		Question:            text,
		Options:             extractOptions(window),
		Explanation:         extractField(explanationRe, window),
		DetailedExplanation: extractField(detailedExplanationRe, window),
		Hint:                extractField(hintRe, window),
	}

	if answer, ok := extractAnswer(window); ok {
		q.Answer = answer
		p.observer.Observe(Event{Kind: EventAnswerFound, Number: seg.Number, Answer: answer})
	} else {
		p.observer.Observe(Event{
			Kind:   EventAnswerMissing,
			Number: seg.Number,
			Sample: truncateRunes(window, sampleLen),
		})
	}

	return q, true
}

// isolateQuestionText strips the marker, any option lines that leaked into
// the question and everything from the first option or label line onwards.
func isolateQuestionText(raw string) string {
	text := strings.TrimSpace(raw)
	for _, re := range leadingMarkerRes {
		text = re.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(text)
	text = leakedOptionsRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if optionShapeRe.MatchString(trimmed) || labelLineRe.MatchString(trimmed) {
			break
		}
		kept = append(kept, line)
	}

	return trimDanglingEmphasis(strings.TrimSpace(strings.Join(kept, "\n")))
}

// trimDanglingEmphasis drops an unpaired "**" left at either edge by a
// marker that was bolded together with its question.
func trimDanglingEmphasis(s string) string {
	if strings.Count(s, "**")%2 == 0 {
		return s
	}
	if strings.HasPrefix(s, "**") {
		return strings.TrimSpace(strings.TrimPrefix(s, "**"))
	}
	if strings.HasSuffix(s, "**") {
		return strings.TrimSpace(strings.TrimSuffix(s, "**"))
	}
	return s
}

// extractOptions never returns nil.
func extractOptions(window string) []domain.Option {
	for _, strategy := range optionStrategies {
		if opts := strategy(window); len(opts) > 0 {
			return opts
		}
	}
	return []domain.Option{}
}

// parenOptions reads "A) text" lines, skipping answer lines that share the shape.
func parenOptions(window string) []domain.Option {
	var opts []domain.Option
	for _, m := range findAll(optionParenRe, MatchOption, window) {
		text := strings.TrimSpace(m.Group(2))
		if text == "" || answerLeadRe.MatchString(text) {
			continue
		}
		opts = append(opts, domain.Option{Letter: strings.ToUpper(m.Group(1)), Text: text})
	}
	return opts
}

// dotOptions reads "A. text" and "A.text" lines, skipping abbreviations.
func dotOptions(window string) []domain.Option {
	var opts []domain.Option
	for _, m := range findAll(optionDotRe, MatchOption, window) {
		text := strings.TrimSpace(m.Group(2))
		if text == "" || !optionShapeRe.MatchString(strings.TrimSpace(m.Group(0))) {
			continue
		}
		opts = append(opts, domain.Option{Letter: strings.ToUpper(m.Group(1)), Text: text})
	}
	return opts
}

func extractAnswer(window string) (string, bool) {
	for _, strategy := range answerStrategies {
		if answer, ok := strategy(window); ok {
			return answer, true
		}
	}
	return "", false
}

func answerBy(re *regexp.Regexp) answerStrategy {
	return func(window string) (string, bool) {
		m, ok := findFirst(re, MatchAnswer, window)
		if !ok {
			return "", false
		}
		return strings.ToUpper(m.Group(1)), true
	}
}

func extractField(re *regexp.Regexp, window string) string {
	m, ok := findFirst(re, MatchField, window)
	if !ok {
		return ""
	}
	return trimDanglingEmphasis(strings.TrimSpace(m.Group(1)))
}
