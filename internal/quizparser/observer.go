package quizparser

import "go.uber.org/zap"

// EventKind identifies a parser diagnostic.
type EventKind int

const (
	// EventAnswerFound fires when a question's answer letter was recovered.
	EventAnswerFound EventKind = iota
	// EventAnswerMissing fires when no answer pattern matched a question.
	EventAnswerMissing
	// EventQuestionDiscarded fires when a segment's question text was too short to keep.
	EventQuestionDiscarded
)

func (k EventKind) String() string {
	switch k {
	case EventAnswerFound:
		return "answer_found"
	case EventAnswerMissing:
		return "answer_missing"
	case EventQuestionDiscarded:
		return "question_discarded"
	default:
		return "unknown"
	}
}

// sampleLen bounds the section excerpt attached to events.
const sampleLen = 200

// Event is a diagnostic emitted while extracting one question.
type Event struct {
	Kind   EventKind
	Number int
	Answer string
	Sample string
}

// Observer receives parser diagnostics. Implementations must be safe for
// concurrent use when the same Parser is shared between goroutines.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// zapObserver forwards events to a zap logger.
type zapObserver struct {
	log *zap.Logger
}

// NewZapObserver logs found answers at debug and missing answers at warn.
func NewZapObserver(log *zap.Logger) Observer {
	if log == nil {
		return nopObserver{}
	}
	return &zapObserver{log: log.Named("quizparser")}
}

func (o *zapObserver) Observe(e Event) {
	switch e.Kind {
	case EventAnswerFound:
		o.log.Debug("Found answer for question",
			zap.Int("question", e.Number),
			zap.String("answer", e.Answer),
		)
	case EventAnswerMissing:
		o.log.Warn("No answer found for question",
			zap.Int("question", e.Number),
			zap.String("section_sample", e.Sample),
		)
	case EventQuestionDiscarded:
		o.log.Debug("Discarded question with too little text",
			zap.Int("question", e.Number),
			zap.String("section_sample", e.Sample),
		)
	}
}
