package quizparser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

func TestParse_EmitsAnswerMissing(t *testing.T) {
	var (
		mu     sync.Mutex
		events []Event
	)
	p := New(WithObserver(ObserverFunc(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})))

	quiz := p.Parse("**Question 1:** Which planet is known as the Red Planet?\nA) Venus\nB) Mars")
	require.True(t, quiz.HasQuiz)

	require.Len(t, events, 1)
	assert.Equal(t, EventAnswerMissing, events[0].Kind)
	assert.Equal(t, 1, events[0].Number)
	assert.Contains(t, events[0].Sample, "Red Planet")
}

func TestWithObserver_NilKeepsDefault(t *testing.T) {
	p := New(WithObserver(nil))
	assert.IsType(t, nopObserver{}, p.observer)
}

func TestZapObserver(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	p := New(WithObserver(NewZapObserver(zap.New(core))))

	p.Parse("Question 1: What is the largest planet?\nA) Mars\nB) Jupiter\nAnswer: B\n" +
		"Question 2: What is the smallest planet?\nA) Mercury\nB) Venus")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "Found answer for question", entries[0].Message)
	assert.Equal(t, "quizparser", entries[0].LoggerName)
	assert.Equal(t, "B", entries[0].ContextMap()["answer"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "No answer found for question", entries[1].Message)
	assert.EqualValues(t, 2, entries[1].ContextMap()["question"])
}

func TestNewZapObserver_NilLogger(t *testing.T) {
	assert.IsType(t, nopObserver{}, NewZapObserver(nil))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "answer_found", EventAnswerFound.String())
	assert.Equal(t, "answer_missing", EventAnswerMissing.String())
	assert.Equal(t, "question_discarded", EventQuestionDiscarded.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo wörld", 5))
	assert.Equal(t, "short", truncateRunes("short", 200))
}
