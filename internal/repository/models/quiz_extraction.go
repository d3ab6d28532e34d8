package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-lens/internal/domain"
)

// QuizPayload stores a parsed quiz as a JSON CLOB.
type QuizPayload domain.ParsedQuiz

// Value implements the driver.Valuer interface
func (p QuizPayload) Value() (driver.Value, error) {
	quiz := domain.ParsedQuiz(p)
	if quiz.Questions == nil {
		quiz.Questions = []domain.QuizQuestion{}
	}
	data, err := json.Marshal(quiz)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (p *QuizPayload) Scan(value interface{}) error {
	if value == nil {
		*p = QuizPayload(domain.EmptyQuiz())
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("QuizPayload Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(raw) == 0 || string(raw) == "null" {
		*p = QuizPayload(domain.EmptyQuiz())
		return nil
	}

	var quiz domain.ParsedQuiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return fmt.Errorf("QuizPayload Scan: %w", err)
	}
	if quiz.Questions == nil {
		quiz.Questions = []domain.QuizQuestion{}
	}
	*p = QuizPayload(quiz)
	return nil
}

// QuizExtraction is a row of QUIZ_EXTRACTIONS.
type QuizExtraction struct {
	ID            string      `db:"ID"`             // ULID
	MessageID     string      `db:"MESSAGE_ID"`     // chat message the quiz was parsed from
	HasQuiz       int         `db:"HAS_QUIZ"`       // 0 or 1, Oracle has no boolean column
	QuestionCount int         `db:"QUESTION_COUNT"` // len(Payload.Questions)
	Payload       QuizPayload `db:"PAYLOAD"`        // JSON encoded ParsedQuiz
	CreatedAt     time.Time   `db:"CREATED_AT"`
}
