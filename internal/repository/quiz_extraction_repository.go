package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-lens/internal/domain"
	"quiz-lens/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const extractionColumns = `ID, MESSAGE_ID, HAS_QUIZ, QUESTION_COUNT, PAYLOAD, CREATED_AT`

// QuizExtractionDatabaseAdapter implements domain.QuizExtractionRepository using sqlx.
type QuizExtractionDatabaseAdapter struct {
	db DBTX
}

// NewQuizExtractionDatabaseAdapter creates a new instance of QuizExtractionDatabaseAdapter
func NewQuizExtractionDatabaseAdapter(db *sqlx.DB) domain.QuizExtractionRepository {
	return &QuizExtractionDatabaseAdapter{db: db}
}

// SaveExtraction implements domain.QuizExtractionRepository
func (a *QuizExtractionDatabaseAdapter) SaveExtraction(ctx context.Context, extraction *domain.QuizExtraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO QUIZ_EXTRACTIONS (ID, MESSAGE_ID, HAS_QUIZ, QUESTION_COUNT, PAYLOAD, CREATED_AT)
		VALUES (:ID, :MESSAGE_ID, :HAS_QUIZ, :QUESTION_COUNT, :PAYLOAD, :CREATED_AT)`

	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, fromDomainExtraction(extraction)); err != nil {
		return fmt.Errorf("failed to save quiz extraction: %w", err)
	}
	return nil
}

// GetExtractionByID implements domain.QuizExtractionRepository
func (a *QuizExtractionDatabaseAdapter) GetExtractionByID(ctx context.Context, id string) (*domain.QuizExtraction, error) {
	query := `SELECT ` + extractionColumns + ` FROM QUIZ_EXTRACTIONS WHERE ID = ?`
	return a.getOne(ctx, query, id)
}

// GetLatestExtractionByMessageID implements domain.QuizExtractionRepository
func (a *QuizExtractionDatabaseAdapter) GetLatestExtractionByMessageID(ctx context.Context, messageID string) (*domain.QuizExtraction, error) {
	query := `SELECT ` + extractionColumns + ` FROM QUIZ_EXTRACTIONS
		WHERE MESSAGE_ID = ?
		ORDER BY CREATED_AT DESC, ID DESC
		FETCH FIRST 1 ROWS ONLY`
	return a.getOne(ctx, query, messageID)
}

func (a *QuizExtractionDatabaseAdapter) getOne(ctx context.Context, query string, arg string) (*domain.QuizExtraction, error) {
	db := GetExecutor(ctx, a.db)

	var row models.QuizExtraction
	if err := db.GetContext(ctx, &row, db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz extraction: %w", err)
	}
	return toDomainExtraction(&row), nil
}

func toDomainExtraction(m *models.QuizExtraction) *domain.QuizExtraction {
	if m == nil {
		return nil
	}
	return &domain.QuizExtraction{
		ID:            m.ID,
		MessageID:     m.MessageID,
		HasQuiz:       m.HasQuiz != 0,
		QuestionCount: m.QuestionCount,
		Quiz:          domain.ParsedQuiz(m.Payload),
		CreatedAt:     m.CreatedAt,
	}
}

func fromDomainExtraction(e *domain.QuizExtraction) *models.QuizExtraction {
	if e == nil {
		return nil
	}
	hasQuiz := 0
	if e.HasQuiz {
		hasQuiz = 1
	}
	return &models.QuizExtraction{
		ID:            e.ID,
		MessageID:     e.MessageID,
		HasQuiz:       hasQuiz,
		QuestionCount: e.QuestionCount,
		Payload:       models.QuizPayload(e.Quiz),
		CreatedAt:     e.CreatedAt,
	}
}
