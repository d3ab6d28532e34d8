package domain

import "context"

// QuizExtractionRepository persists parse results per chat message.
type QuizExtractionRepository interface {
	// SaveExtraction inserts a new extraction record.
	SaveExtraction(ctx context.Context, extraction *QuizExtraction) error
	// GetExtractionByID returns nil, nil when no row matches.
	GetExtractionByID(ctx context.Context, id string) (*QuizExtraction, error)
	// GetLatestExtractionByMessageID returns nil, nil when the message was never parsed.
	GetLatestExtractionByMessageID(ctx context.Context, messageID string) (*QuizExtraction, error)
}

// TransactionManager runs fn inside a database transaction carried by ctx.
// Repositories pick the transaction up from ctx; fn's error rolls it back.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
