package validation

import (
	"fmt"
	"quiz-lens/internal/domain"
	"quiz-lens/internal/dto"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	DefaultMaxContentLength = 100_000
	DefaultMaxBatchSize     = 50
)

// Validator provides request validation functionality
type Validator struct {
	maxContentLength int
	maxBatchSize     int
}

// NewValidator creates a validator; non-positive limits fall back to the defaults.
func NewValidator(maxContentLength, maxBatchSize int) *Validator {
	if maxContentLength <= 0 {
		maxContentLength = DefaultMaxContentLength
	}
	if maxBatchSize <= 0 {
		maxBatchSize = DefaultMaxBatchSize
	}
	return &Validator{maxContentLength: maxContentLength, maxBatchSize: maxBatchSize}
}

// ValidateContent checks a message body. Whitespace-only content is rejected
// at the API; the parser itself accepts it.
func (v *Validator) ValidateContent(field, content string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(content) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if len(content) > v.maxContentLength {
		errors = append(errors, domain.NewOutOfRangeError(field, len(content), 1, v.maxContentLength))
	}

	return errors
}

// ValidateMessageID accepts an empty ID (nothing is stored) or a ULID.
func (v *Validator) ValidateMessageID(field, messageID string) domain.ValidationErrors {
	if messageID == "" {
		return nil
	}
	if !isValidULID(messageID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, messageID)}
	}
	return nil
}

// ValidateExtractionID requires a ULID.
func (v *Validator) ValidateExtractionID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("id")}
	}
	if !isValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", id)}
	}
	return nil
}

// ValidateParseRequest validates the parse request
func (v *Validator) ValidateParseRequest(req *dto.ParseRequest) domain.ValidationErrors {
	errors := v.ValidateContent("content", req.Content)
	errors = append(errors, v.ValidateMessageID("message_id", req.MessageID)...)
	return errors
}

// ValidateBatchParseRequest validates the batch size and every message in it.
func (v *Validator) ValidateBatchParseRequest(req *dto.BatchParseRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Messages) == 0 || len(req.Messages) > v.maxBatchSize {
		errors = append(errors, domain.NewOutOfRangeError("messages", len(req.Messages), 1, v.maxBatchSize))
		return errors
	}

	for i, msg := range req.Messages {
		prefix := fmt.Sprintf("messages[%d].", i)
		errors = append(errors, v.ValidateContent(prefix+"content", msg.Content)...)
		errors = append(errors, v.ValidateMessageID(prefix+"message_id", msg.MessageID)...)
	}

	return errors
}

// isValidULID checks if the string is a valid ULID (Crockford base32, 26 chars).
func isValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
