package middleware

import (
	"quiz-lens/internal/domain"
	"quiz-lens/internal/dto"
	"quiz-lens/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys under which validated request values are stored.
const (
	ValidatedParseRequestKey      = "validated_parse_request"
	ValidatedBatchParseRequestKey = "validated_batch_parse_request"
	ValidatedContentKey           = "validated_content"
	ValidatedIDKey                = "validated_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	if validator == nil {
		validator = validation.NewValidator(0, 0)
	}
	return &ValidationMiddleware{validator: validator}
}

// ValidateParseRequest parses and validates the body of a parse request
func (vm *ValidationMiddleware) ValidateParseRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ParseRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Request body must be a JSON object")
		}

		if errors := vm.validator.ValidateParseRequest(&req); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedParseRequestKey, &req)
		return c.Next()
	}
}

// ValidateContentRequest validates bodies that only carry content (detect, render)
func (vm *ValidationMiddleware) ValidateContentRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.DetectRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Request body must be a JSON object")
		}

		if errors := vm.validator.ValidateContent("content", req.Content); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedContentKey, req.Content)
		return c.Next()
	}
}

// ValidateBatchParseRequest validates the batch size and each message
func (vm *ValidationMiddleware) ValidateBatchParseRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.BatchParseRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Request body must be a JSON object")
		}

		if errors := vm.validator.ValidateBatchParseRequest(&req); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedBatchParseRequestKey, &req)
		return c.Next()
	}
}

// ValidateExtractionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateExtractionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errors := vm.validator.ValidateExtractionID(id); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidateMessageID validates the :messageId path parameter
func (vm *ValidationMiddleware) ValidateMessageID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("messageId")
		if id == "" {
			return domain.ValidationErrors{domain.NewMissingFieldError("message_id")}
		}
		if errors := vm.validator.ValidateMessageID("message_id", id); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}
