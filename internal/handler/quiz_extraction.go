package handler

import (
	"quiz-lens/internal/dto"
	"quiz-lens/internal/middleware"
	"quiz-lens/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizExtractionHandler handles quiz extraction HTTP requests
type QuizExtractionHandler struct {
	service service.QuizExtractionService
}

// NewQuizExtractionHandler creates a new QuizExtractionHandler instance
func NewQuizExtractionHandler(service service.QuizExtractionService) *QuizExtractionHandler {
	return &QuizExtractionHandler{
		service: service,
	}
}

// Parse godoc
// @Summary Parse a message into a quiz
// @Description Extracts multiple-choice questions from a chat message. When message_id is set and a quiz is found, the result is stored.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Message to parse"
// @Success 200 {object} dto.ParseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/parse [post]
func (h *QuizExtractionHandler) Parse(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedParseRequestKey).(*dto.ParseRequest)
	ctx := c.UserContext()

	if req.Refresh {
		// Refresh only replaces the cached result; storing still goes through ParseAndStore.
		if _, err := h.service.Refresh(ctx, req.Content); err != nil {
			return err
		}
	}

	quiz, extraction, err := h.service.ParseAndStore(ctx, req.MessageID, req.Content)
	if err != nil {
		return err
	}

	resp := dto.ParseResponse{ParsedQuiz: quiz}
	if extraction != nil {
		resp.ExtractionID = extraction.ID
	}
	return c.JSON(resp)
}

// Detect godoc
// @Summary Detect whether a message contains a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.DetectRequest true "Message to check"
// @Success 200 {object} dto.DetectResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /quiz/detect [post]
func (h *QuizExtractionHandler) Detect(c *fiber.Ctx) error {
	content := c.Locals(middleware.ValidatedContentKey).(string)

	isQuiz, err := h.service.IsQuiz(c.UserContext(), content)
	if err != nil {
		return err
	}
	return c.JSON(dto.DetectResponse{IsQuiz: isQuiz})
}

// ParseBatch godoc
// @Summary Parse several messages
// @Description Results are returned in request order.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.BatchParseRequest true "Messages to parse"
// @Success 200 {object} dto.BatchParseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/parse/batch [post]
func (h *QuizExtractionHandler) ParseBatch(c *fiber.Ctx) error {
	req := c.Locals(middleware.ValidatedBatchParseRequestKey).(*dto.BatchParseRequest)

	items := make([]service.BatchItem, len(req.Messages))
	for i, msg := range req.Messages {
		items[i] = service.BatchItem{MessageID: msg.MessageID, Content: msg.Content}
	}

	results, err := h.service.ParseBatch(c.UserContext(), items)
	if err != nil {
		return err
	}
	return c.JSON(dto.BatchParseResponse{Results: results})
}

// GetExtraction godoc
// @Summary Get a stored extraction
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID (ULID)"
// @Success 200 {object} dto.ExtractionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /extractions/{id} [get]
func (h *QuizExtractionHandler) GetExtraction(c *fiber.Ctx) error {
	id := c.Locals(middleware.ValidatedIDKey).(string)

	extraction, err := h.service.GetExtraction(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewExtractionResponse(extraction))
}

// GetLatestForMessage godoc
// @Summary Get the latest extraction stored for a message
// @Tags extractions
// @Produce json
// @Param messageId path string true "Message ID (ULID)"
// @Success 200 {object} dto.ExtractionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /messages/{messageId}/extraction [get]
func (h *QuizExtractionHandler) GetLatestForMessage(c *fiber.Ctx) error {
	messageID := c.Locals(middleware.ValidatedIDKey).(string)

	extraction, err := h.service.GetLatestForMessage(c.UserContext(), messageID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewExtractionResponse(extraction))
}
