package handler

import (
	"quiz-lens/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything mounted under the API prefix.
type Handlers struct {
	Quiz   *QuizExtractionHandler
	Render *RenderHandler
	Health *HealthHandler
}

// RegisterRoutes mounts the API on router.
func RegisterRoutes(router fiber.Router, vm *middleware.ValidationMiddleware, h Handlers) {
	router.Get("/health", h.Health.Health)

	quiz := router.Group("/quiz")
	quiz.Post("/parse", vm.ValidateParseRequest(), h.Quiz.Parse)
	quiz.Post("/parse/batch", vm.ValidateBatchParseRequest(), h.Quiz.ParseBatch)
	quiz.Post("/detect", vm.ValidateContentRequest(), h.Quiz.Detect)

	router.Get("/extractions/:id", vm.ValidateExtractionID(), h.Quiz.GetExtraction)
	router.Get("/messages/:messageId/extraction", vm.ValidateMessageID(), h.Quiz.GetLatestForMessage)

	router.Post("/render", vm.ValidateContentRequest(), h.Render.Render)
}
