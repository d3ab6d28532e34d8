package handler

import (
	"quiz-lens/internal/middleware"
	"quiz-lens/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RenderHandler prepares chat messages for display
type RenderHandler struct {
	service service.RenderService
}

// NewRenderHandler creates a new RenderHandler instance
func NewRenderHandler(service service.RenderService) *RenderHandler {
	return &RenderHandler{service: service}
}

// Render godoc
// @Summary Render a message
// @Description Returns the quiz when one is found, otherwise the message as sanitized HTML.
// @Tags render
// @Accept json
// @Produce json
// @Param request body dto.RenderRequest true "Message to render"
// @Success 200 {object} dto.RenderResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /render [post]
func (h *RenderHandler) Render(c *fiber.Ctx) error {
	content := c.Locals(middleware.ValidatedContentKey).(string)

	resp, err := h.service.Render(c.UserContext(), content)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
