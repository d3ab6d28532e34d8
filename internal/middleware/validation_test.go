package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quiz-lens/internal/dto"
	"quiz-lens/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validULID = "01HZY8Q4W2N3M5P7R9T1V3X5Z7"

func newValidationApp(vm *ValidationMiddleware) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/parse", vm.ValidateParseRequest(), func(c *fiber.Ctx) error {
		req := c.Locals(ValidatedParseRequestKey).(*dto.ParseRequest)
		return c.JSON(req)
	})
	app.Post("/detect", vm.ValidateContentRequest(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(ValidatedContentKey).(string))
	})
	app.Post("/batch", vm.ValidateBatchParseRequest(), func(c *fiber.Ctx) error {
		req := c.Locals(ValidatedBatchParseRequestKey).(*dto.BatchParseRequest)
		return c.JSON(fiber.Map{"count": len(req.Messages)})
	})
	app.Get("/extractions/:id", vm.ValidateExtractionID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(ValidatedIDKey).(string))
	})
	app.Get("/messages/:messageId", vm.ValidateMessageID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(ValidatedIDKey).(string))
	})
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestValidationMiddleware(t *testing.T) {
	app := newValidationApp(NewValidationMiddleware(validation.NewValidator(64, 2)))

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
	}{
		{"parse ok", jsonRequest("POST", "/parse", `{"content":"Question 1: What?","message_id":"`+validULID+`"}`), fiber.StatusOK},
		{"parse empty content", jsonRequest("POST", "/parse", `{"content":"   "}`), fiber.StatusBadRequest},
		{"parse bad message id", jsonRequest("POST", "/parse", `{"content":"hi","message_id":"msg-1"}`), fiber.StatusBadRequest},
		{"parse too long", jsonRequest("POST", "/parse", `{"content":"`+strings.Repeat("x", 65)+`"}`), fiber.StatusBadRequest},
		{"parse malformed body", jsonRequest("POST", "/parse", `{"content":`), fiber.StatusBadRequest},
		{"detect ok", jsonRequest("POST", "/detect", `{"content":"hello"}`), fiber.StatusOK},
		{"detect missing", jsonRequest("POST", "/detect", `{}`), fiber.StatusBadRequest},
		{"batch ok", jsonRequest("POST", "/batch", `{"messages":[{"content":"a"},{"content":"b"}]}`), fiber.StatusOK},
		{"batch empty", jsonRequest("POST", "/batch", `{"messages":[]}`), fiber.StatusBadRequest},
		{"batch too large", jsonRequest("POST", "/batch", `{"messages":[{"content":"a"},{"content":"b"},{"content":"c"}]}`), fiber.StatusBadRequest},
		{"batch bad item", jsonRequest("POST", "/batch", `{"messages":[{"content":"a"},{"content":""}]}`), fiber.StatusBadRequest},
		{"extraction ok", httptest.NewRequest("GET", "/extractions/"+validULID, nil), fiber.StatusOK},
		{"extraction bad id", httptest.NewRequest("GET", "/extractions/not-a-ulid", nil), fiber.StatusBadRequest},
		{"message ok", httptest.NewRequest("GET", "/messages/"+validULID, nil), fiber.StatusOK},
		{"message bad id", httptest.NewRequest("GET", "/messages/abc", nil), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestValidationMiddleware_StoresParsedRequest(t *testing.T) {
	app := newValidationApp(NewValidationMiddleware(nil))

	resp, err := app.Test(jsonRequest("POST", "/parse", `{"content":"hello","message_id":"`+validULID+`","refresh":true}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.ParseRequest
	decodeBody(t, resp.Body, &got)
	assert.Equal(t, dto.ParseRequest{Content: "hello", MessageID: validULID, Refresh: true}, got)
}
