package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"quiz-lens/internal/adapter"
	"quiz-lens/internal/config"
	"quiz-lens/internal/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizMessage = "Here is a short quiz on the solar system for you.\n\n" +
	"**Question 1:** Which planet is closest to the Sun?\nA) Venus\nB) Mercury\nC) Mars\nD) Earth\n**Answer:** B\n\n" +
	"**Question 2:** Which planet has the most moons?\nA) Saturn\nB) Neptune\nC) Earth\nD) Mars\n**Answer:** A"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second, BodyLimit: 1 << 20},
		Parser: config.ParserConfig{MaxContentLength: 10_000, CacheTTL: time.Hour, BatchConcurrency: 2, MaxBatchSize: 5},
	}
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func jsonBody(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestApp_ParseWithoutBackingStores(t *testing.T) {
	app := newApp(testConfig(), dependencies{})

	resp := do(t, app, "POST", "/api/quiz/parse", jsonBody(t, dto.ParseRequest{Content: quizMessage}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ParseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.HasQuiz)
	require.Len(t, body.Questions, 2)
	assert.Equal(t, "B", body.Questions[0].Answer)
	assert.Equal(t, "A", body.Questions[1].Answer)
	assert.Equal(t, "Here is a short quiz on the solar system for you.", body.IntroText)
	assert.Empty(t, body.ExtractionID)
}

func TestApp_DetectAndRender(t *testing.T) {
	app := newApp(testConfig(), dependencies{})

	resp := do(t, app, "POST", "/api/quiz/detect", jsonBody(t, dto.DetectRequest{Content: quizMessage}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detect dto.DetectResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detect))
	assert.True(t, detect.IsQuiz)

	resp = do(t, app, "POST", "/api/render", jsonBody(t, dto.RenderRequest{Content: `<p>Plain <em>answer</em></p><script>steal()</script>`}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var render dto.RenderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&render))
	assert.Equal(t, dto.RenderKindText, render.Kind)
	assert.Equal(t, "<p>Plain <em>answer</em></p>", render.HTML)
}

func TestApp_ParseStoresExtraction(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	defer db.Close()

	messageID := "01HZY8Q4W2N3M5P7R9T1V3X5Z8"
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO QUIZ_EXTRACTIONS`)).
		WithArgs(sqlmock.AnyArg(), messageID, 1, 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := newApp(testConfig(), dependencies{db: db})

	resp := do(t, app, "POST", "/api/quiz/parse", jsonBody(t, dto.ParseRequest{Content: quizMessage, MessageID: messageID}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ParseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.ExtractionID, 26)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_ExtractionLookupWithoutStore(t *testing.T) {
	app := newApp(testConfig(), dependencies{})

	resp := do(t, app, "GET", "/api/extractions/01HZY8Q4W2N3M5P7R9T1V3X5Z7", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApp_HealthReportsRedis(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	app := newApp(testConfig(), dependencies{cache: adapter.NewRedisCacheAdapter(client)})

	resp := do(t, app, "GET", "/api/health", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"redis": "up"}, body.Checks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_UnknownRoute(t *testing.T) {
	app := newApp(testConfig(), dependencies{})

	resp := do(t, app, "GET", "/api/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApp_SwaggerDoc(t *testing.T) {
	app := newApp(testConfig(), dependencies{})

	resp := do(t, app, "GET", "/swagger/doc.json", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var doc map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "/api", doc["basePath"])
	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/quiz/parse")
	assert.Contains(t, paths, "/render")
}
