package main

import (
	"quiz-lens/internal/config"
	"quiz-lens/internal/domain"
	"quiz-lens/internal/handler"
	"quiz-lens/internal/logger"
	"quiz-lens/internal/middleware"
	"quiz-lens/internal/quizparser"
	"quiz-lens/internal/repository"
	"quiz-lens/internal/sanitize"
	"quiz-lens/internal/service"
	"quiz-lens/internal/validation"

	_ "quiz-lens/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
)

// dependencies are the optional backing stores. A nil field disables the
// feature it serves.
type dependencies struct {
	cache domain.Cache
	db    *sqlx.DB
}

// newApp wires services and handlers into a fiber app.
func newApp(cfg *config.Config, deps dependencies) *fiber.App {
	var (
		repo   domain.QuizExtractionRepository
		tm     domain.TransactionManager
		checks = map[string]handler.Pinger{}
	)
	if deps.db != nil {
		repo = repository.NewQuizExtractionDatabaseAdapter(deps.db)
		tm = repository.NewTransactionManagerAdapter(deps.db)
		checks["database"] = handler.PingFunc(deps.db.PingContext)
	}
	if deps.cache != nil {
		checks["redis"] = deps.cache
	}

	parser := quizparser.New(quizparser.WithObserver(quizparser.NewZapObserver(logger.Get())))
	parseCache := service.NewParseCacheService(deps.cache, cfg.Parser.CacheTTL)
	extractionService := service.NewQuizExtractionService(parser, parseCache, repo, tm, cfg.Parser)
	renderService := service.NewRenderService(extractionService, sanitize.New(cfg.Sanitizer.AllowedSchemes...))

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	vm := middleware.NewValidationMiddleware(validation.NewValidator(cfg.Parser.MaxContentLength, cfg.Parser.MaxBatchSize))
	handler.RegisterRoutes(app.Group("/api"), vm, handler.Handlers{
		Quiz:   handler.NewQuizExtractionHandler(extractionService),
		Render: handler.NewRenderHandler(renderService),
		Health: handler.NewHealthHandler(checks),
	})

	return app
}
