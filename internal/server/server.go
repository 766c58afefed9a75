package server

import (
	"net/http"

	"paragraph-byte/internal/adapter/gemini"
	"paragraph-byte/internal/adapter/ollama"
	"paragraph-byte/internal/adapter/router"
	"paragraph-byte/internal/cache"
	"paragraph-byte/internal/config"
	"paragraph-byte/internal/domain"
	"paragraph-byte/internal/handler"
	"paragraph-byte/internal/middleware"
	"paragraph-byte/internal/prompt"
	"paragraph-byte/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// NewParagraphService wires the prompt selector and the generator chain
// described by cfg. httpClient may be nil.
func NewParagraphService(cfg *config.Config, httpClient *http.Client, logger *zap.Logger) (service.ParagraphService, error) {
	geminiClient, err := gemini.NewClient(cfg.Gemini, httpClient, logger.Named("gemini"))
	if err != nil {
		return nil, err
	}

	var local domain.TextGenerator
	if cfg.Ollama.ServerURL != "" {
		gen, err := ollama.NewFromConfig(cfg.Ollama, logger.Named("ollama"))
		if err != nil {
			return nil, err
		}
		local = gen
		logger.Info("Local fallback model enabled",
			zap.String("server_url", cfg.Ollama.ServerURL),
			zap.String("model", cfg.Ollama.Model),
		)
	}

	generator := router.New(geminiClient, local, logger)
	return service.NewParagraphService(prompt.NewSelector(), generator, cfg.ModelChain(), logger.Named("paragraph")), nil
}

// New builds the fiber app. storage is optional; without it the rate
// limiter keeps its counters in process memory and /api/health skips Redis.
func New(cfg *config.Config, paragraphService service.ParagraphService, storage *cache.RedisStorage, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "paragraph-byte",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	var (
		limiterStorage fiber.Storage
		pinger         handler.Pinger
	)
	if storage != nil {
		limiterStorage = storage
		pinger = storage
	}

	app.Get("/swagger/*", swagger.HandlerDefault)

	paragraphHandler := handler.NewParagraphHandler(paragraphService, logger)
	healthHandler := handler.NewHealthHandler(pinger, logger)

	// Health checks are not rate limited.
	apiGroup := app.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/paragraph", middleware.RateLimit(cfg.RateLimit, limiterStorage), paragraphHandler.GetParagraph)

	app.Use(func(c *fiber.Ctx) error {
		return domain.NewNotFoundError("Route not found: " + c.Path())
	})

	return app
}
