// @title Paragraph Byte API
// @version 1.0
// @description Generates short paragraphs by difficulty using a fallback chain of generative models.
// @host localhost:5000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "paragraph-byte/cmd/api/docs"
	"paragraph-byte/internal/cache"
	"paragraph-byte/internal/config"
	"paragraph-byte/internal/logger"
	"paragraph-byte/internal/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Initialize(cfg.Logger)

	// run owns every deferred cleanup, so exit only after it returns.
	err = run(cfg, logger.Get())
	if err != nil {
		logger.Get().Error("Server stopped with error", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	paragraphService, err := server.NewParagraphService(cfg, nil, appLogger)
	if err != nil {
		return fmt.Errorf("create paragraph service: %w", err)
	}
	appLogger.Info("Paragraph service initialized", zap.Strings("models", cfg.ModelChain()))

	// Redis is optional; it only backs the shared rate limiter
	var storage *cache.RedisStorage
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		storage = cache.NewRedisStorage(redisClient, "limiter")
		defer func() {
			if err := storage.Close(); err != nil {
				appLogger.Warn("Failed to close Redis client", zap.Error(err))
			}
		}()
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	}

	app := server.New(cfg, paragraphService, storage, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	appLogger.Info("Server exited gracefully")
	return nil
}
