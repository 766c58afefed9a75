package handler

import (
	"context"
	"time"

	"paragraph-byte/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is implemented by backing services the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger Pinger
	logger *zap.Logger
}

// NewHealthHandler creates a HealthHandler. pinger may be nil when the
// service runs without Redis.
func NewHealthHandler(pinger Pinger, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{pinger: pinger, logger: logger}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded"})
		}
	}
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
