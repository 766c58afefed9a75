package middleware

import (
	"paragraph-byte/internal/config"
	"paragraph-byte/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit limits requests per client IP. A nil storage keeps counters in memory.
func RateLimit(cfg config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	limiterCfg := limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return domain.NewRateLimitedError()
		},
	}
	if storage != nil {
		limiterCfg.Storage = storage
	}
	return limiter.New(limiterCfg)
}
