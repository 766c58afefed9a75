package router

import (
	"context"
	"strings"

	"paragraph-byte/internal/domain"

	"go.uber.org/zap"
)

// Router dispatches a model identifier to the generator that serves it.
// Identifiers carrying domain.OllamaModelPrefix go to the local generator;
// everything else goes to the primary one.
type Router struct {
	primary domain.TextGenerator
	local   domain.TextGenerator
	logger  *zap.Logger
}

func New(primary, local domain.TextGenerator, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{primary: primary, local: local, logger: logger}
}

// Generate implements domain.TextGenerator.
func (r *Router) Generate(ctx context.Context, model string, prompt string) domain.GenerationResult {
	if strings.HasPrefix(model, domain.OllamaModelPrefix) {
		if r.local == nil {
			r.logger.Warn("No local generator configured", zap.String("model", model))
			return domain.NoResult()
		}
		return r.local.Generate(ctx, model, prompt)
	}
	return r.primary.Generate(ctx, model, prompt)
}

var _ domain.TextGenerator = (*Router)(nil)
