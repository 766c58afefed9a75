package service

import (
	"context"

	"paragraph-byte/internal/domain"

	"go.uber.org/zap"
)

// FallbackChain tries an ordered list of models one at a time until one of
// them produces text.
type FallbackChain struct {
	generator domain.TextGenerator
	logger    *zap.Logger
}

func NewFallbackChain(generator domain.TextGenerator, logger *zap.Logger) *FallbackChain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackChain{generator: generator, logger: logger}
}

// TryModelsInOrder calls the generator for each model in order and returns
// the first successful result. It returns domain.NoResult once every model
// has been tried, or as soon as ctx is done.
func (f *FallbackChain) TryModelsInOrder(ctx context.Context, models []string, prompt string) domain.GenerationResult {
	f.logger.Debug("Starting generation cycle", zap.Int("models", len(models)))

	for i, model := range models {
		if err := ctx.Err(); err != nil {
			f.logger.Warn("Generation cycle abandoned", zap.Int("attempted", i), zap.Error(err))
			return domain.NoResult()
		}

		result := f.generator.Generate(ctx, model, prompt)
		if result.OK() {
			f.logger.Info("Model produced content", zap.String("model", model), zap.Int("attempt", i+1))
			return result
		}
		f.logger.Warn("Model failed to generate content", zap.String("model", model), zap.Int("attempt", i+1))
	}

	return domain.NoResult()
}
