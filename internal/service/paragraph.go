package service

import (
	"context"

	"paragraph-byte/internal/domain"

	"go.uber.org/zap"
)

// ParagraphService defines the interface for paragraph generation
type ParagraphService interface {
	GetParagraph(ctx context.Context, difficulty domain.Difficulty) (string, error)
}

type paragraphService struct {
	selector domain.PromptSelector
	chain    *FallbackChain
	models   []string
	logger   *zap.Logger
}

// NewParagraphService creates a ParagraphService that walks models in the given order.
func NewParagraphService(selector domain.PromptSelector, generator domain.TextGenerator, models []string, logger *zap.Logger) ParagraphService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &paragraphService{
		selector: selector,
		chain:    NewFallbackChain(generator, logger),
		models:   append([]string(nil), models...),
		logger:   logger,
	}
}

// GetParagraph returns generated text, or an ErrAllModelsFailed domain error
// when no model produced any.
func (s *paragraphService) GetParagraph(ctx context.Context, difficulty domain.Difficulty) (string, error) {
	prompt := s.selector.Select(difficulty)
	s.logger.Debug("Selected prompt",
		zap.String("difficulty", difficulty.String()),
		zap.String("prompt", prompt),
	)

	result := s.chain.TryModelsInOrder(ctx, s.models, prompt)
	if !result.OK() {
		s.logger.Warn("All model attempts failed to generate paragraph",
			zap.String("difficulty", difficulty.String()),
			zap.Int("models", len(s.models)),
		)
		return "", domain.NewAllModelsFailedError(len(s.models))
	}

	s.logger.Info("Generated paragraph",
		zap.String("difficulty", difficulty.String()),
		zap.String("model", result.Model),
	)
	return result.Text, nil
}
