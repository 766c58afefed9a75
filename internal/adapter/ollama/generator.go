package ollama

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paragraph-byte/internal/config"
	"paragraph-byte/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// Generator serves the local model at the tail of the fallback chain.
type Generator struct {
	llm    llms.Model
	logger *zap.Logger
}

// NewGenerator wraps an existing langchaingo model.
func NewGenerator(llm llms.Model, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{llm: llm, logger: logger}
}

// NewFromConfig builds a generator from cfg. No connection is made until the first call.
func NewFromConfig(cfg config.OllamaConfig, logger *zap.Logger) (*Generator, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return NewGenerator(llm, logger), nil
}

// Generate implements domain.TextGenerator. The model argument may carry the
// "ollama/" routing prefix; the underlying client is already bound to a model.
func (g *Generator) Generate(ctx context.Context, model string, prompt string) domain.GenerationResult {
	start := time.Now()
	log := g.logger.With(zap.String("model", model))

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		log.Warn("Ollama attempt failed", zap.Duration("latency", time.Since(start)), zap.Error(err))
		return domain.NoResult()
	}

	text := strings.TrimSpace(stripThinking(response))
	if text == "" {
		log.Warn("Ollama returned no text", zap.Duration("latency", time.Since(start)))
		return domain.NoResult()
	}

	log.Info("Ollama attempt succeeded", zap.Duration("latency", time.Since(start)), zap.Int("length", len(text)))
	return domain.Generated(model, text)
}

// stripThinking drops a leading <think>...</think> block emitted by reasoning models.
func stripThinking(s string) string {
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end == -1 || end < start {
		return s
	}
	return s[:start] + s[end+len("</think>"):]
}

var _ domain.TextGenerator = (*Generator)(nil)
