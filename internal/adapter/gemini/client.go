package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"paragraph-byte/internal/config"
	"paragraph-byte/internal/domain"

	"go.uber.org/zap"
)

const maxErrorBody = 2048

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

// Client calls the generateContent REST endpoint of the Gemini API.
type Client struct {
	baseURL    string
	apiVersion string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Gemini client from cfg. A nil httpClient gets one
// with cfg.Timeout as the per-attempt timeout.
func NewClient(cfg config.GeminiConfig, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gemini base URL cannot be empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiVersion: cfg.APIVersion,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *Client) endpoint(model string) string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		c.baseURL, c.apiVersion, url.PathEscape(model), url.QueryEscape(c.apiKey))
}

// Generate implements domain.TextGenerator. Every failure is logged and
// reported as domain.NoResult.
func (c *Client) Generate(ctx context.Context, model string, prompt string) domain.GenerationResult {
	start := time.Now()
	log := c.logger.With(zap.String("model", model))
	log.Debug("Sending request to Gemini", zap.String("prompt", prompt))

	text, status, err := c.generate(ctx, model, prompt)
	if err != nil {
		log.Warn("Gemini attempt failed",
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return domain.NoResult()
	}

	log.Info("Gemini attempt succeeded",
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.Int("length", len(text)),
	)
	return domain.Generated(model, text)
}

func (c *Client) generate(ctx context.Context, model, prompt string) (string, int, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(model), bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", 0, fmt.Errorf("transport: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", resp.StatusCode, fmt.Errorf("gemini %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	text, err := extractText(out)
	return text, resp.StatusCode, err
}

func extractText(out generateResponse) (string, error) {
	if len(out.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}
	first := out.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 {
		return "", errors.New("first candidate has no parts")
	}
	text := strings.TrimSpace(first.Parts[0].Text)
	if text == "" {
		return "", errors.New("first candidate text is empty")
	}
	return text, nil
}

var _ domain.TextGenerator = (*Client)(nil)
