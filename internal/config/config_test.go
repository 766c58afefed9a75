package config

import (
	"testing"
	"time"

	"paragraph-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, "v1beta", cfg.Gemini.APIVersion)
	assert.Equal(t, domain.DefaultModels, cfg.Gemini.Models)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 30, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, "test", cfg.Logger.Env)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_MODELS", "model-a, model-b,,model-c")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:9999/")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, cfg.Gemini.Models)
	assert.Equal(t, "http://localhost:9999", cfg.Gemini.BaseURL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 5000}}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.Gemini.APIKey = "   "
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.Gemini.APIKey = "key"
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestModelChain(t *testing.T) {
	cfg := &Config{Gemini: GeminiConfig{Models: []string{"a", "b"}}}
	assert.Equal(t, []string{"a", "b"}, cfg.ModelChain())

	cfg.Ollama = OllamaConfig{ServerURL: "http://localhost:11434", Model: "qwen3:0.6b"}
	chain := cfg.ModelChain()
	assert.Equal(t, []string{"a", "b", "ollama/qwen3:0.6b"}, chain)
	assert.Equal(t, []string{"a", "b"}, cfg.Gemini.Models, "configured models must not be mutated")
}

func TestLoadConfig_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "bare seconds", value: "45", expected: 45 * time.Second},
		{name: "duration string", value: "30s", expected: 30 * time.Second},
		{name: "minutes", value: "1m", expected: time.Minute},
		{name: "garbage", value: "soon", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "test")
			t.Setenv("GEMINI_API_KEY", "secret")
			t.Setenv("GEMINI_TIMEOUT", tt.value)
			t.Setenv("RATE_LIMIT_WINDOW", tt.value)

			cfg, err := LoadConfig()
			require.NoError(t, err)

			assert.Equal(t, tt.expected, cfg.Gemini.Timeout)
			assert.Equal(t, tt.expected, cfg.RateLimit.Window)
			if tt.expected > 0 {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 5000},
			Gemini:    GeminiConfig{APIKey: "key", Timeout: 20 * time.Second},
			RateLimit: RateLimitConfig{Max: 30, Window: time.Minute},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "zero gemini timeout", mutate: func(c *Config) { c.Gemini.Timeout = 0 }, want: "gemini.timeout"},
		{name: "negative gemini timeout", mutate: func(c *Config) { c.Gemini.Timeout = -time.Second }, want: "gemini.timeout"},
		{name: "zero rate limit max", mutate: func(c *Config) { c.RateLimit.Max = 0 }, want: "rate_limit.max"},
		{name: "negative rate limit max", mutate: func(c *Config) { c.RateLimit.Max = -1 }, want: "rate_limit.max"},
		{name: "zero window", mutate: func(c *Config) { c.RateLimit.Window = 0 }, want: "rate_limit.window"},
		{
			name: "ollama enabled without timeout",
			mutate: func(c *Config) {
				c.Ollama = OllamaConfig{ServerURL: "http://localhost:11434", Model: "qwen3:0.6b"}
			},
			want: "ollama.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
