package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"paragraph-byte/internal/domain"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not defined")

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Ollama    OllamaConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Models     []string
	Timeout    time.Duration
}

// OllamaConfig enables an optional local model appended to the end of the
// fallback chain. It is disabled when ServerURL is empty.
type OllamaConfig struct {
	ServerURL string
	Model     string
	Timeout   time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 130)
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("gemini.api_version", "v1beta")
	v.SetDefault("gemini.models", domain.DefaultModels)
	v.SetDefault("gemini.timeout", 20)
	v.SetDefault("ollama.model", "qwen3:0.6b")
	v.SetDefault("ollama.timeout", 20)
	v.SetDefault("rate_limit.max", 30)
	v.SetDefault("rate_limit.window", 60)
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
}

// LoadConfig reads config.yaml when present and applies environment overrides.
// The config file is optional; every value has a default except the API key.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  getSeconds(v, "server.read_timeout"),
			WriteTimeout: getSeconds(v, "server.write_timeout"),
		},
		Gemini: GeminiConfig{
			APIKey:     v.GetString("gemini.api_key"),
			BaseURL:    strings.TrimRight(v.GetString("gemini.base_url"), "/"),
			APIVersion: v.GetString("gemini.api_version"),
			Models:     v.GetStringSlice("gemini.models"),
			Timeout:    getSeconds(v, "gemini.timeout"),
		},
		Ollama: OllamaConfig{
			ServerURL: v.GetString("ollama.server_url"),
			Model:     v.GetString("ollama.model"),
			Timeout:   getSeconds(v, "ollama.timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		RateLimit: RateLimitConfig{
			Max:    v.GetInt("rate_limit.max"),
			Window: getSeconds(v, "rate_limit.window"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
	}

	// Override with the names the service has always used
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if port := os.Getenv("PORT"); port != "" {
		v.Set("server.port", port)
		config.Server.Port = v.GetInt("server.port")
	}
	if models := os.Getenv("GEMINI_MODELS"); models != "" {
		config.Gemini.Models = splitList(models)
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if len(config.Gemini.Models) == 0 {
		config.Gemini.Models = append([]string(nil), domain.DefaultModels...)
	}

	return config
}

// Validate reports configuration the service cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", c.Gemini.Timeout)
	}
	if c.Ollama.ServerURL != "" && c.Ollama.Timeout <= 0 {
		return fmt.Errorf("ollama.timeout must be positive, got %s", c.Ollama.Timeout)
	}
	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("rate_limit.max must be positive, got %d", c.RateLimit.Max)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window)
	}
	return nil
}

// getSeconds reads a duration that may be written as a bare number of
// seconds ("20") or as a Go duration string ("30s", "1m").
// Unparseable values yield 0 and are rejected by Validate.
func getSeconds(v *viper.Viper, key string) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return 0
}

// ModelChain returns the ordered model identifiers to try for each request.
// The local Ollama model, when configured, is always the last resort.
func (c *Config) ModelChain() []string {
	chain := append([]string(nil), c.Gemini.Models...)
	if c.Ollama.ServerURL != "" && c.Ollama.Model != "" {
		chain = append(chain, domain.OllamaModelPrefix+c.Ollama.Model)
	}
	return chain
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
