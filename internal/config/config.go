package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "go-greenery-relay/internal/errors"
)

// Provider names accepted by PROVIDER
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	defaultGeminiModel = "gemini-1.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

var defaultAllowedOrigins = []string{
	"https://urban-infra.vercel.app",
	"https://*.vercel.app",
}

// Config is loaded once at startup and never mutated afterwards
type Config struct {
	Host               string
	Port               string
	LogLevel           string
	RequestTimeout     time.Duration
	ImageFetchTimeout  time.Duration
	AnalysisTimeout    time.Duration
	MaxRequestBodySize int64
	AllowedOrigins     []string
	StrictSchema       bool

	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	Azure AzureConfig
	Minio MinioConfig
}

// AzureConfig enables authenticated downloads from <Account>.blob.core.windows.net
type AzureConfig struct {
	Account string
	Key     string
}

// Enabled reports whether both account and key are set
func (a AzureConfig) Enabled() bool {
	return a.Account != "" && a.Key != ""
}

// MinioConfig enables s3://bucket/key image URLs
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// Enabled reports whether an endpoint and credentials are set
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != "" && m.AccessKey != "" && m.SecretKey != ""
}

func (c *Config) ServerAddress() string {
	// Trim any whitespace from host and port
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

// LoadFromEnv builds the configuration from the process environment.
// A missing credential for the selected provider is returned as a config AppError.
func LoadFromEnv() (*Config, error) {
	// Set defaults
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 120*time.Second),
		ImageFetchTimeout:  parseDurationOrDefault("IMAGE_FETCH_TIMEOUT", 30*time.Second),
		AnalysisTimeout:    parseDurationOrDefault("ANALYSIS_TIMEOUT", 60*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 1024*1024), // 1MB
		AllowedOrigins:     parseListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		StrictSchema:       parseBoolOrDefault("STRICT_SCHEMA", false),

		Provider:      strings.ToLower(getEnvOrDefault("PROVIDER", ProviderGemini)),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", defaultGeminiModel),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", defaultOpenAIModel),

		Azure: AzureConfig{
			Account: strings.TrimSpace(os.Getenv("AZURE_STORAGE_ACCOUNT")),
			Key:     strings.TrimSpace(os.Getenv("AZURE_STORAGE_KEY")),
		},
		Minio: MinioConfig{
			Endpoint:  strings.TrimSpace(os.Getenv("MINIO_ENDPOINT")),
			AccessKey: strings.TrimSpace(os.Getenv("MINIO_ACCESS_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("MINIO_SECRET_KEY")),
			Region:    strings.TrimSpace(os.Getenv("MINIO_REGION")),
			UseSSL:    parseBoolOrDefault("MINIO_USE_SSL", true),
		},
	}

	if err := cfg.validateCredentials(); err != nil {
		return nil, err
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.ImageFetchTimeout <= 0 || cfg.AnalysisTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s, analysis=%s)",
			cfg.RequestTimeout, cfg.ImageFetchTimeout, cfg.AnalysisTimeout)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return cfg, nil
}

func (c *Config) validateCredentials() error {
	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return apperrors.NewConfigError("GEMINI_API_KEY not found as an environment variable.")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return apperrors.NewConfigError("OPENAI_API_KEY not found as an environment variable.")
		}
	default:
		return apperrors.NewConfigError(fmt.Sprintf("unsupported PROVIDER %q", c.Provider))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}

func parseListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		out := make([]string, len(defaultValue))
		copy(out, defaultValue)
		return out
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
