package configs

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// placeholderAPIKey substitutes a missing credential. Remote calls made with
// it will fail at the API; startup must not.
const placeholderAPIKey = "your-api-key-here"

// Config holds the application configuration, loaded from environment
// variables (optionally seeded from a .env file).
type Config struct {
	APIKey     string        `envconfig:"LINEARB_API_KEY"`
	BaseURL    string        `envconfig:"LINEARB_BASE_URL" default:"https://public-api.linearb.io"`
	APITimeout time.Duration `envconfig:"LINEARB_API_TIMEOUT" default:"30s"`
	LogLevel   string        `envconfig:"LOG_LEVEL" default:"info"`

	OpenAPISpecPath string `envconfig:"OPENAPI_SPEC_PATH" default:"openAPI.json"`
	DocsDir         string `envconfig:"DOCS_DIR" default:"docs"`

	ListenAddr      string        `envconfig:"LISTEN_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// HasAPIKey reports whether a real credential was configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != "" && c.APIKey != placeholderAPIKey
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; its absence is not an error. A
// missing API key degrades to a placeholder with a warning rather than
// failing startup.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file.")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.APIKey == "" {
		slog.Warn("LINEARB_API_KEY environment variable not set. Remote API calls will fail until configured.")
		cfg.APIKey = placeholderAPIKey
	}

	return &cfg, nil
}
