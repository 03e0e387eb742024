package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // history labels are computed in HISTORY_TIMEZONE

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backends.
const (
	BackendPostgREST = "postgrest"
	BackendSQLite    = "sqlite"
	BackendPostgres  = "postgres"
)

// Generation providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// defaultModels holds the LLM_MODEL used when none is set, per provider.
var defaultModels = map[string]string{
	ProviderAnthropic: "claude-3-haiku-20240307",
	ProviderOpenAI:    "gpt-4o-mini",
}

// Config holds all configuration for the application.
type Config struct {
	APIPort     string     `envconfig:"API_PORT" default:"9000"`
	LogLevel    slog.Level `ignored:"true"`
	LogLevelRaw string     `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string     `envconfig:"LOG_FORMAT" default:"text"`

	StoreBackend string        `envconfig:"STORE_BACKEND" default:"postgrest"`
	SupabaseURL  string        `envconfig:"SUPABASE_URL"`
	SupabaseKey  string        `envconfig:"SUPABASE_ANON_KEY"`
	DBPath       string        `envconfig:"DB_PATH" default:"./data/momgyeot.db"`
	DatabaseURL  string        `envconfig:"DATABASE_URL"`
	StoreTimeout time.Duration `envconfig:"STORE_TIMEOUT" default:"10s"`

	LLMProvider       string        `envconfig:"LLM_PROVIDER" default:"anthropic"`
	AnthropicAPIKey   string        `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL  string        `envconfig:"ANTHROPIC_BASE_URL" default:"https://api.anthropic.com"`
	OpenAIAPIKey      string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `envconfig:"OPENAI_BASE_URL"`
	LLMModel          string        `envconfig:"LLM_MODEL"`
	LLMMaxTokens      int           `envconfig:"LLM_MAX_TOKENS" default:"1024"`
	LLMTimeout        time.Duration `envconfig:"LLM_TIMEOUT" default:"30s"`
	ProxyDefaultModel string        `envconfig:"PROXY_DEFAULT_MODEL" default:"claude-sonnet-4-20250514"`

	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"momgyeot2024"`

	SearchMinContentLength int    `envconfig:"SEARCH_MIN_CONTENT_LENGTH" default:"100"`
	SearchMaxLimit         int    `envconfig:"SEARCH_MAX_LIMIT" default:"20"`
	HistoryTimezone        string `envconfig:"HISTORY_TIMEZONE" default:"Asia/Seoul"`

	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

// Load reads configuration from environment variables and returns a Config struct.
// If a .env file exists in the current directory or one of its parents, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(cfg.LogLevelRaw)); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	cfg.StoreBackend = strings.ToLower(cfg.StoreBackend)
	switch cfg.StoreBackend {
	case BackendPostgREST, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be one of postgrest, sqlite, postgres, got %q", cfg.StoreBackend)
	}

	cfg.LLMProvider = strings.ToLower(cfg.LLMProvider)
	switch cfg.LLMProvider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("LLM_PROVIDER must be one of anthropic, openai, got %q", cfg.LLMProvider)
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = defaultModels[cfg.LLMProvider]
	}

	if cfg.SearchMaxLimit <= 0 {
		return nil, fmt.Errorf("SEARCH_MAX_LIMIT must be greater than 0")
	}
	if cfg.SearchMinContentLength < 0 {
		return nil, fmt.Errorf("SEARCH_MIN_CONTENT_LENGTH must not be negative")
	}
	if _, err := time.LoadLocation(cfg.HistoryTimezone); err != nil {
		return nil, fmt.Errorf("HISTORY_TIMEZONE is invalid: %w", err)
	}

	if cfg.StoreBackend == BackendSQLite {
		// Create the data directory for the SQLite file
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return &cfg, nil
}

// HasStore reports whether the selected record store has the settings it needs.
func (c *Config) HasStore() bool {
	switch c.StoreBackend {
	case BackendPostgREST:
		return c.SupabaseURL != "" && c.SupabaseKey != ""
	case BackendSQLite:
		return c.DBPath != ""
	case BackendPostgres:
		return c.DatabaseURL != ""
	default:
		return false
	}
}

// HasGenerator reports whether the selected generation provider has an API key.
func (c *Config) HasGenerator() bool {
	switch c.LLMProvider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey != ""
	case ProviderOpenAI:
		return c.OpenAIAPIKey != ""
	default:
		return false
	}
}

// HasProxy reports whether the raw messages proxy can be served.
func (c *Config) HasProxy() bool {
	return c.AnthropicAPIKey != ""
}

// Location returns the timezone used for history date labels.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.HistoryTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// loadDotEnv loads the first .env file found walking up from the working directory.
func loadDotEnv() {
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}
