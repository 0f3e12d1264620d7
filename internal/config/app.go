// Package config loads the API server configuration from the environment.
//
// Variables may be pre-loaded from .env.local and .env in the working
// directory; values already present in the process environment win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	env "financespace/pkg/config"
)

// Defaults for the server settings.
const (
	DefaultPort            = "8080"
	DefaultProviderTimeout = 15 * time.Second
	DefaultLLMTimeout      = 60 * time.Second
	DefaultRequestTimeout  = 90 * time.Second
	DefaultOutboundWorkers = 5
	DefaultSearchResults   = 5
	DefaultVersion         = "dev"
)

// LLM provider names accepted by LLM_PROVIDER.
const (
	LLMOpenAI = "openai"
	LLMClaude = "claude"
	LLMNoOp   = "noop"
)

// AppConfig holds every setting the API server reads at startup.
type AppConfig struct {
	// Port is the HTTP listen port. Default: 8080
	Port string

	// DatabaseURL is the Postgres DSN for the history store. Required.
	DatabaseURL string

	// Version is reported by /health. Default: "dev"
	Version string

	// RequestTimeout bounds a whole HTTP request. Default: 90s
	RequestTimeout time.Duration

	LLM      LLMConfig
	News     NewsConfig
	Search   SearchConfig
	Outbound OutboundConfig

	// FallbackFeedsFile is an optional YAML file of RSS feeds used as the
	// last resort of the general news fallback.
	FallbackFeedsFile string
}

// LLMConfig selects and configures the completion provider.
type LLMConfig struct {
	// Provider is openai, claude or noop. Default: openai
	Provider string
	// Model overrides the provider default model.
	Model string
	// Timeout bounds one completion. Default: 60s
	Timeout time.Duration
	// BaseURL overrides the OpenAI endpoint.
	BaseURL string

	OpenAIAPIKey    string
	AnthropicAPIKey string
}

// APIKey returns the credential for the selected provider.
func (c LLMConfig) APIKey() string {
	switch c.Provider {
	case LLMOpenAI:
		return c.OpenAIAPIKey
	case LLMClaude:
		return c.AnthropicAPIKey
	}
	return ""
}

// NewsConfig holds the news provider credentials and endpoint overrides.
type NewsConfig struct {
	NewsDataAPIKey string
	GNewsAPIKey    string
	FinnhubAPIKey  string

	NewsDataBaseURL string
	GNewsBaseURL    string
	FinnhubBaseURL  string
}

// SearchConfig configures the web search adapter.
type SearchConfig struct {
	BaseURL    string
	MaxResults int
}

// OutboundConfig bounds calls to external services.
type OutboundConfig struct {
	// Workers is the number of concurrent outbound calls. Default: 5
	Workers int
	// ProviderTimeout bounds one news or search call. Default: 15s
	ProviderTimeout time.Duration
}

// LoadDotEnv loads .env.local then .env if they exist. Missing files are
// not an error.
func LoadDotEnv() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the configuration from environment variables and validates it.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:              env.GetEnvString("PORT", DefaultPort),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Version:           env.GetEnvString("VERSION", DefaultVersion),
		RequestTimeout:    env.GetEnvDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		FallbackFeedsFile: os.Getenv("FALLBACK_FEEDS_FILE"),
		LLM:               LoadLLMConfig(),
		News:              LoadNewsConfig(),
		Search:            LoadSearchConfig(),
		Outbound:          LoadOutboundConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadLLMConfig reads the LLM_* settings and provider credentials.
func LoadLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:        strings.ToLower(env.GetEnvString("LLM_PROVIDER", LLMOpenAI)),
		Model:           os.Getenv("LLM_MODEL"),
		Timeout:         env.GetEnvDuration("LLM_TIMEOUT", DefaultLLMTimeout),
		BaseURL:         os.Getenv("OPENAI_BASE_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
	}
}

// LoadNewsConfig reads the news provider credentials and endpoint overrides.
func LoadNewsConfig() NewsConfig {
	return NewsConfig{
		NewsDataAPIKey:  os.Getenv("NEWSDATA_API_KEY"),
		GNewsAPIKey:     os.Getenv("GNEWS_API_KEY"),
		FinnhubAPIKey:   os.Getenv("FINNHUB_API_KEY"),
		NewsDataBaseURL: os.Getenv("NEWSDATA_BASE_URL"),
		GNewsBaseURL:    os.Getenv("GNEWS_BASE_URL"),
		FinnhubBaseURL:  os.Getenv("FINNHUB_BASE_URL"),
	}
}

// LoadSearchConfig reads the web search settings.
func LoadSearchConfig() SearchConfig {
	return SearchConfig{
		BaseURL:    os.Getenv("SEARCH_BASE_URL"),
		MaxResults: env.GetEnvInt("SEARCH_MAX_RESULTS", DefaultSearchResults),
	}
}

// LoadOutboundConfig reads the dispatcher size and provider timeout.
func LoadOutboundConfig() OutboundConfig {
	return OutboundConfig{
		Workers:         env.GetEnvInt("OUTBOUND_WORKERS", DefaultOutboundWorkers),
		ProviderTimeout: env.GetEnvDuration("PROVIDER_TIMEOUT", DefaultProviderTimeout),
	}
}

// Validate checks configuration correctness.
func (c *AppConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if err := env.ValidateDurationRange(c.RequestTimeout, time.Second, 10*time.Minute); err != nil {
		return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
	}

	switch c.LLM.Provider {
	case LLMOpenAI:
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	case LLMClaude:
		if c.LLM.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=claude")
		}
	case LLMNoOp:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of openai, claude, noop (got %q)", c.LLM.Provider)
	}

	if err := env.ValidatePositiveDuration(c.LLM.Timeout); err != nil {
		return fmt.Errorf("LLM_TIMEOUT: %w", err)
	}

	if c.Search.MaxResults <= 0 || c.Search.MaxResults > 50 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be between 1 and 50")
	}

	if c.Outbound.Workers <= 0 {
		return fmt.Errorf("OUTBOUND_WORKERS must be positive")
	}

	if err := env.ValidatePositiveDuration(c.Outbound.ProviderTimeout); err != nil {
		return fmt.Errorf("PROVIDER_TIMEOUT: %w", err)
	}

	return nil
}

// ProvidersConfigured reports, per news and search provider, whether the
// credentials it needs are present. Used by /health.
func (c *AppConfig) ProvidersConfigured() map[string]bool {
	return map[string]bool{
		"newsdata": c.News.NewsDataAPIKey != "",
		"gnews":    c.News.GNewsAPIKey != "",
		"finnhub":  c.News.FinnhubAPIKey != "",
		"llm":      c.LLM.Provider == LLMNoOp || c.LLM.APIKey() != "",
	}
}
