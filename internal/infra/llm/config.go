// Package llm provides chat-completion adapters for the research endpoints.
// It includes OpenAI and Claude (Anthropic) implementations and a NoOp
// completer for local development, all sharing one system prompt.
package llm

import (
	"errors"
	"fmt"
	"time"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNoOp   = "noop"
)

// SystemPrompt frames every completion.
const SystemPrompt = "You are a helpful research assistant specializing in finance and space research. Provide accurate, informative responses."

const (
	// DefaultOpenAIModel is used when no model is configured for OpenAI.
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultTemperature keeps answers factual.
	DefaultTemperature = 0.3
	// DefaultMaxTokens bounds the completion length.
	DefaultMaxTokens = 1000
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 60 * time.Second
)

// ErrEmptyResponse is returned when the provider answers without any text.
var ErrEmptyResponse = errors.New("llm returned empty response")

// Config holds completion parameters shared by all providers.
type Config struct {
	// Provider selects the implementation: openai, claude or noop.
	Provider string

	// Model is the provider model identifier.
	Model string

	// Temperature is the sampling temperature (0-2).
	Temperature float64

	// MaxTokens is the maximum number of tokens for the response.
	MaxTokens int

	// Timeout is the maximum duration for a single completion call.
	Timeout time.Duration

	// BaseURL overrides the provider endpoint (proxies, tests).
	BaseURL string
}

// DefaultConfig returns the OpenAI defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    ProviderOpenAI,
		Model:       DefaultOpenAIModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderClaude, ProviderNoOp:
	default:
		return fmt.Errorf("unknown llm provider %q", c.Provider)
	}

	if c.Provider != ProviderNoOp && c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	return nil
}

// contextMessage renders the optional grounding context as a system message.
func contextMessage(contextText string) string {
	return "Context: " + contextText
}
