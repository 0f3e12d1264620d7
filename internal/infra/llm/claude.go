package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/otel/attribute"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/tracing"
)

// DefaultClaudeModel is used when no model is configured for Claude.
const DefaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// Claude answers research prompts with Anthropic's Messages API.
type Claude struct {
	client          anthropic.Client
	config          Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a Claude completer. SDK retries are disabled; a failed
// completion surfaces to the caller.
func NewClaude(apiKey string, cfg Config) *Claude {
	if cfg.Model == "" || cfg.Model == DefaultOpenAIModel {
		cfg.Model = DefaultClaudeModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	slog.Info("Initialized Claude completer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Claude{
		client:          anthropic.NewClient(opts...),
		config:          cfg,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Complete sends prompt with the research system prompt and optional context.
func (c *Claude) Complete(ctx context.Context, prompt, contextText string) (answer string, err error) {
	ctx, span := tracing.StartClientSpan(ctx, "claude.complete",
		attribute.String("llm.model", c.config.Model))
	defer func() { tracing.EndSpan(span, err) }()

	system := []anthropic.TextBlockParam{{Text: SystemPrompt}}
	if contextText != "" {
		system = append(system, anthropic.TextBlockParam{Text: contextMessage(contextText)})
	}

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.Model),
		MaxTokens:   int64(c.config.MaxTokens),
		Temperature: anthropic.Float(c.config.Temperature),
		System:      system,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	duration := time.Since(start)

	if err != nil {
		c.metricsRecorder.RecordCompletion(ProviderClaude, false, duration)
		slog.ErrorContext(ctx, "Claude completion failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", entity.NewProviderError(ProviderClaude, classifyClaudeError(err), err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}
	answer = sb.String()
	if strings.TrimSpace(answer) == "" {
		c.metricsRecorder.RecordCompletion(ProviderClaude, false, duration)
		return "", entity.NewProviderError(ProviderClaude, entity.ErrMalformedResponse, ErrEmptyResponse)
	}

	c.metricsRecorder.RecordCompletion(ProviderClaude, true, duration)
	c.metricsRecorder.RecordResponseLength(ProviderClaude, utf8.RuneCountInString(answer))
	return answer, nil
}

func classifyClaudeError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return entity.ErrProviderStatus
	}
	return entity.ErrTransport
}
