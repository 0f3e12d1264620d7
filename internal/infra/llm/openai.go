package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/tracing"
)

// OpenAI answers research prompts with the OpenAI chat completions API.
type OpenAI struct {
	client          *openai.Client
	config          Config
	metricsRecorder MetricsRecorder
}

// NewOpenAI creates an OpenAI completer. cfg.BaseURL, when set, replaces the
// public endpoint (it must include the /v1 suffix).
func NewOpenAI(apiKey string, cfg Config) *OpenAI {
	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}

	slog.Info("Initialized OpenAI completer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &OpenAI{
		client:          openai.NewClientWithConfig(clientCfg),
		config:          cfg,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Complete sends prompt, framed by the research system prompt and the
// optional context, and returns the first choice's text.
func (o *OpenAI) Complete(ctx context.Context, prompt, contextText string) (answer string, err error) {
	ctx, span := tracing.StartClientSpan(ctx, "openai.complete",
		attribute.String("llm.model", o.config.Model))
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.config.Model,
		Messages:    o.buildMessages(prompt, contextText),
		Temperature: float32(o.config.Temperature),
		MaxTokens:   o.config.MaxTokens,
	})
	duration := time.Since(start)

	if err != nil {
		o.metricsRecorder.RecordCompletion(ProviderOpenAI, false, duration)
		slog.ErrorContext(ctx, "OpenAI completion failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", entity.NewProviderError(ProviderOpenAI, classifyOpenAIError(err), err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		o.metricsRecorder.RecordCompletion(ProviderOpenAI, false, duration)
		return "", entity.NewProviderError(ProviderOpenAI, entity.ErrMalformedResponse, ErrEmptyResponse)
	}

	answer = resp.Choices[0].Message.Content
	o.metricsRecorder.RecordCompletion(ProviderOpenAI, true, duration)
	o.metricsRecorder.RecordResponseLength(ProviderOpenAI, utf8.RuneCountInString(answer))

	slog.DebugContext(ctx, "OpenAI completion finished",
		slog.Int("response_length", len(answer)),
		slog.Duration("duration", duration))

	return answer, nil
}

func (o *OpenAI) buildMessages(prompt, contextText string) []openai.ChatCompletionMessage {
	msgs := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt,
	}}
	if contextText != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: contextMessage(contextText),
		})
	}
	return append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr), errors.As(err, &reqErr):
		return entity.ErrProviderStatus
	default:
		return entity.ErrTransport
	}
}

// String is used in startup logs.
func (o *OpenAI) String() string {
	return fmt.Sprintf("openai(%s)", o.config.Model)
}
