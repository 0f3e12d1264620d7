// Package newsapi adapts third-party news APIs to the entity.Article model.
//
// Every adapter returns either a complete list of articles or a
// *entity.ProviderError classified as ErrTransport, ErrProviderStatus or
// ErrMalformedResponse. Credentials are never included in returned errors.
package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/metrics"
	"financespace/internal/observability/tracing"
)

const (
	userAgent = "FinanceSpace/1.0 (+https://github.com/financespace)"
	// maxBodyBytes caps provider payloads read into memory.
	maxBodyBytes = 5 << 20
	// defaultClientTimeout backs up the per-call context deadline.
	defaultClientTimeout = 30 * time.Second
)

// Config holds the settings shared by the JSON news adapters.
type Config struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func (c Config) client() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return &http.Client{Timeout: defaultClientTimeout}
}

func (c Config) baseURL(def string) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return def
}

// getJSON performs a GET and returns the raw body of a 2xx response.
func getJSON(ctx context.Context, client *http.Client, provider, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, entity.NewProviderError(provider, entity.ErrTransport, redact(err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, entity.NewProviderError(provider, entity.ErrTransport, redact(err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, entity.NewProviderError(provider, entity.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, entity.NewProviderError(provider, entity.ErrProviderStatus,
			fmt.Errorf("HTTP %d", resp.StatusCode))
	}
	return body, nil
}

// redact strips the request URL (which carries the API key) from transport errors.
func redact(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}

// isNull reports whether raw is absent or the JSON literal null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// verbatim returns raw unchanged, or nil when it is absent or null.
func verbatim(raw json.RawMessage) json.RawMessage {
	if isNull(raw) {
		return nil
	}
	return raw
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// observe wraps one provider call with a client span and provider metrics.
func observe(ctx context.Context, provider string, fetch func(ctx context.Context) ([]entity.Article, error)) ([]entity.Article, error) {
	ctx, span := tracing.StartClientSpan(ctx, provider+".fetch", attribute.String("provider", provider))
	start := time.Now()

	articles, err := fetch(ctx)

	metrics.RecordProviderCall(provider, len(articles), err, time.Since(start))
	span.SetAttributes(attribute.Int("articles", len(articles)))
	tracing.EndSpan(span, err)

	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []entity.Article{}
	}
	return articles, nil
}
