package newsapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"financespace/internal/domain/entity"
)

const (
	finnhubName           = "finnhub"
	finnhubDisplayName    = "Finnhub"
	finnhubDefaultBase    = "https://finnhub.io"
	finnhubCryptoCategory = "crypto"
)

// Finnhub reads the finnhub.io market news feed for a fixed category.
type Finnhub struct {
	cfg      Config
	category string
}

// NewFinnhub creates a Finnhub adapter for category ("crypto" when empty).
func NewFinnhub(cfg Config, category string) *Finnhub {
	return &Finnhub{cfg: cfg, category: orDefault(category, finnhubCryptoCategory)}
}

// Name identifies the adapter in logs and metrics.
func (f *Finnhub) Name() string { return finnhubName }

type finnhubItem struct {
	Headline string          `json:"headline"`
	URL      string          `json:"url"`
	Source   string          `json:"source"`
	Datetime json.RawMessage `json:"datetime"`
	Summary  string          `json:"summary"`
	Image    string          `json:"image"`
}

// Fetch ignores the request category and region; the category is fixed.
func (f *Finnhub) Fetch(ctx context.Context, _ entity.FetchRequest) ([]entity.Article, error) {
	return observe(ctx, finnhubName, func(ctx context.Context) ([]entity.Article, error) {
		q := url.Values{}
		q.Set("category", f.category)
		q.Set("token", f.cfg.APIKey)
		endpoint := strings.TrimRight(f.cfg.baseURL(finnhubDefaultBase), "/") + "/api/v1/news?" + q.Encode()

		body, err := getJSON(ctx, f.cfg.client(), finnhubName, endpoint)
		if err != nil {
			return nil, err
		}
		if isNull(body) {
			return []entity.Article{}, nil
		}

		// The payload is a top-level array; an object here is an error envelope.
		var items []finnhubItem
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, entity.NewProviderError(finnhubName, entity.ErrMalformedResponse, err)
		}

		articles := make([]entity.Article, 0, len(items))
		for _, it := range items {
			articles = append(articles, entity.Article{
				Title:       it.Headline,
				URL:         it.URL,
				Source:      orDefault(it.Source, finnhubDisplayName),
				PublishedAt: verbatim(it.Datetime),
				Description: it.Summary,
				ImageURL:    entity.StringPtr(it.Image),
			})
		}
		return articles, nil
	})
}
