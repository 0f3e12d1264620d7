package newsapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"financespace/internal/domain/entity"
)

const (
	gnewsName        = "gnews"
	gnewsDisplayName = "GNews"
	gnewsDefaultBase = "https://gnews.io"
	gnewsCryptoQuery = "crypto"
)

// GNews searches gnews.io with a fixed keyword query.
type GNews struct {
	cfg   Config
	query string
}

// NewGNews creates a GNews adapter searching for query
// ("crypto" when empty).
func NewGNews(cfg Config, query string) *GNews {
	return &GNews{cfg: cfg, query: orDefault(query, gnewsCryptoQuery)}
}

// Name identifies the adapter in logs and metrics.
func (g *GNews) Name() string { return gnewsName }

type gnewsResponse struct {
	Articles []gnewsItem `json:"articles"`
}

type gnewsItem struct {
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	PublishedAt json.RawMessage `json:"publishedAt"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// Fetch ignores the request category and region; the query is fixed.
func (g *GNews) Fetch(ctx context.Context, _ entity.FetchRequest) ([]entity.Article, error) {
	return observe(ctx, gnewsName, func(ctx context.Context) ([]entity.Article, error) {
		q := url.Values{}
		q.Set("q", g.query)
		q.Set("token", g.cfg.APIKey)
		q.Set("lang", "en")
		endpoint := strings.TrimRight(g.cfg.baseURL(gnewsDefaultBase), "/") + "/api/v4/search?" + q.Encode()

		body, err := getJSON(ctx, g.cfg.client(), gnewsName, endpoint)
		if err != nil {
			return nil, err
		}

		var resp gnewsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, entity.NewProviderError(gnewsName, entity.ErrMalformedResponse, err)
		}

		articles := make([]entity.Article, 0, len(resp.Articles))
		for _, it := range resp.Articles {
			articles = append(articles, entity.Article{
				Title:       it.Title,
				URL:         it.URL,
				Source:      orDefault(it.Source.Name, gnewsDisplayName),
				PublishedAt: verbatim(it.PublishedAt),
				Description: it.Description,
				ImageURL:    entity.StringPtr(it.Image),
			})
		}
		return articles, nil
	})
}
