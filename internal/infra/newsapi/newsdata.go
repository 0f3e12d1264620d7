package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"financespace/internal/domain/entity"
)

const (
	newsDataName        = "newsdata"
	newsDataDisplayName = "NewsData.io"
	newsDataDefaultBase = "https://newsdata.io"
)

// regionCountries maps a region to the NewsData country parameter.
var regionCountries = map[string]string{
	entity.RegionUS:     "us",
	entity.RegionIndia:  "in",
	entity.RegionEurope: "de,fr,it,gb,es,nl",
	entity.RegionAsia:   "cn,jp,in,id,sg,my,th,vn,kr",
}

// CountryParam returns the NewsData country list for region, or "" for
// global, absent and unknown regions.
func CountryParam(region string) string {
	return regionCountries[strings.ToLower(region)]
}

// CategoryParam returns the NewsData category for category.
// Crypto variants map to "cryptocurrency"; everything else is lowercased.
func CategoryParam(category string) string {
	if entity.IsCryptoCategory(category) {
		return entity.CategoryCryptocurrency
	}
	return strings.ToLower(category)
}

// NewsData is the primary news provider (newsdata.io).
type NewsData struct {
	cfg      Config
	name     string
	category string // forced category; empty means use the request's
}

// NewNewsData creates the NewsData adapter.
func NewNewsData(cfg Config) *NewsData {
	return &NewsData{cfg: cfg, name: newsDataName}
}

// ForCategory returns a copy of the adapter that ignores the request
// category and always asks for category.
func (n *NewsData) ForCategory(category string) *NewsData {
	c := *n
	c.category = category
	c.name = newsDataName + "-" + CategoryParam(category)
	return &c
}

// Name identifies the adapter in logs and metrics.
func (n *NewsData) Name() string { return n.name }

type newsDataResponse struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results"`
}

type newsDataErrorResult struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type newsDataItem struct {
	Title       string          `json:"title"`
	Link        string          `json:"link"`
	SourceID    string          `json:"source_id"`
	PubDate     json.RawMessage `json:"pubDate"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}

// Fetch returns the latest English articles for req.
func (n *NewsData) Fetch(ctx context.Context, req entity.FetchRequest) ([]entity.Article, error) {
	return observe(ctx, n.name, func(ctx context.Context) ([]entity.Article, error) {
		body, err := getJSON(ctx, n.cfg.client(), n.name, n.buildURL(req))
		if err != nil {
			return nil, err
		}
		return n.parse(body)
	})
}

func (n *NewsData) buildURL(req entity.FetchRequest) string {
	q := url.Values{}
	q.Set("apikey", n.cfg.APIKey)
	q.Set("language", "en")
	if country := CountryParam(req.Region); country != "" {
		q.Set("country", country)
	}
	category := req.Category
	if n.category != "" {
		category = n.category
	}
	if category != "" {
		q.Set("category", CategoryParam(category))
	}
	return strings.TrimRight(n.cfg.baseURL(newsDataDefaultBase), "/") + "/api/1/news?" + q.Encode()
}

func (n *NewsData) parse(body []byte) ([]entity.Article, error) {
	var resp newsDataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, entity.NewProviderError(n.name, entity.ErrMalformedResponse, err)
	}

	if resp.Status == "error" {
		var detail newsDataErrorResult
		_ = json.Unmarshal(resp.Results, &detail)
		var cause error
		if detail.Message != "" {
			cause = errors.New(detail.Message)
		}
		return nil, entity.NewProviderError(n.name, entity.ErrProviderStatus, cause)
	}

	if isNull(resp.Results) {
		return []entity.Article{}, nil
	}

	var items []newsDataItem
	if err := json.Unmarshal(resp.Results, &items); err != nil {
		return nil, entity.NewProviderError(n.name, entity.ErrMalformedResponse, err)
	}

	articles := make([]entity.Article, 0, len(items))
	for _, it := range items {
		articles = append(articles, entity.Article{
			Title:       it.Title,
			URL:         it.Link,
			Source:      orDefault(it.SourceID, newsDataDisplayName),
			PublishedAt: verbatim(it.PubDate),
			Description: it.Description,
			ImageURL:    entity.StringPtr(it.ImageURL),
		})
	}
	return articles, nil
}
