package newsapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"financespace/internal/domain/entity"
)

const rssDisplayName = "RSS"

// FeedSource describes one RSS/Atom feed used as a general-category fallback.
type FeedSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Categories restricts the feed to these request categories; empty means all.
	Categories []string `yaml:"categories"`
}

// RSS serves articles from a single RSS or Atom feed.
type RSS struct {
	feed   FeedSource
	client *http.Client
}

// NewRSS creates a feed adapter. A nil client uses a default client.
func NewRSS(feed FeedSource, client *http.Client) *RSS {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &RSS{feed: feed, client: client}
}

// Name identifies the adapter in logs and metrics.
func (r *RSS) Name() string {
	return "rss:" + orDefault(r.feed.Name, r.feed.URL)
}

// Matches reports whether the feed serves category.
func (r *RSS) Matches(category string) bool {
	if len(r.feed.Categories) == 0 {
		return true
	}
	for _, c := range r.feed.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// Fetch returns the feed items, or an empty list when the feed does not
// serve the requested category.
func (r *RSS) Fetch(ctx context.Context, req entity.FetchRequest) ([]entity.Article, error) {
	if !r.Matches(req.Category) {
		return []entity.Article{}, nil
	}
	name := r.Name()
	return observe(ctx, name, func(ctx context.Context) ([]entity.Article, error) {
		fp := gofeed.NewParser()
		fp.UserAgent = userAgent
		fp.Client = r.client

		feed, err := fp.ParseURLWithContext(r.feed.URL, ctx)
		if err != nil {
			return nil, classifyFeedError(name, err)
		}

		source := orDefault(r.feed.Name, orDefault(feed.Title, rssDisplayName))
		articles := make([]entity.Article, 0, len(feed.Items))
		for _, it := range feed.Items {
			articles = append(articles, entity.Article{
				Title:       it.Title,
				URL:         it.Link,
				Source:      source,
				PublishedAt: entity.RawString(it.Published),
				Description: it.Description,
				ImageURL:    entity.StringPtr(itemImage(it)),
			})
		}
		return articles, nil
	})
}

func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

func classifyFeedError(name string, err error) error {
	var httpErr gofeed.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return entity.NewProviderError(name, entity.ErrProviderStatus, err)
	case errors.Is(err, gofeed.ErrFeedTypeNotDetected):
		return entity.NewProviderError(name, entity.ErrMalformedResponse, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return entity.NewProviderError(name, entity.ErrTransport, err)
	default:
		var ue interface{ Timeout() bool }
		if errors.As(err, &ue) {
			return entity.NewProviderError(name, entity.ErrTransport, redact(err))
		}
		return entity.NewProviderError(name, entity.ErrMalformedResponse, err)
	}
}
