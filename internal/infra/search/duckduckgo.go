// Package search provides web search adapters returning entity.SearchResult.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/metrics"
	"financespace/internal/observability/tracing"
)

const (
	providerName = "duckduckgo"

	// DefaultBaseURL is the JavaScript-free DuckDuckGo endpoint.
	DefaultBaseURL = "https://html.duckduckgo.com"

	// DefaultMaxResults caps the number of results returned per query.
	DefaultMaxResults = 5

	maxBodySize = 2 * 1024 * 1024 // 2MB
	userAgent   = "Mozilla/5.0 (compatible; FinanceSpace/1.0)"
)

// DuckDuckGo searches the web by scraping the DuckDuckGo HTML results page.
type DuckDuckGo struct {
	client     *http.Client
	baseURL    string
	maxResults int
}

// NewDuckDuckGo creates a search adapter. Zero values select defaults.
func NewDuckDuckGo(client *http.Client, baseURL string, maxResults int) *DuckDuckGo {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &DuckDuckGo{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
	}
}

// Name identifies the adapter in logs and metrics.
func (d *DuckDuckGo) Name() string { return providerName }

// Search returns at most maxResults ranked results for query.
// An empty result page yields an empty, non-nil slice.
func (d *DuckDuckGo) Search(ctx context.Context, query string) (results []entity.SearchResult, err error) {
	ctx, span := tracing.StartClientSpan(ctx, providerName+".search",
		attribute.String("provider", providerName))
	start := time.Now()
	defer func() {
		metrics.RecordProviderCall(providerName, len(results), err, time.Since(start))
		span.SetAttributes(attribute.Int("results", len(results)))
		tracing.EndSpan(span, err)
	}()

	doc, err := d.fetchHTML(ctx, query)
	if err != nil {
		return nil, err
	}
	return d.extractResults(doc), nil
}

func (d *DuckDuckGo) fetchHTML(ctx context.Context, query string) (*goquery.Document, error) {
	endpoint := d.baseURL + "/html/?" + url.Values{"q": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, entity.NewProviderError(providerName, entity.ErrTransport, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, entity.NewProviderError(providerName, entity.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// DuckDuckGo answers 202 with a challenge page when it throttles.
	if resp.StatusCode != http.StatusOK {
		return nil, entity.NewProviderError(providerName, entity.ErrProviderStatus,
			fmt.Errorf("unexpected status: %s", resp.Status))
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, entity.NewProviderError(providerName, entity.ErrMalformedResponse, err)
	}
	return doc, nil
}

func (d *DuckDuckGo) extractResults(doc *goquery.Document) []entity.SearchResult {
	results := make([]entity.SearchResult, 0, d.maxResults)
	doc.Find(".result").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if el.HasClass("result--ad") {
			return true
		}
		link := el.Find(".result__a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return true
		}
		results = append(results, entity.SearchResult{
			Title:   title,
			URL:     resolveHref(href),
			Snippet: strings.TrimSpace(el.Find(".result__snippet").First().Text()),
		})
		return len(results) < d.maxResults
	})
	return results
}

// resolveHref unwraps DuckDuckGo redirect links (//duckduckgo.com/l/?uddg=<target>).
func resolveHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
