// Package app assembles providers, dispatchers and use cases from an
// AppConfig. Both the API server and the news CLI build on it.
package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"financespace/internal/config"
	"financespace/internal/domain/entity"
	"financespace/internal/infra/dispatch"
	"financespace/internal/infra/llm"
	"financespace/internal/infra/newsapi"
	"financespace/internal/infra/search"
	"financespace/internal/usecase/news"
	"financespace/internal/usecase/research"
)

// Chain names reported in logs.
const (
	CryptoChainName  = "crypto"
	GeneralChainName = "general"
)

// httpClientTimeout backs up the dispatcher deadline on every outbound client.
const httpClientTimeout = 30 * time.Second

// NewHTTPClient returns the client shared by the news and search adapters.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpClientTimeout}
}

// NewsService wires NewsData as the primary provider, the fixed crypto
// chain (NewsData cryptocurrency, GNews, Finnhub) and a general chain built
// from feeds.
func NewsService(cfg config.NewsConfig, feeds []config.Feed, client *http.Client, d news.Dispatcher) *news.Service {
	primary := newsapi.NewNewsData(newsapi.Config{
		APIKey: cfg.NewsDataAPIKey, BaseURL: cfg.NewsDataBaseURL, Client: client,
	})

	crypto := news.NewChain(CryptoChainName,
		primary.ForCategory(entity.CategoryCryptocurrency),
		newsapi.NewGNews(newsapi.Config{APIKey: cfg.GNewsAPIKey, BaseURL: cfg.GNewsBaseURL, Client: client}, ""),
		newsapi.NewFinnhub(newsapi.Config{APIKey: cfg.FinnhubAPIKey, BaseURL: cfg.FinnhubBaseURL, Client: client}, ""),
	)

	general := make([]news.Provider, 0, len(feeds))
	for _, f := range feeds {
		general = append(general, newsapi.NewRSS(newsapi.FeedSource{
			Name: f.Name, URL: f.URL, Categories: f.Categories,
		}, client))
	}

	return news.NewService(primary, crypto, news.NewChain(GeneralChainName, general...), d)
}

// Feeds loads the general fallback feeds, or none when path is empty.
func Feeds(path string) ([]config.Feed, error) {
	if path == "" {
		return nil, nil
	}
	return config.LoadFeeds(path)
}

// Completer builds the configured LLM adapter.
func Completer(cfg config.LLMConfig) (research.Completer, error) {
	llmCfg := llm.DefaultConfig()
	llmCfg.Provider = cfg.Provider
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	if cfg.Timeout > 0 {
		llmCfg.Timeout = cfg.Timeout
	}
	llmCfg.BaseURL = cfg.BaseURL
	if err := llmCfg.Validate(); err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}

	switch cfg.Provider {
	case config.LLMOpenAI:
		return llm.NewOpenAI(cfg.OpenAIAPIKey, llmCfg), nil
	case config.LLMClaude:
		return llm.NewClaude(cfg.AnthropicAPIKey, llmCfg), nil
	case config.LLMNoOp:
		slog.Warn("LLM_PROVIDER=noop: completions return a placeholder")
		return llm.NewNoOp(), nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}

// Dispatchers holds the outbound pools. LLM shares Provider's worker slots
// with a longer per-call timeout.
type Dispatchers struct {
	Provider *dispatch.Pool
	LLM      *dispatch.Pool
}

// NewDispatchers sizes the outbound pools from configuration.
func NewDispatchers(out config.OutboundConfig, llmTimeout time.Duration) Dispatchers {
	p := dispatch.NewPool(out.Workers, out.ProviderTimeout)
	return Dispatchers{Provider: p, LLM: p.WithTimeout(llmTimeout)}
}

// Searcher builds the web search adapter.
func Searcher(cfg config.SearchConfig, client *http.Client) *search.DuckDuckGo {
	return search.NewDuckDuckGo(client, cfg.BaseURL, cfg.MaxResults)
}
