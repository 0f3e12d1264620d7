package news

import (
	"context"
	"log/slog"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/logging"
)

// Provider fetches normalized articles from one external news source.
// On failure it returns a *entity.ProviderError and no articles.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, req entity.FetchRequest) ([]entity.Article, error)
}

// Dispatcher runs a blocking outbound call on a bounded worker slot with a
// per-call deadline. *dispatch.Pool implements it.
type Dispatcher interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// directDispatcher runs calls inline; used when no pool is configured.
type directDispatcher struct{}

func (directDispatcher) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Chain is an ordered list of fallback providers. The first provider that
// returns a non-empty list wins; errors are logged and skipped.
type Chain struct {
	Name      string
	Providers []Provider
}

// NewChain builds a chain tried in the given order.
func NewChain(name string, providers ...Provider) Chain {
	return Chain{Name: name, Providers: providers}
}

// Len reports the number of providers in the chain.
func (c Chain) Len() int { return len(c.Providers) }

// Names lists the providers in order.
func (c Chain) Names() []string {
	names := make([]string, 0, len(c.Providers))
	for _, p := range c.Providers {
		names = append(names, p.Name())
	}
	return names
}

// Fetch walks the chain and returns the first non-empty result.
// It never returns an error: provider failures are logged at WARN and the
// next provider is tried. An exhausted chain yields an empty list.
func (c Chain) Fetch(ctx context.Context, req entity.FetchRequest, d Dispatcher) []entity.Article {
	if d == nil {
		d = directDispatcher{}
	}
	logger := logging.FromContext(ctx)

	for _, p := range c.Providers {
		if ctx.Err() != nil {
			logger.WarnContext(ctx, "fallback chain abandoned",
				slog.String("chain", c.Name),
				slog.Any("error", ctx.Err()))
			break
		}

		articles, err := call(ctx, d, p, req)
		if err != nil {
			logger.WarnContext(ctx, "fallback provider failed",
				slog.String("chain", c.Name),
				slog.String("provider", p.Name()),
				slog.Any("error", err))
			continue
		}
		if len(articles) > 0 {
			logger.DebugContext(ctx, "fallback provider answered",
				slog.String("chain", c.Name),
				slog.String("provider", p.Name()),
				slog.Int("articles", len(articles)))
			return articles
		}
	}
	return []entity.Article{}
}

// call runs one provider through the dispatcher.
func call(ctx context.Context, d Dispatcher, p Provider, req entity.FetchRequest) ([]entity.Article, error) {
	var articles []entity.Article
	err := d.Do(ctx, func(ctx context.Context) error {
		var ferr error
		articles, ferr = p.Fetch(ctx, req)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}
