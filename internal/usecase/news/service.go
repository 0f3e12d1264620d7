package news

import (
	"context"
	"fmt"
	"log/slog"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/logging"
	"financespace/internal/observability/metrics"
)

// Chain names used in logs.
const (
	CryptoChainName  = "crypto"
	GeneralChainName = "general"
)

// Service fetches news from the primary provider and, when it comes back
// empty, from the fallback chain matching the request category.
type Service struct {
	Primary         Provider
	CryptoChain     Chain
	GeneralFallback Chain
	Dispatcher      Dispatcher
}

// NewService creates a news Service. A nil dispatcher runs calls inline.
func NewService(primary Provider, crypto, general Chain, d Dispatcher) *Service {
	if d == nil {
		d = directDispatcher{}
	}
	return &Service{
		Primary:         primary,
		CryptoChain:     crypto,
		GeneralFallback: general,
		Dispatcher:      d,
	}
}

// Fetch returns articles for req.
//
// Flow:
//  1. Primary provider. A non-empty result is returned as-is.
//  2. Empty primary + crypto category: the crypto chain.
//  3. Empty primary + any other category: the general fallback chain.
//
// An error from the primary call is returned wrapped in ErrFetchFailed.
// A nil error always comes with a non-nil (possibly empty) list.
func (s *Service) Fetch(ctx context.Context, req entity.FetchRequest) ([]entity.Article, error) {
	if s.Primary == nil {
		return nil, ErrNoPrimary
	}
	logger := logging.FromContext(ctx)

	articles, err := call(ctx, s.dispatcher(), s.Primary, req)
	if err != nil {
		logger.ErrorContext(ctx, "primary news provider failed",
			slog.String("provider", s.Primary.Name()),
			slog.String("category", req.Category),
			slog.String("region", req.Region),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if len(articles) > 0 {
		metrics.RecordFallbackStage(metrics.StagePrimary)
		return articles, nil
	}

	chain, stage := s.GeneralFallback, metrics.StageGeneralChain
	if req.IsCrypto() {
		chain, stage = s.CryptoChain, metrics.StageCryptoChain
	}

	logger.InfoContext(ctx, "primary news provider returned no articles, falling back",
		slog.String("category", req.Category),
		slog.String("chain", chain.Name),
		slog.Int("providers", chain.Len()))

	articles = chain.Fetch(ctx, req, s.dispatcher())
	if len(articles) == 0 {
		metrics.RecordFallbackStage(metrics.StageEmpty)
		return []entity.Article{}, nil
	}
	metrics.RecordFallbackStage(stage)
	return articles, nil
}

func (s *Service) dispatcher() Dispatcher {
	if s.Dispatcher == nil {
		return directDispatcher{}
	}
	return s.Dispatcher
}
