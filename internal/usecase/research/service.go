package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"financespace/internal/domain/entity"
	"financespace/internal/observability/logging"
	"financespace/internal/observability/metrics"
	"financespace/internal/repository"
)

const (
	// DefaultHistoryLimit is used when the caller supplies no limit.
	DefaultHistoryLimit = 10
	// MaxHistoryLimit caps a single history read.
	MaxHistoryLimit = 1000
	// StatusListLimit bounds the status-check listing.
	StatusListLimit = 1000
	// CombinedContextResults is how many search hits feed the summary prompt.
	CombinedContextResults = 3
)

// Completer answers a prompt, optionally grounded by extra context.
// *llm.OpenAI, *llm.Claude and *llm.Noop implement it.
type Completer interface {
	Complete(ctx context.Context, prompt, contextText string) (string, error)
}

// Searcher runs a web search and returns ranked hits.
type Searcher interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// Dispatcher runs a blocking outbound call on a bounded worker slot.
type Dispatcher interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type direct struct{}

func (direct) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

// QueryResult is the answer to a general question.
type QueryResult struct {
	ID        string
	Query     string
	Response  string
	Type      entity.InteractionType
	Timestamp time.Time
}

// SearchOutcome is the result of a web search.
type SearchOutcome struct {
	ID        string
	Query     string
	Results   []entity.SearchResult
	Timestamp time.Time
}

// CombinedOutcome carries every search hit and the summary built from the top ones.
type CombinedOutcome struct {
	ID            string
	Query         string
	SearchResults []entity.SearchResult
	Summary       string
	Timestamp     time.Time
}

// Service wires the LLM, the search engine and the history store.
// Every successful interaction is appended to HistoryRepo before it is returned.
type Service struct {
	LLM         Completer
	Web         Searcher
	HistoryRepo repository.HistoryRepository
	StatusRepo  repository.StatusRepository

	// LLMDispatch and SearchDispatch bound outbound calls; nil runs them inline.
	LLMDispatch    Dispatcher
	SearchDispatch Dispatcher
}

// Query asks the LLM and records a general interaction.
func (s *Service) Query(ctx context.Context, query string) (*QueryResult, error) {
	answer, err := s.complete(ctx, query, "")
	if err != nil {
		return nil, err
	}

	entry := entity.NewHistoryEntry(query, answer, entity.InteractionGeneral)
	if err := s.record(ctx, entry); err != nil {
		return nil, err
	}
	return &QueryResult{
		ID:        entry.ID,
		Query:     query,
		Response:  answer,
		Type:      entity.InteractionGeneral,
		Timestamp: entry.Timestamp,
	}, nil
}

// Search runs a web search and records a search interaction whose response
// is the hit count.
func (s *Service) Search(ctx context.Context, query string) (*SearchOutcome, error) {
	results, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	entry := entity.NewHistoryEntry(query, fmt.Sprintf("Found %d search results", len(results)), entity.InteractionSearch)
	if err := s.record(ctx, entry); err != nil {
		return nil, err
	}
	return &SearchOutcome{
		ID:        entry.ID,
		Query:     query,
		Results:   results,
		Timestamp: entry.Timestamp,
	}, nil
}

// Combined searches first, then asks the LLM to summarize the topic using the
// top search hits as context. The outcome carries every hit.
func (s *Service) Combined(ctx context.Context, query string) (*CombinedOutcome, error) {
	results, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}

	summary, err := s.complete(ctx, SummaryPrompt(query), SearchContext(results))
	if err != nil {
		return nil, err
	}

	entry := entity.NewHistoryEntry(query, summary, entity.InteractionCombined)
	if err := s.record(ctx, entry); err != nil {
		return nil, err
	}
	return &CombinedOutcome{
		ID:            entry.ID,
		Query:         query,
		SearchResults: results,
		Summary:       summary,
		Timestamp:     entry.Timestamp,
	}, nil
}

// History returns at most limit entries, newest first.
// A zero limit means DefaultHistoryLimit.
func (s *Service) History(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 1 {
		return nil, &entity.ValidationError{Field: "limit", Message: "must be at least 1"}
	}
	if limit > MaxHistoryLimit {
		return nil, &entity.ValidationError{Field: "limit", Message: fmt.Sprintf("must be at most %d", MaxHistoryLimit)}
	}

	entries, err := s.HistoryRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// CreateStatus records a liveness check from clientName.
func (s *Service) CreateStatus(ctx context.Context, clientName string) (*entity.StatusCheck, error) {
	check := entity.NewStatusCheck(clientName)
	if err := s.StatusRepo.Create(ctx, check); err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}
	return check, nil
}

// ListStatus returns up to StatusListLimit status checks in insertion order.
func (s *Service) ListStatus(ctx context.Context) ([]*entity.StatusCheck, error) {
	checks, err := s.StatusRepo.List(ctx, StatusListLimit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}

// SummaryPrompt is the instruction sent with search context in Combined.
func SummaryPrompt(query string) string {
	return "Based on the search results, provide a comprehensive summary about: " + query
}

// SearchContext renders the first CombinedContextResults hits as numbered
// title/snippet pairs under a "Search results:" header.
func SearchContext(results []entity.SearchResult) string {
	var b strings.Builder
	b.WriteString("Search results:\n")
	for i, r := range results {
		if i == CombinedContextResults {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, r.Title, r.Snippet)
	}
	return b.String()
}

func (s *Service) complete(ctx context.Context, prompt, contextText string) (string, error) {
	var answer string
	err := dispatcher(s.LLMDispatch).Do(ctx, func(ctx context.Context) error {
		var cerr error
		answer, cerr = s.LLM.Complete(ctx, prompt, contextText)
		return cerr
	})
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "llm completion failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	return answer, nil
}

func (s *Service) search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	var results []entity.SearchResult
	err := dispatcher(s.SearchDispatch).Do(ctx, func(ctx context.Context) error {
		var serr error
		results, serr = s.Web.Search(ctx, query)
		return serr
	})
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "web search failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	if results == nil {
		results = []entity.SearchResult{}
	}
	return results, nil
}

func (s *Service) record(ctx context.Context, entry *entity.HistoryEntry) error {
	if err := s.HistoryRepo.Append(ctx, entry); err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "history append failed",
			slog.String("type", string(entry.Type)),
			slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrHistory, err)
	}
	metrics.RecordHistoryAppend(entry.Type)
	return nil
}

func dispatcher(d Dispatcher) Dispatcher {
	if d == nil {
		return direct{}
	}
	return d
}
