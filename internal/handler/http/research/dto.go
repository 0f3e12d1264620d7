// Package research provides the HTTP handlers for the AI research endpoints:
// general queries, web search, combined search + summary, history and status.
package research

import (
	"time"

	"financespace/internal/domain/entity"
)

// WelcomeMessage is returned by GET /api/.
const WelcomeMessage = "FinanceSpace API - Ready to research!"

// MessageDTO is the body of GET /api/.
type MessageDTO struct {
	Message string `json:"message" example:"FinanceSpace API - Ready to research!"`
}

// QueryRequest is the body shared by /api/query, /api/search and /api/combined.
type QueryRequest struct {
	Query string `json:"query" validate:"notblank,max=4000" example:"What moved the S&P 500 today?"`
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=general search combined" example:"general"`
}

// QueryResponse is the answer to POST /api/query.
type QueryResponse struct {
	ID        string    `json:"id" example:"9b2f6c1e-3d4a-4c55-8a1e-0f1c2d3e4f50"`
	Query     string    `json:"query" example:"What moved the S&P 500 today?"`
	Response  string    `json:"response" example:"Stocks rallied after..."`
	Type      string    `json:"type" example:"general"`
	Timestamp time.Time `json:"timestamp" example:"2025-03-01T09:00:00Z"`
}

// SearchResultDTO is one web search hit.
type SearchResultDTO struct {
	Title   string `json:"title" example:"Markets wrap"`
	URL     string `json:"url" example:"https://example.com/markets"`
	Snippet string `json:"snippet" example:"Equities closed higher..."`
}

// SearchResponse is the answer to POST /api/search.
type SearchResponse struct {
	ID        string            `json:"id"`
	Query     string            `json:"query"`
	Results   []SearchResultDTO `json:"results"`
	Timestamp time.Time         `json:"timestamp"`
}

// CombinedResponse is the answer to POST /api/combined.
type CombinedResponse struct {
	ID            string            `json:"id"`
	Query         string            `json:"query"`
	SearchResults []SearchResultDTO `json:"search_results"`
	AISummary     string            `json:"ai_summary"`
	Timestamp     time.Time         `json:"timestamp"`
}

// HistoryDTO is one persisted interaction.
type HistoryDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id" example:"default"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Type      string    `json:"type" example:"search"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusRequest is the body of POST /api/status.
type StatusRequest struct {
	ClientName string `json:"client_name" validate:"notblank,max=255" example:"frontend"`
}

// StatusDTO is a stored status check.
type StatusDTO struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name" example:"frontend"`
	Timestamp  time.Time `json:"timestamp"`
}

func searchResults(in []entity.SearchResult) []SearchResultDTO {
	out := make([]SearchResultDTO, 0, len(in))
	for _, r := range in {
		out = append(out, SearchResultDTO(r))
	}
	return out
}

func historyDTOs(in []*entity.HistoryEntry) []HistoryDTO {
	out := make([]HistoryDTO, 0, len(in))
	for _, e := range in {
		out = append(out, HistoryDTO{
			ID:        e.ID,
			UserID:    e.UserID,
			Query:     e.Query,
			Response:  e.Response,
			Type:      string(e.Type),
			Timestamp: e.Timestamp,
		})
	}
	return out
}

func statusDTO(s *entity.StatusCheck) StatusDTO {
	return StatusDTO{ID: s.ID, ClientName: s.ClientName, Timestamp: s.Timestamp}
}
