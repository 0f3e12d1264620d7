// Package news provides the HTTP handler for the categorized news feed.
package news

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"financespace/internal/domain/entity"
	"financespace/internal/handler/http/respond"
	newsUC "financespace/internal/usecase/news"
)

// Fetcher returns articles for a category and region.
// *news.Service implements it.
type Fetcher interface {
	Fetch(ctx context.Context, req entity.FetchRequest) ([]entity.Article, error)
}

// ResponseDTO is the body of GET /api/news/.
type ResponseDTO struct {
	ID        string           `json:"id" example:"1c9e3f0a-7b7d-4a55-9f07-7a0f3b8f2d11"`
	Category  string           `json:"category" example:"business"`
	Region    *string          `json:"region" example:"us"`
	Articles  []entity.Article `json:"articles"`
	Timestamp time.Time        `json:"timestamp" example:"2025-03-01T09:00:00Z"`
}

// Handler answers GET /api/news/.
type Handler struct{ Svc Fetcher }

// ServeHTTP returns news for the requested category and region.
// @Summary      News feed
// @Description  Fetches news from the primary provider and falls back to alternate sources when it returns nothing
// @Tags         news
// @Produce      json
// @Param        category query string false "business, technology, science, health, entertainment, sports, cryptocurrency" default(business)
// @Param        region   query string false "us, in, eu, asia, global"
// @Success      200 {object} ResponseDTO
// @Failure      500 {object} respond.ErrorBody "Failed to fetch news"
// @Router       /api/news/ [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		category = entity.CategoryBusiness
	}
	region := q.Get("region")

	articles, err := h.Svc.Fetch(r.Context(), entity.FetchRequest{Category: category, Region: region})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, fetchError(err))
		return
	}
	if articles == nil {
		articles = []entity.Article{}
	}

	out := ResponseDTO{
		ID:        uuid.NewString(),
		Category:  category,
		Articles:  articles,
		Timestamp: time.Now().UTC(),
	}
	if region != "" {
		out.Region = &region
	}
	respond.JSON(w, http.StatusOK, out)
}

// Register mounts the news endpoint on mux.
func Register(mux *http.ServeMux, svc Fetcher) {
	mux.Handle("GET /api/news/{$}", Handler{Svc: svc})
}

// fetchError renders err as "Failed to fetch news: <cause>".
func fetchError(err error) error {
	cause := err.Error()
	if errors.Is(err, newsUC.ErrFetchFailed) {
		cause = strings.TrimPrefix(cause, newsUC.ErrFetchFailed.Error()+": ")
	}
	return errors.New("Failed to fetch news: " + cause) //nolint:staticcheck // client-facing detail
}
