package research

import (
	"net/http"

	"financespace/internal/handler/http/respond"
	"financespace/internal/handler/http/validate"
)

// CombinedHandler answers POST /api/combined.
type CombinedHandler struct {
	Svc       Service
	Validator *validate.Validator
}

// ServeHTTP searches the web and summarizes the top results.
// @Summary      Search and summarize
// @Description  Runs a web search, then asks the language model to summarize the top three hits
// @Tags         research
// @Accept       json
// @Produce      json
// @Param        request body QueryRequest true "Topic"
// @Success      200 {object} CombinedResponse
// @Failure      422 {object} respond.ErrorBody "Invalid request body"
// @Failure      500 {object} respond.ErrorBody "Search or AI service error"
// @Router       /api/combined [post]
func (h CombinedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decode(w, r, h.Validator, &req) {
		return
	}

	res, err := h.Svc.Combined(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, CombinedResponse{
		ID:            res.ID,
		Query:         res.Query,
		SearchResults: searchResults(res.SearchResults),
		AISummary:     res.Summary,
		Timestamp:     res.Timestamp,
	})
}
