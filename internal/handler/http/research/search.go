package research

import (
	"net/http"

	"financespace/internal/handler/http/respond"
	"financespace/internal/handler/http/validate"
)

// SearchHandler answers POST /api/search.
type SearchHandler struct {
	Svc       Service
	Validator *validate.Validator
}

// ServeHTTP runs a web search.
// @Summary      Web search
// @Description  Searches the web and records how many results were found
// @Tags         research
// @Accept       json
// @Produce      json
// @Param        request body QueryRequest true "Search terms"
// @Success      200 {object} SearchResponse
// @Failure      422 {object} respond.ErrorBody "Invalid request body"
// @Failure      500 {object} respond.ErrorBody "Search service error"
// @Router       /api/search [post]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decode(w, r, h.Validator, &req) {
		return
	}

	res, err := h.Svc.Search(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SearchResponse{
		ID:        res.ID,
		Query:     res.Query,
		Results:   searchResults(res.Results),
		Timestamp: res.Timestamp,
	})
}
