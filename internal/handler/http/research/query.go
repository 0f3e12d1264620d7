package research

import (
	"net/http"

	"financespace/internal/handler/http/respond"
	"financespace/internal/handler/http/validate"
)

// QueryHandler answers POST /api/query.
type QueryHandler struct {
	Svc       Service
	Validator *validate.Validator
}

// ServeHTTP asks the language model a general question.
// @Summary      General AI query
// @Description  Sends the query to the configured language model and records the interaction
// @Tags         research
// @Accept       json
// @Produce      json
// @Param        request body QueryRequest true "Question"
// @Success      200 {object} QueryResponse
// @Failure      413 {object} respond.ErrorBody "Body too large"
// @Failure      422 {object} respond.ErrorBody "Invalid request body"
// @Failure      500 {object} respond.ErrorBody "AI service error"
// @Router       /api/query [post]
func (h QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !decode(w, r, h.Validator, &req) {
		return
	}

	res, err := h.Svc.Query(r.Context(), req.Query)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, QueryResponse{
		ID:        res.ID,
		Query:     res.Query,
		Response:  res.Response,
		Type:      string(res.Type),
		Timestamp: res.Timestamp,
	})
}
