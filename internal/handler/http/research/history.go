package research

import (
	"net/http"
	"strconv"

	"financespace/internal/domain/entity"
	"financespace/internal/handler/http/respond"
)

// HistoryHandler answers GET /api/history.
type HistoryHandler struct{ Svc Service }

// ServeHTTP lists recorded interactions, newest first.
// @Summary      Interaction history
// @Description  Returns the most recent interactions, newest first
// @Tags         research
// @Produce      json
// @Param        limit query int false "Maximum entries (1-1000)" default(10)
// @Success      200 {array} HistoryDTO
// @Failure      422 {object} respond.ErrorBody "Invalid limit"
// @Failure      500 {object} respond.ErrorBody "Storage error"
// @Router       /api/history [get]
func (h HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, &entity.ValidationError{Field: "limit", Message: "must be an integer"})
			return
		}
		if n == 0 {
			writeError(w, &entity.ValidationError{Field: "limit", Message: "must be at least 1"})
			return
		}
		limit = n
	}

	entries, err := h.Svc.History(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, historyDTOs(entries))
}
