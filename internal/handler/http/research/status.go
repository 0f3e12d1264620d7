package research

import (
	"net/http"

	"financespace/internal/handler/http/respond"
	"financespace/internal/handler/http/validate"
)

// CreateStatusHandler answers POST /api/status.
type CreateStatusHandler struct {
	Svc       Service
	Validator *validate.Validator
}

// ServeHTTP stores a status check for the calling client.
// @Summary      Record status check
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        request body StatusRequest true "Client"
// @Success      200 {object} StatusDTO
// @Failure      422 {object} respond.ErrorBody "Invalid request body"
// @Failure      500 {object} respond.ErrorBody "Storage error"
// @Router       /api/status [post]
func (h CreateStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if !decode(w, r, h.Validator, &req) {
		return
	}

	sc, err := h.Svc.CreateStatus(r.Context(), req.ClientName)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, statusDTO(sc))
}

// ListStatusHandler answers GET /api/status.
type ListStatusHandler struct{ Svc Service }

// ServeHTTP lists stored status checks.
// @Summary      List status checks
// @Tags         status
// @Produce      json
// @Success      200 {array} StatusDTO
// @Failure      500 {object} respond.ErrorBody "Storage error"
// @Router       /api/status [get]
func (h ListStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks, err := h.Svc.ListStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]StatusDTO, 0, len(checks))
	for _, c := range checks {
		out = append(out, statusDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}
