package research

import (
	"net/http"

	"financespace/internal/handler/http/respond"
)

// RootHandler answers GET /api/.
type RootHandler struct{}

// ServeHTTP returns the API welcome message.
// @Summary      API root
// @Description  Confirms the research API is up
// @Tags         research
// @Produce      json
// @Success      200 {object} MessageDTO
// @Router       /api/ [get]
func (RootHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, MessageDTO{Message: WelcomeMessage})
}
