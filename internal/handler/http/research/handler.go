package research

import (
	"context"
	"errors"
	"net/http"

	"financespace/internal/domain/entity"
	"financespace/internal/handler/http/respond"
	"financespace/internal/handler/http/validate"
	researchUC "financespace/internal/usecase/research"
)

// Service is the use case surface the handlers depend on.
// *research.Service implements it.
type Service interface {
	Query(ctx context.Context, query string) (*researchUC.QueryResult, error)
	Search(ctx context.Context, query string) (*researchUC.SearchOutcome, error)
	Combined(ctx context.Context, query string) (*researchUC.CombinedOutcome, error)
	History(ctx context.Context, limit int) ([]*entity.HistoryEntry, error)
	CreateStatus(ctx context.Context, clientName string) (*entity.StatusCheck, error)
	ListStatus(ctx context.Context) ([]*entity.StatusCheck, error)
}

// decode reads and validates a request body, writing the error response
// itself. It reports whether the handler should continue.
func decode(w http.ResponseWriter, r *http.Request, v *validate.Validator, dst any) bool {
	err := v.DecodeJSON(r, dst)
	if err == nil {
		return true
	}
	if errors.Is(err, validate.ErrBodyTooLarge) {
		respond.Detail(w, http.StatusRequestEntityTooLarge, err.Error())
		return false
	}
	writeError(w, err)
	return false
}

// writeError maps use case errors to status codes. Validation failures are
// 422; everything else is a 500 with a sanitized detail.
func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		respond.Detail(w, http.StatusUnprocessableEntity, ve.Error())
		return
	}
	if errors.Is(err, entity.ErrInvalidInput) {
		respond.SafeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	respond.SafeError(w, http.StatusInternalServerError, err)
}
