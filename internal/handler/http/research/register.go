package research

import (
	"net/http"

	"financespace/internal/handler/http/validate"
)

// Register mounts the research endpoints on mux.
func Register(mux *http.ServeMux, svc Service, v *validate.Validator) {
	mux.Handle("GET /api/{$}", RootHandler{})
	mux.Handle("POST /api/query", QueryHandler{Svc: svc, Validator: v})
	mux.Handle("POST /api/search", SearchHandler{Svc: svc, Validator: v})
	mux.Handle("POST /api/combined", CombinedHandler{Svc: svc, Validator: v})
	mux.Handle("GET /api/history", HistoryHandler{Svc: svc})
	mux.Handle("POST /api/status", CreateStatusHandler{Svc: svc, Validator: v})
	mux.Handle("GET /api/status", ListStatusHandler{Svc: svc})
}
