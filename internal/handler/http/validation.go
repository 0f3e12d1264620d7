package http

import (
	"net/http"

	"financespace/internal/handler/http/respond"
)

const (
	// MaxPathLength bounds the request path.
	MaxPathLength = 2048
	// DefaultMaxBodyBytes bounds JSON request bodies.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// InputValidation returns middleware that rejects oversized paths with 414
// and caps request bodies at maxBody bytes. A non-positive maxBody means
// DefaultMaxBodyBytes. Handlers see the cap as a *http.MaxBytesError on read.
func InputValidation(maxBody int64) Middleware {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > MaxPathLength {
				respond.Detail(w, http.StatusRequestURITooLong, "URI too long")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBody)
			next.ServeHTTP(w, r)
		})
	}
}
