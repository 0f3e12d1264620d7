package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"financespace/internal/handler/http/pathutil"
	"financespace/internal/handler/http/responsewriter"
	"financespace/internal/observability/metrics"
)

// MetricsMiddleware records request count, duration, sizes and in-flight
// requests. Paths are normalized with pathutil so unknown URLs share one label.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.ActiveConnections.Inc()
		defer metrics.ActiveConnections.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(
			r.Method,
			path,
			strconv.Itoa(rw.StatusCode()),
			time.Since(start),
			int(max(r.ContentLength, 0)),
			rw.BytesWritten(),
		)
	})
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
