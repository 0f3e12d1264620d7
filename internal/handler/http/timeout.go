package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"financespace/internal/handler/http/respond"
)

// Timeout returns middleware that bounds a whole request. When the deadline
// passes first, the client gets 504 {"detail":"request timeout"} and later
// writes from the handler are discarded with http.ErrHandlerTimeout.
// The handler's context is canceled either way so outbound calls stop.
// A non-positive duration disables the middleware.
func Timeout(duration time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if duration <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutResponseWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushHeader(http.StatusOK)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.wroteHeader {
					respond.Detail(w, http.StatusGatewayTimeout, "request timeout")
				}
			}
		})
	}
}

// timeoutResponseWriter buffers headers so the handler goroutine never
// touches the real header map after a timeout response has been sent.
type timeoutResponseWriter struct {
	w      http.ResponseWriter
	header http.Header

	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func (tw *timeoutResponseWriter) Header() http.Header { return tw.header }

func (tw *timeoutResponseWriter) WriteHeader(statusCode int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return
	}
	tw.flushHeader(statusCode)
}

func (tw *timeoutResponseWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.flushHeader(http.StatusOK)
	return tw.w.Write(b)
}

// flushHeader sends the buffered headers once. Callers hold mu.
func (tw *timeoutResponseWriter) flushHeader(statusCode int) {
	if tw.wroteHeader {
		return
	}
	tw.wroteHeader = true
	dst := tw.w.Header()
	for k, vv := range tw.header {
		dst[k] = vv
	}
	tw.w.WriteHeader(statusCode)
}
