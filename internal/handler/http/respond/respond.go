// Package respond writes JSON responses and error bodies.
//
// Errors use the {"detail": "<message>"} shape. Messages are passed through
// SanitizeError first so provider keys and DSN passwords never reach a client
// or a log line.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON error shape returned by every endpoint.
type ErrorBody struct {
	Detail string `json:"detail" example:"Failed to fetch news: newsdata: provider unreachable"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Detail writes {"detail": msg} with the given status code.
func Detail(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Detail: msg})
}

// SafeError writes err as a detail body after masking secrets.
// Server errors are also logged with the masked message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	msg := SanitizeError(err)
	if code >= http.StatusInternalServerError {
		slog.Default().Error("request failed",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", msg))
	}
	Detail(w, code, msg)
}
