// Package http provides the HTTP server plumbing: middleware, health
// probes and Prometheus exposition. Endpoint handlers live in the research
// and news subpackages.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"financespace/internal/handler/http/respond"
	"financespace/internal/observability/metrics"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"` // "healthy", "degraded" or "unhealthy"
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports database connectivity, pool statistics and which
// outbound providers have credentials configured.
type HealthHandler struct {
	DB      *sql.DB
	Version string

	// Providers maps a provider name to whether it is configured.
	// Unconfigured providers are reported but never make the service unhealthy.
	Providers map[string]bool
}

// ServeHTTP returns 200 when the database answers a ping, 503 otherwise.
//
// @Summary      Health check
// @Description  Database connectivity, connection pool statistics and provider configuration
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.DB != nil {
		dbCheck := h.checkDatabase(ctx)
		checks["database"] = dbCheck
		if dbCheck.Status == "unhealthy" {
			allHealthy = false
		}
	} else {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	if len(h.Providers) > 0 {
		checks["providers"] = h.checkProviders()
	}

	status, statusCode := "healthy", http.StatusOK
	if !allHealthy {
		status, statusCode = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// checkDatabase pings the database and reports connection pool statistics.
// A pool at 80% utilization or with no connection cap is "degraded".
func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: respond.SanitizeError(err),
		}
	}

	stats := h.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)

	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}

	return CheckStatus{Status: "healthy", Details: details}
}

func (h *HealthHandler) checkProviders() CheckStatus {
	names := make([]string, 0, len(h.Providers))
	for name := range h.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	details := make(map[string]any, len(names))
	var missing []string
	for _, name := range names {
		if h.Providers[name] {
			details[name] = "configured"
		} else {
			details[name] = "missing credentials"
			missing = append(missing, name)
		}
	}

	check := CheckStatus{Status: "healthy", Details: details}
	if len(missing) > 0 {
		check.Status = "degraded"
		check.Message = "some providers have no credentials"
	}
	return check
}

// ReadyHandler answers readiness probes: 200 once the database accepts connections.
type ReadyHandler struct {
	DB *sql.DB
}

// ServeHTTP returns 200 "ready" or 503 when the database is unreachable.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "ready"
// @Failure      503 {string} string "database not ready"
// @Router       /ready [get]
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		http.Error(w, "database not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}
	writeText(w, "ready")
}

// LiveHandler answers liveness probes.
type LiveHandler struct{}

// ServeHTTP always returns 200 "alive".
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "alive"
// @Router       /live [get]
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeText(w, "alive")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.Any("error", err))
	}
}
