// Package middleware provides cross-cutting HTTP middleware for the API.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	env "financespace/pkg/config"
)

// Wildcard allows any origin.
const Wildcard = "*"

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins, or ["*"] for any origin.
	AllowedOrigins []string

	// AllowedMethods is sent on preflight responses.
	AllowedMethods []string

	// AllowedHeaders is sent on preflight responses. Empty means echo the
	// requested headers back.
	AllowedHeaders []string

	// MaxAge is how long preflight results can be cached, in seconds.
	MaxAge int

	// Logger receives rejected-origin warnings. Nil disables logging.
	Logger *slog.Logger
}

// DefaultCORSConfig allows every origin, method and header.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{Wildcard},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		MaxAge:         86400,
	}
}

// LoadCORSConfig reads CORS_ALLOWED_ORIGINS (comma list or "*"),
// CORS_ALLOWED_HEADERS and CORS_MAX_AGE on top of DefaultCORSConfig.
func LoadCORSConfig() (CORSConfig, error) {
	cfg := DefaultCORSConfig()

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins, err := ParseOrigins(raw)
		if err != nil {
			return CORSConfig{}, err
		}
		cfg.AllowedOrigins = origins
	}

	cfg.AllowedHeaders = env.GetEnvStringList("CORS_ALLOWED_HEADERS", cfg.AllowedHeaders)

	if raw := strings.TrimSpace(os.Getenv("CORS_MAX_AGE")); raw != "" {
		maxAge, err := strconv.Atoi(raw)
		if err != nil || maxAge < 0 {
			return CORSConfig{}, fmt.Errorf("invalid CORS_MAX_AGE %q: must be a non-negative integer", raw)
		}
		cfg.MaxAge = maxAge
	}

	return cfg, nil
}

// ParseOrigins splits a comma list of origins and validates each one.
// A lone "*" is returned as-is.
func ParseOrigins(raw string) ([]string, error) {
	list := splitList(raw)
	if len(list) == 0 {
		return nil, fmt.Errorf("at least one origin must be configured")
	}
	if slices.Contains(list, Wildcard) {
		if len(list) > 1 {
			return nil, fmt.Errorf("origin %q cannot be combined with other origins", Wildcard)
		}
		return list, nil
	}

	for _, origin := range list {
		u, err := url.Parse(origin)
		if err != nil {
			return nil, fmt.Errorf("invalid origin URL '%s': %w", origin, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("origin must use http or https scheme: %s", origin)
		}
		if u.Host == "" || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
			return nil, fmt.Errorf("origin must be scheme://host[:port]: %s", origin)
		}
		if strings.HasSuffix(origin, "/") {
			return nil, fmt.Errorf("origin must not have trailing slash: %s", origin)
		}
	}
	return list, nil
}

func (c CORSConfig) allows(origin string) bool {
	return slices.Contains(c.AllowedOrigins, Wildcard) || slices.Contains(c.AllowedOrigins, origin)
}

// CORS returns middleware that sets CORS headers for allowed origins.
//
// The request origin is echoed back (never "*") so credentialed requests
// work with the wildcard policy. Preflight OPTIONS requests from an allowed
// origin are answered with 204 and never reach next. Requests from other
// origins pass through without CORS headers and the browser blocks them.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.allows(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", methods)
				if headers != "" {
					h.Set("Access-Control-Allow-Headers", headers)
				} else if req := r.Header.Get("Access-Control-Request-Headers"); req != "" {
					h.Set("Access-Control-Allow-Headers", req)
				}
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
