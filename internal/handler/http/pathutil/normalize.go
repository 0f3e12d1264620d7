// Package pathutil maps request paths onto a fixed set of metric labels.
package pathutil

import (
	"strings"
)

// Unmatched is the label for paths outside the known route set.
const Unmatched = "unmatched"

// routes lists every path the server answers, after trailing-slash trimming.
var routes = map[string]string{
	"/api":          "/api/",
	"/api/query":    "/api/query",
	"/api/search":   "/api/search",
	"/api/combined": "/api/combined",
	"/api/history":  "/api/history",
	"/api/status":   "/api/status",
	"/api/news":     "/api/news/",
	"/health":       "/health",
	"/ready":        "/ready",
	"/live":         "/live",
	"/metrics":      "/metrics",
}

// prefixes are subtrees collapsed onto one label.
var prefixes = []struct {
	prefix string
	label  string
}{
	{"/swagger/", "/swagger/"},
}

// NormalizePath returns the metric label for path. Known routes keep their
// canonical form, Swagger assets collapse to "/swagger/", and anything else
// becomes Unmatched so scanners cannot inflate label cardinality.
//
//	NormalizePath("/api/news")            // "/api/news/"
//	NormalizePath("/api/history?limit=5") // "/api/history"
//	NormalizePath("/swagger/index.html")  // "/swagger/"
//	NormalizePath("/wp-login.php")        // "unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	for _, p := range prefixes {
		if strings.HasPrefix(path, p.prefix) {
			return p.label
		}
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	if label, ok := routes[path]; ok {
		return label
	}
	return Unmatched
}

// Cardinality is the number of distinct labels NormalizePath can return.
func Cardinality() int {
	return len(routes) + len(prefixes) + 1
}
