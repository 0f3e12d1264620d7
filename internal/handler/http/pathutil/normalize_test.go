package pathutil

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/", "/api/"},
		{"/api", "/api/"},
		{"/api/query", "/api/query"},
		{"/api/combined/", "/api/combined"},
		{"/api/history?limit=5", "/api/history"},
		{"/api/news/", "/api/news/"},
		{"/api/news", "/api/news/"},
		{"/api/news/?category=crypto&region=eu", "/api/news/"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/swagger/index.html", "/swagger/"},
		{"/swagger/doc.json", "/swagger/"},
		{"/api/news/123", Unmatched},
		{"/wp-login.php", Unmatched},
		{"/", Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCardinality(t *testing.T) {
	if got := Cardinality(); got != 13 {
		t.Errorf("Cardinality() = %d, want 13", got)
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{"/api/query", "/api/news/?category=crypto", "/swagger/index.html", "/unknown/path/123"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizePath(paths[i%len(paths)])
	}
}
