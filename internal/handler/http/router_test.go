package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financespace/internal/domain/entity"
	"financespace/internal/handler/http/middleware"
	researchUC "financespace/internal/usecase/research"
)

type routerResearch struct{ slow time.Duration }

func (s routerResearch) Query(ctx context.Context, q string) (*researchUC.QueryResult, error) {
	if s.slow > 0 {
		select {
		case <-time.After(s.slow):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &researchUC.QueryResult{ID: "1", Query: q, Response: "a", Type: entity.InteractionGeneral}, nil
}

func (routerResearch) Search(_ context.Context, q string) (*researchUC.SearchOutcome, error) {
	return &researchUC.SearchOutcome{ID: "2", Query: q}, nil
}

func (routerResearch) Combined(_ context.Context, q string) (*researchUC.CombinedOutcome, error) {
	return &researchUC.CombinedOutcome{ID: "3", Query: q}, nil
}

func (routerResearch) History(context.Context, int) ([]*entity.HistoryEntry, error) {
	return nil, nil
}

func (routerResearch) CreateStatus(_ context.Context, name string) (*entity.StatusCheck, error) {
	return &entity.StatusCheck{ID: "s", ClientName: name}, nil
}

func (routerResearch) ListStatus(context.Context) ([]*entity.StatusCheck, error) {
	return nil, nil
}

type routerNews struct{}

func (routerNews) Fetch(context.Context, entity.FetchRequest) ([]entity.Article, error) {
	return []entity.Article{{Title: "t", Source: "NewsData.io"}}, nil
}

func newTestRouter(svc routerResearch, timeout time.Duration) http.Handler {
	return NewRouter(RouterConfig{
		Version:        "test",
		Research:       svc,
		News:           routerNews{},
		CORS:           middleware.DefaultCORSConfig(),
		RequestTimeout: timeout,
	})
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(routerResearch{}, time.Second)

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/", "", http.StatusOK},
		{http.MethodPost, "/api/query", `{"query":"q"}`, http.StatusOK},
		{http.MethodPost, "/api/search", `{"query":"q"}`, http.StatusOK},
		{http.MethodPost, "/api/combined", `{"query":"q"}`, http.StatusOK},
		{http.MethodGet, "/api/history", "", http.StatusOK},
		{http.MethodGet, "/api/status", "", http.StatusOK},
		{http.MethodPost, "/api/status", `{"client_name":"c"}`, http.StatusOK},
		{http.MethodGet, "/api/news/?category=science", "", http.StatusOK},
		{http.MethodGet, "/live", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/ready", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_PropagatesRequestIDAndTraceID(t *testing.T) {
	h := newTestRouter(routerResearch{}, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("X-Request-ID", "client-req-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "client-req-1", rr.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rr.Header().Get("X-Trace-Id"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(routerResearch{}, time.Second)

	req := httptest.NewRequest(http.MethodOptions, "/api/query", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RequestTimeout(t *testing.T) {
	h := newTestRouter(routerResearch{slow: time.Second}, 20*time.Millisecond)

	req := httptest.NewRequest(http.MethodPost, "/api/query", strings.NewReader(`{"query":"q"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusGatewayTimeout, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "request timeout", body["detail"])
}
