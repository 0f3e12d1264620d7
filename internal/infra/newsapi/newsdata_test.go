package newsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financespace/internal/domain/entity"
)

// newsDataServer records the query of the last request and replies with body/status.
func newsDataServer(t *testing.T, status int, body string, got *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/1/news", r.URL.Path)
		if got != nil {
			*got = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCountryParam(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"us", "us"},
		{"in", "in"},
		{"eu", "de,fr,it,gb,es,nl"},
		{"EU", "de,fr,it,gb,es,nl"},
		{"asia", "cn,jp,in,id,sg,my,th,vn,kr"},
		{"global", ""},
		{"", ""},
		{"mars", ""},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryParam(tt.region))
		})
	}
}

func TestCategoryParam(t *testing.T) {
	assert.Equal(t, "cryptocurrency", CategoryParam("crypto"))
	assert.Equal(t, "cryptocurrency", CategoryParam("Cryptocurrency"))
	assert.Equal(t, "business", CategoryParam("Business"))
	assert.Equal(t, "weather", CategoryParam("WEATHER"))
	assert.Equal(t, "", CategoryParam(""))
}

func TestNewsData_Fetch_QueryParameters(t *testing.T) {
	tests := []struct {
		name         string
		req          entity.FetchRequest
		wantCountry  string
		wantCategory string
		hasCountry   bool
		hasCategory  bool
	}{
		{
			name:         "eu region expands to country list",
			req:          entity.FetchRequest{Category: "business", Region: "eu"},
			wantCountry:  "de,fr,it,gb,es,nl",
			wantCategory: "business",
			hasCountry:   true,
			hasCategory:  true,
		},
		{
			name:         "unknown category passes through lowercased",
			req:          entity.FetchRequest{Category: "Weather"},
			wantCategory: "weather",
			hasCategory:  true,
		},
		{
			name:         "crypto maps to cryptocurrency",
			req:          entity.FetchRequest{Category: "crypto", Region: "global"},
			wantCategory: "cryptocurrency",
			hasCategory:  true,
		},
		{
			name: "empty category omits parameter",
			req:  entity.FetchRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			srv := newsDataServer(t, http.StatusOK, `{"status":"success","results":[]}`, &got)

			nd := NewNewsData(Config{APIKey: "k", BaseURL: srv.URL})
			_, err := nd.Fetch(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, "k", got.Get("apikey"))
			assert.Equal(t, "en", got.Get("language"))
			assert.Equal(t, tt.hasCountry, got.Has("country"))
			assert.Equal(t, tt.wantCountry, got.Get("country"))
			assert.Equal(t, tt.hasCategory, got.Has("category"))
			assert.Equal(t, tt.wantCategory, got.Get("category"))
		})
	}
}

func TestNewsData_Fetch_MapsFields(t *testing.T) {
	body := `{"status":"success","totalResults":2,"results":[
		{"title":"Fed holds rates","link":"https://ex.com/a","source_id":"reuters",
		 "pubDate":"2024-06-10 08:00:00","description":"d","image_url":"https://ex.com/a.png"},
		{"title":"No source","link":"https://ex.com/b","source_id":null,"pubDate":null,
		 "description":null,"image_url":null}
	]}`
	srv := newsDataServer(t, http.StatusOK, body, nil)

	articles, err := NewNewsData(Config{BaseURL: srv.URL}).Fetch(context.Background(), entity.FetchRequest{Category: "business"})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	a := articles[0]
	assert.Equal(t, "Fed holds rates", a.Title)
	assert.Equal(t, "https://ex.com/a", a.URL)
	assert.Equal(t, "reuters", a.Source)
	assert.JSONEq(t, `"2024-06-10 08:00:00"`, string(a.PublishedAt))
	assert.Equal(t, "d", a.Description)
	require.NotNil(t, a.ImageURL)
	assert.Equal(t, "https://ex.com/a.png", *a.ImageURL)

	b := articles[1]
	assert.Equal(t, "NewsData.io", b.Source)
	assert.Nil(t, b.PublishedAt)
	assert.Equal(t, "", b.Description)
	assert.Nil(t, b.ImageURL)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"published_at":null`)
}

func TestNewsData_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
	}{
		{
			name:     "status error payload",
			status:   http.StatusOK,
			body:     `{"status":"error","results":{"message":"API key invalid","code":"Unauthorized"}}`,
			wantKind: entity.ErrProviderStatus,
		},
		{
			name:     "non-2xx",
			status:   http.StatusTooManyRequests,
			body:     `{"status":"error"}`,
			wantKind: entity.ErrProviderStatus,
		},
		{
			name:     "undecodable body",
			status:   http.StatusOK,
			body:     `<html>oops</html>`,
			wantKind: entity.ErrMalformedResponse,
		},
		{
			name:     "results not a list",
			status:   http.StatusOK,
			body:     `{"status":"success","results":"nope"}`,
			wantKind: entity.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newsDataServer(t, tt.status, tt.body, nil)

			articles, err := NewNewsData(Config{BaseURL: srv.URL}).Fetch(context.Background(), entity.FetchRequest{})
			assert.Nil(t, articles)
			assert.ErrorIs(t, err, tt.wantKind)

			var pe *entity.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "newsdata", pe.Provider)
		})
	}
}

func TestNewsData_Fetch_MissingResultsIsEmpty(t *testing.T) {
	srv := newsDataServer(t, http.StatusOK, `{"status":"success"}`, nil)

	articles, err := NewNewsData(Config{BaseURL: srv.URL}).Fetch(context.Background(), entity.FetchRequest{})
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestNewsData_Fetch_TransportErrorHidesKey(t *testing.T) {
	srv := newsDataServer(t, http.StatusOK, `{}`, nil)
	srv.Close()

	_, err := NewNewsData(Config{APIKey: "secret-key", BaseURL: srv.URL}).Fetch(context.Background(), entity.FetchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrTransport)
	assert.False(t, strings.Contains(err.Error(), "secret-key"), "error leaks API key: %v", err)
}

func TestNewsData_ForCategory(t *testing.T) {
	var got url.Values
	srv := newsDataServer(t, http.StatusOK, `{"status":"success","results":[]}`, &got)

	base := NewNewsData(Config{BaseURL: srv.URL})
	crypto := base.ForCategory(entity.CategoryCryptocurrency)

	assert.Equal(t, "newsdata", base.Name())
	assert.Equal(t, "newsdata-cryptocurrency", crypto.Name())

	_, err := crypto.Fetch(context.Background(), entity.FetchRequest{Category: "business", Region: "us"})
	require.NoError(t, err)
	assert.Equal(t, "cryptocurrency", got.Get("category"))
	assert.Equal(t, "us", got.Get("country"))
}
