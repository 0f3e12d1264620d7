package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financespace/internal/domain/entity"
)

type fakeRecorder struct {
	completions []bool
	lengths     []int
}

func (f *fakeRecorder) RecordCompletion(_ string, success bool, _ time.Duration) {
	f.completions = append(f.completions, success)
}

func (f *fakeRecorder) RecordResponseLength(_ string, length int) {
	f.lengths = append(f.lengths, length)
}

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func openAIServer(t *testing.T, status int, body string, got *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const chatOK = `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
 "choices":[{"index":0,"message":{"role":"assistant","content":"Bitcoin is a cryptocurrency."},"finish_reason":"stop"}]}`

func newTestOpenAI(srvURL string) (*OpenAI, *fakeRecorder) {
	cfg := DefaultConfig()
	cfg.BaseURL = srvURL + "/v1"
	o := NewOpenAI("sk-test", cfg)
	rec := &fakeRecorder{}
	o.metricsRecorder = rec
	return o, rec
}

func TestOpenAI_Complete_WithoutContext(t *testing.T) {
	var got chatRequest
	srv := openAIServer(t, http.StatusOK, chatOK, &got)
	o, rec := newTestOpenAI(srv.URL)

	answer, err := o.Complete(context.Background(), "What is Bitcoin?", "")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin is a cryptocurrency.", answer)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.InDelta(t, 0.3, got.Temperature, 0.0001)
	assert.Equal(t, 1000, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, SystemPrompt, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "What is Bitcoin?", got.Messages[1].Content)

	assert.Equal(t, []bool{true}, rec.completions)
	assert.Equal(t, []int{len("Bitcoin is a cryptocurrency.")}, rec.lengths)
}

func TestOpenAI_Complete_WithContext(t *testing.T) {
	var got chatRequest
	srv := openAIServer(t, http.StatusOK, chatOK, &got)
	o, _ := newTestOpenAI(srv.URL)

	_, err := o.Complete(context.Background(), "summarize", "Search results:\n1. A\nB\n\n")
	require.NoError(t, err)

	require.Len(t, got.Messages, 3)
	assert.Equal(t, "system", got.Messages[1].Role)
	assert.Equal(t, "Context: Search results:\n1. A\nB\n\n", got.Messages[1].Content)
	assert.Equal(t, "summarize", got.Messages[2].Content)
}

func TestOpenAI_Complete_APIError(t *testing.T) {
	srv := openAIServer(t, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key","type":"invalid_request_error","code":"invalid_api_key"}}`, nil)
	o, rec := newTestOpenAI(srv.URL)

	_, err := o.Complete(context.Background(), "q", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrProviderStatus)
	assert.Equal(t, []bool{false}, rec.completions)
}

func TestOpenAI_Complete_EmptyChoices(t *testing.T) {
	srv := openAIServer(t, http.StatusOK, `{"id":"c1","object":"chat.completion","choices":[]}`, nil)
	o, _ := newTestOpenAI(srv.URL)

	_, err := o.Complete(context.Background(), "q", "")
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.ErrorIs(t, err, entity.ErrMalformedResponse)
}

func TestOpenAI_Complete_Unreachable(t *testing.T) {
	srv := openAIServer(t, http.StatusOK, chatOK, nil)
	srv.Close()
	o, _ := newTestOpenAI(srv.URL)

	_, err := o.Complete(context.Background(), "q", "")
	assert.ErrorIs(t, err, entity.ErrTransport)
}
