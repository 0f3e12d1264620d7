package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{"map", http.StatusOK, map[string]string{"message": "ok"}, `{"message":"ok"}`},
		{"struct", http.StatusCreated, struct {
			ID string `json:"id"`
		}{ID: "abc"}, `{"id":"abc"}`},
		{"nil", http.StatusNoContent, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.expectedBody {
				t.Errorf("body = %q, want %q", got, tt.expectedBody)
			}
		})
	}
}

func TestDetail(t *testing.T) {
	w := httptest.NewRecorder()
	Detail(w, http.StatusUnprocessableEntity, "query: is required")

	var body ErrorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusUnprocessableEntity || body.Detail != "query: is required" {
		t.Errorf("got %d %+v", w.Code, body)
	}
}

func TestSafeError(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("server error is masked and logged", func(t *testing.T) {
		logs.Reset()
		w := httptest.NewRecorder()
		SafeError(w, http.StatusInternalServerError, errors.New("AI service error: invalid key sk-1234567890abcdef"))

		var body ErrorBody
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Detail != "AI service error: invalid key sk-****" {
			t.Errorf("detail = %q", body.Detail)
		}
		if strings.Contains(logs.String(), "1234567890abcdef") {
			t.Error("log leaked the key")
		}
		if !strings.Contains(logs.String(), "request failed") {
			t.Error("server error not logged")
		}
	})

	t.Run("client error is not logged", func(t *testing.T) {
		logs.Reset()
		w := httptest.NewRecorder()
		SafeError(w, http.StatusUnprocessableEntity, errors.New("limit must be at least 1"))

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d", w.Code)
		}
		if logs.Len() != 0 {
			t.Errorf("unexpected log: %s", logs.String())
		}
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		SafeError(w, http.StatusInternalServerError, nil)
		if w.Body.Len() != 0 {
			t.Errorf("body = %q", w.Body.String())
		}
	})
}
