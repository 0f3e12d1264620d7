package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Zero(t, rw.BytesWritten())
	assert.False(t, rw.HeaderWritten())
}

func TestWrap_Idempotent(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusInternalServerError)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rw.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	n, err := rw.Write([]byte(`{"message":`))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	_, err = rw.Write([]byte(`"ok"}`))
	require.NoError(t, err)

	assert.True(t, rw.HeaderWritten())
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 16, rw.BytesWritten())
	assert.Equal(t, `{"message":"ok"}`, rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.Flush()
	assert.True(t, rec.Flushed)
	assert.True(t, rw.HeaderWritten())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, http.ResponseWriter(rec), Wrap(rec).Unwrap())
}
