package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(t *testing.T, h *HealthHandler) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var response HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return rec, response
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		expectedStatus int
		expectHealthy  bool
	}{
		{
			name:           "healthy database",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			expectedStatus: http.StatusOK,
			expectHealthy:  true,
		},
		{
			name:           "database connection error",
			setupMock:      func(mock sqlmock.Sqlmock) { mock.ExpectPing().WillReturnError(sql.ErrConnDone) },
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			db.SetMaxOpenConns(10)
			tt.setupMock(mock)

			rec, response := serveHealth(t, &HealthHandler{DB: db, Version: "test-version"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectHealthy {
				assert.Equal(t, "healthy", response.Status)
				assert.Equal(t, "healthy", response.Checks["database"].Status)
				assert.Contains(t, response.Checks["database"].Details, "utilization_percent")
			} else {
				assert.Equal(t, "unhealthy", response.Status)
			}
			assert.Equal(t, "test-version", response.Version)
			assert.NotEmpty(t, response.Timestamp)
			assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthHandler_NoDatabaseConfigured(t *testing.T) {
	rec, response := serveHealth(t, &HealthHandler{Version: "test-version"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "not configured", response.Checks["database"].Message)
}

func TestHealthHandler_MaxOpenConnectionsZero(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(0)
	mock.ExpectPing()

	rec, response := serveHealth(t, &HealthHandler{DB: db})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", response.Status)
	dbCheck := response.Checks["database"]
	assert.Equal(t, "degraded", dbCheck.Status)
	assert.NotContains(t, dbCheck.Details, "utilization_percent")
}

func TestHealthHandler_Providers(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(10)
	mock.ExpectPing()

	rec, response := serveHealth(t, &HealthHandler{
		DB:        db,
		Providers: map[string]bool{"newsdata": true, "gnews": false},
	})

	assert.Equal(t, http.StatusOK, rec.Code, "missing provider keys never fail health")
	providers := response.Checks["providers"]
	assert.Equal(t, "degraded", providers.Status)
	assert.Equal(t, "configured", providers.Details["newsdata"])
	assert.Equal(t, "missing credentials", providers.Details["gnews"])
}

func TestReadyHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(sqlmock.Sqlmock)
		expectedStatus int
		expectedBody   string
	}{
		{"ready", func(mock sqlmock.Sqlmock) { mock.ExpectPing() }, http.StatusOK, "ready"},
		{"database not ready", func(mock sqlmock.Sqlmock) { mock.ExpectPing().WillReturnError(sql.ErrConnDone) }, http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tt.setupMock(mock)

			rec := httptest.NewRecorder()
			(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReadyHandler_NoDatabaseConfigured(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "database not configured")
}

func TestReadyHandler_Timeout(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	mock.ExpectPing().WillDelayFor(3 * time.Second)

	rec := httptest.NewRecorder()
	(&ReadyHandler{DB: db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
