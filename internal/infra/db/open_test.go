package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestGetConnectionConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME", "")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "")

	assert.Equal(t, DefaultConnectionConfig(), getConnectionConfigFromEnv())
}

func TestGetConnectionConfigFromEnv_MaxOpenConns(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{name: "valid value", envValue: "50", expected: 50},
		{name: "invalid value - non-numeric", envValue: "invalid", expected: 25},
		{name: "invalid value - zero", envValue: "0", expected: 25},
		{name: "invalid value - negative", envValue: "-10", expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_OPEN_CONNS", tt.envValue)
			assert.Equal(t, tt.expected, getConnectionConfigFromEnv().MaxOpenConns)
		})
	}
}

func TestGetConnectionConfigFromEnv_ConnMaxLifetime(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{name: "valid value - hours", envValue: "2h", expected: 2 * time.Hour},
		{name: "valid value - mixed", envValue: "1h30m", expected: 90 * time.Minute},
		{name: "invalid value - not a duration", envValue: "invalid", expected: 1 * time.Hour},
		{name: "invalid value - zero", envValue: "0s", expected: 1 * time.Hour},
		{name: "invalid value - negative", envValue: "-1h", expected: 1 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_CONN_MAX_LIFETIME", tt.envValue)
			assert.Equal(t, tt.expected, getConnectionConfigFromEnv().ConnMaxLifetime)
		})
	}
}

func TestGetConnectionConfigFromEnv_AllCustomValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "100")
	t.Setenv("DB_MAX_IDLE_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "2h")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45m")

	cfg := getConnectionConfigFromEnv()

	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, 50, cfg.MaxIdleConns)
	assert.Equal(t, 2*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 45*time.Minute, cfg.ConnMaxIdleTime)
}

func TestOpen_MissingDSN(t *testing.T) {
	db, err := Open(context.Background(), "")
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrMissingDSN)
}

/* ──────────────────────────────── Open Integration Tests ──────────────────────────────── */

func TestOpen_SuccessfulConnection(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, db.PingContext(context.Background()))
	require.NoError(t, MigrateUp(db))
}
