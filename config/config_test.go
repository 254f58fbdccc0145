package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, StoreMemory, cfg.App.Store)
	assert.Equal(t, 500*time.Millisecond, cfg.App.StoreLatency)
	assert.Equal(t, 1500*time.Millisecond, cfg.App.ContactLatency)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, "healthcare.events", cfg.RabbitMQ.Exchange)
	assert.Empty(t, cfg.RabbitMQ.URL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_STORE", StorePostgres)
	t.Setenv("APP_STORE_LATENCY", "0s")
	t.Setenv("JWT_ACCESS_EXPIRY", "2h")
	t.Setenv("REDIS_EMBEDDED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.App.Store)
	assert.Zero(t, cfg.App.StoreLatency)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessExpiry)
	assert.True(t, cfg.Redis.Embedded)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func captureStandardLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := logrus.StandardLogger()
	out := logger.Out
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(out) })
	return buf
}

func TestLoadConfig_InvalidDurationWarnsAndFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_STORE_LATENCY", "500")
	t.Setenv("JWT_ACCESS_EXPIRY", "2h")
	logs := captureStandardLog(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.App.StoreLatency)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessExpiry)
	assert.Contains(t, logs.String(), "Invalid duration, using default")
	assert.Contains(t, logs.String(), "key=APP_STORE_LATENCY")
	assert.NotContains(t, logs.String(), "JWT_ACCESS_EXPIRY")
}

func TestLoadConfig_UnsetDurationIsQuiet(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_STORE_LATENCY", "")
	logs := captureStandardLog(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.App.StoreLatency)
	assert.NotContains(t, logs.String(), "Invalid duration")
}
