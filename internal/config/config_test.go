package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/cricket-ingest/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.AppEnv)
	assert.Equal(t, "cricket-ingest", cfg.ServiceName)
	assert.Equal(t, 1, cfg.MaxWorkers)
	assert.Equal(t, 6, cfg.BallsPerOver)
	assert.Equal(t, "./data", cfg.SourceDir)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.DBDisablePreparedBinary)
	assert.False(t, cfg.UptraceEnabled)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("INGEST_MAX_WORKERS", "8")
	t.Setenv("INGEST_SOURCE_DIR", "/srv/scorecards")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProd, cfg.AppEnv)
	assert.Equal(t, 8, cfg.MaxWorkers)
	assert.Equal(t, "/srv/scorecards", cfg.SourceDir)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad app env", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("INGEST_MAX_WORKERS", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("uptrace enabled without dsn", func(t *testing.T) {
		t.Setenv("UPTRACE_ENABLED", "true")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	assert.Equal(t, "", parseUptraceDSNFromOTLPHeaders(""))
	assert.Equal(t, "https://token@api.uptrace.dev/1",
		parseUptraceDSNFromOTLPHeaders(`uptrace-dsn="https://token@api.uptrace.dev/1"`))
}
