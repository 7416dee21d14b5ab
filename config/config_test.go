package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://flights-scraper.fly.dev", cfg.Scraper.BaseURL)
	assert.Equal(t, 45, cfg.Scraper.TimeoutSeconds)
	assert.Equal(t, 1.0, cfg.Scraper.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Scraper.Burst)
	assert.Equal(t, "https://api.frankfurter.app", cfg.Exchange.BaseURL)
	assert.Equal(t, 60, cfg.Exchange.CacheTTLMinutes)
	assert.Equal(t, 3, cfg.Search.MaxAttempts)
	assert.Equal(t, 2, cfg.Search.RetryBackoffSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCRAPER_BASE_URL", "http://localhost:8080")
	t.Setenv("SEARCH_MAX_ATTEMPTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://localhost:8080", cfg.Scraper.BaseURL)
	assert.Equal(t, 5, cfg.Search.MaxAttempts)

	// Untouched keys keep their defaults.
	assert.Equal(t, 3, cfg.Scraper.Burst)
}
