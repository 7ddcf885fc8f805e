package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "MCP_HOST", "PORT", "MCP_TRANSPORT", "MARKETPLACE",
		"CHROME_BIN", "BROWSER_HEADLESS", "BROWSER_TIMEOUT_MS",
		"CACHE_TTL_SECONDS", "CACHE_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, "xmrbazaar.com", cfg.Marketplace)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 30*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.NotEmpty(t, cfg.Cache.Dir)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("MCP_TRANSPORT", "stdio")
	t.Setenv("MARKETPLACE", "xmr.bazaar")
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("BROWSER_TIMEOUT_MS", "5000")
	t.Setenv("CACHE_TTL_SECONDS", "120")
	t.Setenv("CACHE_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "xmr.bazaar", cfg.Marketplace)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 5*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
}

func TestLoadRejectsInvalidTransport(t *testing.T) {
	clearEnv(t)
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveTimeouts(t *testing.T) {
	t.Run("browser timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BROWSER_TIMEOUT_MS", "0")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("cache ttl", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CACHE_TTL_SECONDS", "-5")

		_, err := Load()
		assert.Error(t, err)
	})
}
