package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footballhub/cli/internal/logger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.football-hub.app", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.TimeoutSeconds)
	assert.Equal(t, 30, cfg.Watch.IntervalSeconds)
	assert.NotEmpty(t, cfg.Cache.Path)
}

func TestLoad_LoggerSectionOptional(t *testing.T) {
	// The zero-setup path: no config file, no logger section. Load must
	// leave the logger config empty and defer to logger.New, which applies
	// its defaults and then validates.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Logger.Level)
	assert.Empty(t, cfg.Logger.Format)

	_, err = logger.New(&cfg.Logger)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_LoggerSectionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `logger:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HUB_API_BASE_URL", "http://localhost:8080")
	t.Setenv("HUB_WATCH_INTERVAL_SECONDS", "10")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.Watch.IntervalSeconds)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `api:
  base_url: http://hub.test:9000
  timeout_seconds: 5
watch:
  interval_seconds: 60
cache:
  path: /tmp/hub-test.db
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://hub.test:9000", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, 60, cfg.Watch.IntervalSeconds)
	assert.Equal(t, "/tmp/hub-test.db", cfg.Cache.Path)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	t.Run("base url must be a url", func(t *testing.T) {
		t.Setenv("HUB_API_BASE_URL", "not a url")
		_, err := Load("")
		assert.ErrorContains(t, err, "validation")
	})

	t.Run("watch interval has a floor", func(t *testing.T) {
		t.Setenv("HUB_WATCH_INTERVAL_SECONDS", "1")
		_, err := Load("")
		assert.ErrorContains(t, err, "validation")
	})
}
