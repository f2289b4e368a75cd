package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 9070, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Catalog.Dir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ADVISOR_PORT", "8123")
	t.Setenv("ADVISOR_HOST", "0.0.0.0")
	t.Setenv("ADVISOR_READ_TIMEOUT_SECONDS", "5")
	t.Setenv("ADVISOR_CATALOG_DIR", dir)
	t.Setenv("ADVISOR_LOG_LEVEL", "debug")
	t.Setenv("ADVISOR_LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, dir, cfg.Catalog.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "server:\n  port: 7777\n  host: advisor.internal\nlogging:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("ADVISOR_CONFIG_FILE", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "advisor.internal", cfg.Server.Host)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7777\n"), 0o600))
	t.Setenv("ADVISOR_CONFIG_FILE", path)
	t.Setenv("ADVISOR_PORT", "8888")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8888, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad timeouts", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Server.ReadTimeout = 0
		assert.Error(t, cfg.Validate())

		cfg = DefaultConfig()
		cfg.Server.WriteTimeout = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing catalog dir", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Catalog.Dir = filepath.Join(t.TempDir(), "nope")
		assert.Error(t, cfg.Validate())
	})

	t.Run("catalog dir is a file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "file.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

		cfg := DefaultConfig()
		cfg.Catalog.Dir = path
		assert.Error(t, cfg.Validate())
	})
}
