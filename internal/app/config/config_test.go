package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "air-quality-api", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "0.0.0.0:10000", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "model/best_catboost_model.json", cfg.Model.Path)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.IsDebug())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
app:
  env: release
  log_level: info
server:
  port: 8080
  shutdown_timeout: 3s
model:
  path: /srv/model.json
metrics:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "air-quality-api", cfg.App.Name)
	assert.Equal(t, "release", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/srv/model.json", cfg.Model.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.IsDebug())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8080\n")
	t.Setenv("AIRQ_SERVER_PORT", "9090")
	t.Setenv("AIRQ_MODEL_PATH", "/tmp/other.json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.json", cfg.Model.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config failed")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty app name", func(c *Config) { c.App.Name = "" }},
		{"unknown env", func(c *Config) { c.App.Env = "staging" }},
		{"unknown log level", func(c *Config) { c.App.LogLevel = "trace" }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"no shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"empty model path", func(c *Config) { c.Model.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
