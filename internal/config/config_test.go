package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 10.0, cfg.RateLimit, 1e-9)
	assert.Equal(t, 20, cfg.Burst)
	assert.True(t, cfg.IsDev())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATEGUESS_MODE", "prod")
	t.Setenv("DATEGUESS_PORT", "9090")
	t.Setenv("DATEGUESS_LOCALE", " en-GB ")
	t.Setenv("DATEGUESS_LOG_LEVEL", "debug")
	t.Setenv("DATEGUESS_RATE_LIMIT", "2.5")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Mode)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)
	assert.False(t, cfg.IsDev())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dateguess.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\nlocale: fr\nburst: 5\n"), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, 5, cfg.Burst)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dateguess.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\n"), 0o600))
	t.Setenv("DATEGUESS_PORT", "7100")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{Mode: "dev", Port: 80, LogLevel: "info", RateLimit: 1, Burst: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"mode", func(c *Config) { c.Mode = "test" }, "invalid mode"},
		{"port", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"rate", func(c *Config) { c.RateLimit = 0 }, "rate limit"},
		{"burst", func(c *Config) { c.Burst = 0 }, "burst"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATEGUESS_LOCALE=ja\n"), 0o600))

	t.Setenv("DATEGUESS_LOCALE", "")
	require.NoError(t, os.Unsetenv("DATEGUESS_LOCALE"))

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "ja", os.Getenv("DATEGUESS_LOCALE"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	prod := &Config{Mode: "prod", LogLevel: "warn"}
	prod.NewLogger(&buf).Info("hidden")
	prod.NewLogger(&buf).Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	dev := &Config{Mode: "dev", LogLevel: "debug"}
	dev.NewLogger(&buf).Debug("detail")
	assert.Contains(t, buf.String(), "msg=detail")
}
