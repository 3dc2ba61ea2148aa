package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: "8081"
  allowed_origins:
    - "https://hotel.example.com"
admin:
  secret: "from-file"
storage:
  data_dir: "var/data"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_SECRET", "")

	cfg, err := LoadConfig(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"https://hotel.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "from-file", cfg.Admin.Secret)
	assert.Equal(t, "var/data", cfg.Storage.DataDir)
	// defaults fill the gaps
	assert.Equal(t, "bookings.json", cfg.Storage.DataFile)
	assert.Equal(t, "http://localhost:8081", cfg.Server.BaseURL)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "from-env")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig(writeConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Admin.Secret)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "bookings.json", cfg.Storage.DataFile)
	assert.NotEmpty(t, cfg.Server.Port)
}
