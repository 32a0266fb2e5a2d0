package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Directory)
	assert.Equal(t, "courses.json", cfg.Data.CoursesFile)
	assert.Equal(t, "instructors.json", cfg.Data.InstructorsFile)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Seed.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  directory: /var/lib/registrar
logging:
  level: debug
  format: json
seed:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/registrar", cfg.Data.Directory)
	assert.Equal(t, "courses.json", cfg.Data.CoursesFile, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIRECTORY", "/tmp/registrar-env")
	t.Setenv("SEED_ENABLED", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/registrar-env", cfg.Data.Directory)
	assert.True(t, cfg.Seed.Enabled)
}

func TestLoadConfigRejectsBadFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}
