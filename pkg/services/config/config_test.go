package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
workbook_path: /data/consolidated.xlsx
photo_dir: /data/fotos
server:
  host: 127.0.0.1
  port: "9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/consolidated.xlsx", cfg.WorkbookPath)
	assert.Equal(t, "/data/fotos", cfg.PhotoDir)
	assert.Equal(t, "/fotos", cfg.PhotoURLPrefix)
	assert.Equal(t, "wkhtmltopdf", cfg.WkhtmltopdfPath)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoad_MissingWorkbookPath(t *testing.T) {
	path := writeConfig(t, `
photo_dir: /data/fotos
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestClock(t *testing.T) {
	cfg := &Config{Now: "2025-12-08T09:00:00Z"}
	clock, err := cfg.Clock()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 8, 9, 0, 0, 0, time.UTC), clock())
}

func TestClock_DefaultsToWallClock(t *testing.T) {
	cfg := &Config{}
	clock, err := cfg.Clock()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), clock(), time.Minute)
}

func TestClock_InvalidOverride(t *testing.T) {
	cfg := &Config{Now: "ontem"}
	_, err := cfg.Clock()
	require.Error(t, err)
}
