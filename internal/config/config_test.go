package config

import (
	"os"
	"path/filepath"
	"testing"

	"imgvault/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.False(t, cfg.Settings.Debug)
	assert.Equal(t, "en", cfg.Settings.Language)
	assert.Equal(t, types.DefaultImageExtensions, cfg.Images.Extensions)
	assert.Equal(t, "icons", cfg.Icons.Dir)
	assert.Equal(t, ".", cfg.Directories.Default)
	assert.NoError(t, cfg.Validate())
}

func TestNewTestConfig(t *testing.T) {
	cfg := NewTestConfig()
	assert.True(t, cfg.Settings.Debug, "test config must force non-native dialogs")
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg, "missing file falls back to defaults")
}

func TestLoadConfigFileMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
settings:
  debug: true
  language: fr
images:
  extensions: [".PNG", "webp", ""]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Settings.Debug)
	assert.Equal(t, "fr", cfg.Settings.Language)
	// Extensions are normalized: lowercase, no dot, empties dropped.
	assert.Equal(t, []string{"png", "webp"}, cfg.Images.Extensions)
	// Unset fields keep their defaults.
	assert.Equal(t, "icons", cfg.Icons.Dir)
	assert.Equal(t, ".", cfg.Directories.Default)
}

func TestLoadConfigFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - ["), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := New()
	cfg.Settings.Language = "fr"
	cfg.Icons.Dir = "/opt/imgvault/icons"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Images.Extensions = nil
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.Images.Extensions = []string{""}
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.Settings.Language = ""
	assert.Error(t, cfg.Validate())
}
