package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Assets.Dir)
	assert.Empty(t, cfg.Assets.UserDir)
	assert.Empty(t, cfg.Assets.Environments)
	assert.False(t, cfg.Assets.Watch)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "atlas.toml")

	content := `
[assets]
dir = "/srv/atlas/assets"
user_dir = "/home/dev/assets"
environments = ["prod", "eu"]
watch = true

[log]
json = true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/atlas/assets", cfg.Assets.Dir)
	assert.Equal(t, "/home/dev/assets", cfg.Assets.UserDir)
	assert.Equal(t, []string{"prod", "eu"}, cfg.Assets.Environments)
	assert.True(t, cfg.Assets.Watch)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadCaches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, err := Load()
	require.NoError(t, err)

	second, err := Load()
	require.NoError(t, err)

	assert.Same(t, first, second, "Load should return the cached config")
}

func TestEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("ATLAS_ASSETS_DIR", "/opt/assets")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/opt/assets", cfg.Assets.Dir)
}
