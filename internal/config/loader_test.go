package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "gfcss.yaml")

		content := `
mode: build
extensions: [".jsx", ".tsx", ".js"]
virtualPrefix: "virtual:ui/"
environment: production
workers: 3
warnings:
  repeatDelay: 2s
watch:
  debounce: 50ms
  ignore: ["**/generated/**"]
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, ModeBuild, cfg.Mode)
		assert.Equal(t, []string{".jsx", ".tsx", ".js"}, cfg.Extensions)
		assert.Equal(t, "virtual:ui/", cfg.VirtualPrefix)
		assert.Equal(t, EnvironmentProduction, cfg.Environment)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, 2*time.Second, cfg.RepeatDelay())
		assert.Equal(t, 50*time.Millisecond, cfg.Debounce())
		assert.Equal(t, []string{"**/generated/**"}, cfg.Watch.Ignore)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.Mode)
		assert.Empty(t, cfg.Extensions)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "gfcss.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("mode: [dev\n"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestMarshal_RoundTripsThroughLoader(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "repeatDelay: 1s")

	configFile := filepath.Join(t.TempDir(), "gfcss.yaml")
	require.NoError(t, os.WriteFile(configFile, data, 0o644))

	cfg, err := NewLoader().Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gfcss.yaml")

	ok, err := FileExists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	ok, err = FileExists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}
