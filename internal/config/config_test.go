package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{".jsx", ".tsx"}, cfg.Extensions)
	assert.Equal(t, "virtual:gfcss/", cfg.VirtualPrefix)
	assert.Equal(t, time.Second, cfg.RepeatDelay())
	assert.Equal(t, 100*time.Millisecond, cfg.Debounce())
	require.NoError(t, cfg.Validate())
}

func TestWithDefaults_KeepsSetFields(t *testing.T) {
	cfg := &Config{
		Extensions: []string{".jsx"},
		Warnings:   WarningsConfig{RepeatDelay: "0s"},
	}

	got := cfg.WithDefaults()
	assert.Equal(t, []string{".jsx"}, got.Extensions)
	assert.Equal(t, time.Duration(0), got.RepeatDelay())
	assert.Equal(t, DefaultDebounce, got.Debounce())
	assert.Empty(t, cfg.VirtualPrefix, "receiver is not modified")
}

func TestParseDuration_FallsBack(t *testing.T) {
	assert.Equal(t, DefaultDebounce, (&Config{Watch: WatchConfig{Debounce: "soon"}}).Debounce())
	assert.Equal(t, DefaultRepeatDelay, (&Config{Warnings: WarningsConfig{RepeatDelay: "-1s"}}).RepeatDelay())
}
