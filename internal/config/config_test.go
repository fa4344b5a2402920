package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 100000, cfg.MaxRows)
	assert.Equal(t, 60, cfg.HTTPTimeoutSec)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		APIKey:           "k-123",
		Model:            "gemini-2.5-pro",
		MaxTokens:        2048,
		Temperature:      0.3,
		MaxRows:          5000,
		HTTPTimeoutSec:   30,
		RetryMaxAttempts: 5,
		RetryBaseDelayMs: 250,
		RetryMaxDelayMs:  2000,
	}
	require.NoError(t, Save(in, path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in.APIKey, out.APIKey)
	assert.Equal(t, in.Model, out.Model)
	assert.Equal(t, in.MaxRows, out.MaxRows)
	assert.Equal(t, in.RetryMaxAttempts, out.RetryMaxAttempts)
}

func TestEnvKeyOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(&Global{APIKey: "from-file"}, path))

	t.Setenv("GEMINI_API_KEY", "from-env")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}
