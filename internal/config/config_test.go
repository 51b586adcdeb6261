package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.TTL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "output.json", cfg.Output)
	assert.Contains(t, cfg.Endpoint, "branch_binary_packages")
	assert.Contains(t, cfg.CacheDir, ".branchdiff")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BRANCHDIFF_OUTPUT", "report.json")
	t.Setenv("BRANCHDIFF_TTL", "30m")
	t.Setenv("BRANCHDIFF_CACHE_DIR", "/tmp/bd-cache")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "report.json", cfg.Output)
	assert.Equal(t, 30*time.Minute, cfg.TTL)
	assert.Equal(t, "/tmp/bd-cache", cfg.CacheDir)
}
