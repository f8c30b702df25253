package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_CreatesDefaultFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "navdata")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.GetString(cfgKeyOutput), "default config sets no output")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigYAML, string(data))
}

func TestLoadConfig_ReadsExistingValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("output: /data/custom.sqlite\n"),
		0o644,
	))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/custom.sqlite", cfg.GetString(cfgKeyOutput))
}

func TestEnsureDefaultConfigFile_PreservesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: keep.sqlite\n"), 0o644))

	require.NoError(t, ensureDefaultConfigFile(dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "output: keep.sqlite\n", string(data))
}
