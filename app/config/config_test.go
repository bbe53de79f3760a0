package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"barangay", "municipality"}, cfg.Defaults.MatchHooks)
	assert.Equal(t, 60.0, cfg.Defaults.Threshold)
	assert.Equal(t, 1, cfg.Defaults.LenResults)
	assert.Equal(t, 0.7, cfg.Scoring.JWBoostThreshold)
	assert.Equal(t, 4, cfg.Scoring.JWPrefixSize)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	require.NoError(t, Load("does/not/exist.yaml"))
	assert.Equal(t, Default(), C)
}

func TestLoad_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  threshold: 75\n  len_results: 3\n"), 0o644))

	require.NoError(t, Load(path))
	defer func() { C = Default() }()

	assert.Equal(t, 75.0, C.Defaults.Threshold)
	assert.Equal(t, 3, C.Defaults.LenResults)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, []string{"barangay", "municipality"}, C.Defaults.MatchHooks)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEARCH_THRESHOLD", "42.5")
	t.Setenv("SEARCH_LEN_RESULTS", "9")

	require.NoError(t, Load("does/not/exist.yaml"))
	defer func() { C = Default() }()

	assert.Equal(t, 42.5, C.Defaults.Threshold)
	assert.Equal(t, 9, C.Defaults.LenResults)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: [not a map"), 0o644))

	assert.Error(t, Load(path))
	C = Default()
}
