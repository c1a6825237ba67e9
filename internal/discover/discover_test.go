package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatemetrics/gatediff/internal/config"
)

func touch(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestUnits_ManifestOrderPreserved(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "token", "baseline.json"))
	touch(t, filepath.Join(dir, "token", "current.json"))
	touch(t, filepath.Join(dir, "amm", "baseline.json"))

	cfg := &config.Config{
		Units:   []string{"token", "amm"},
		Compare: config.CompareConfig{ResultsDir: dir},
	}

	units, err := Units(cfg)
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, "token", units[0].Name)
	assert.Equal(t, "amm", units[1].Name)
	assert.Equal(t, filepath.Join(dir, "token", "baseline.json"), units[0].BaselinePath)
	assert.Equal(t, filepath.Join(dir, "token", "current.json"), units[0].CurrentPath)
}

func TestUnits_PrefersCompressedWhenOnlyPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "token", "baseline.json.lz4"))

	cfg := &config.Config{
		Units:   []string{"token"},
		Compare: config.CompareConfig{ResultsDir: dir},
	}

	units, err := Units(cfg)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "token", "baseline.json.lz4"), units[0].BaselinePath)
	// The missing current file keeps the plain path; the loader reports it.
	assert.Equal(t, filepath.Join(dir, "token", "current.json"), units[0].CurrentPath)
}

func TestUnits_ScansWhenManifestListsNone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "vault", "baseline.json"))
	touch(t, filepath.Join(dir, "amm", "baseline.json"))
	touch(t, filepath.Join(dir, "stray.json"))

	cfg := &config.Config{Compare: config.CompareConfig{ResultsDir: dir}}

	units, err := Units(cfg)
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, "amm", units[0].Name)
	assert.Equal(t, "vault", units[1].Name)
}

func TestUnits_MissingResultsDir(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Compare: config.CompareConfig{ResultsDir: filepath.Join(t.TempDir(), "absent")},
	}

	_, err := Units(cfg)

	require.Error(t, err)
}
