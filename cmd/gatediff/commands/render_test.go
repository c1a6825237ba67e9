package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_WritesHTML(t *testing.T) {
	manifest, _ := setupWorkspace(t, false)
	htmlPath := filepath.Join(t.TempDir(), "charts.html")

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{"--config", manifest, "--output", htmlPath})

	require.NoError(t, cmd.Execute())

	raw, err := os.ReadFile(htmlPath)
	require.NoError(t, err)

	html := string(raw)
	assert.Contains(t, html, "mint")
	assert.Contains(t, html, "baseline")
}

func TestRenderCommand_RequiresOutput(t *testing.T) {
	cmd := NewRenderCommand()
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.ErrorIs(t, err, ErrNoHTMLOutput)
}

func TestRenderCommand_NothingToPlot(t *testing.T) {
	dir := t.TempDir()
	resultsDir := filepath.Join(dir, "results")
	require.NoError(t, os.MkdirAll(filepath.Join(resultsDir, "token"), 0o755))

	manifest := filepath.Join(dir, "gatediff.toml")
	content := fmt.Sprintf(`
units = ["token"]

[compare]
results_dir = %q
`, resultsDir)
	require.NoError(t, os.WriteFile(manifest, []byte(content), 0o644))

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{"--config", manifest, "--output", filepath.Join(dir, "charts.html")})

	err := cmd.Execute()

	require.Error(t, err)
}
