package gha

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	require.NoError(t, SetOutput("compared_count", "3"))
	require.NoError(t, SetOutput("regressions", "1"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "compared_count=3\nregressions=1\n", string(raw))
}

func TestSetOutput_Multiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", path)

	require.NoError(t, SetOutput("report", "line one\nline two"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "report<<GATEDIFF_EOF\nline one\nline two\nGATEDIFF_EOF\n", string(raw))
}

func TestSetOutput_NoopOutsideActions(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	assert.NoError(t, SetOutput("compared_count", "3"))
}

func TestAppendSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary")
	t.Setenv("GITHUB_STEP_SUMMARY", path)

	require.NoError(t, AppendSummary("# report"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "# report\n", string(raw))
}

func TestAppendSummary_NoopOutsideActions(t *testing.T) {
	t.Setenv("GITHUB_STEP_SUMMARY", "")

	assert.NoError(t, AppendSummary("# report"))
}
