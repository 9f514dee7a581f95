package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/config"
	"github.com/katalvlaran/costar/internal/app"
)

const credits = "../../internal/app/testdata/credits.json"

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--input", credits, "--log-level", "error"}
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()

	return out.String(), err
}

func TestPathCmd(t *testing.T) {
	out, err := run(t, "path", "Sam Worthington", "Sean Patrick Murphy")
	require.NoError(t, err)
	assert.Equal(t,
		"Shortest path between Sam Worthington and Sean Patrick Murphy: "+
			"Sam Worthington -> Sigourney Weaver -> Sean Patrick Murphy\n", out)

	out, err = run(t, "path", "--distance-only", "Sam Worthington", "Sean Patrick Murphy")
	require.NoError(t, err)
	assert.Equal(t, "Shortest path between Sam Worthington and Sean Patrick Murphy is 2\n", out)

	out, err = run(t, "path", "Sam Worthington", "Nick Frost")
	require.NoError(t, err)
	assert.Equal(t, "Actor unknown: Nick Frost\n", out)

	_, err = run(t, "path", "Sam Worthington")
	assert.Error(t, err)
}

func TestComponentsCmd(t *testing.T) {
	out, err := run(t, "components")
	require.NoError(t, err)
	assert.Equal(t,
		"The graph is not connected. Number of connected components: 3\n"+
			"Component 1 (Jared Leto): 2 actors\n"+
			"Component 2 (Kierstin Koppel): 2 actors\n"+
			"Component 3 (Sam Worthington): 4 actors\n", out)
}

func TestTopCmd(t *testing.T) {
	out, err := run(t, "top", "-k", "2")
	require.NoError(t, err)
	assert.Equal(t, "Sigourney Weaver - Degree: 3\nSam Worthington - Degree: 2\n", out)

	_, err = run(t, "top", "-k=-1")
	assert.Error(t, err)
}

func TestReportCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "report", "--out", dir, "--top", "3")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "wrote "))

	top, err := os.ReadFile(filepath.Join(dir, app.TopActorsFile))
	require.NoError(t, err)
	assert.Equal(t, "Sigourney Weaver - Degree: 3\nSam Worthington - Degree: 2\nZoe Saldana - Degree: 2\n", string(top))
}

func TestRootCmd_FlagValidation(t *testing.T) {
	_, err := run(t, "top", "--workers", "-2")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "top", "--timeout", "soon")
	assert.Error(t, err)

	_, err = run(t, "top", "--config", filepath.Join(t.TempDir(), "costar.ini"))
	assert.Error(t, err)
}

func TestRootCmd_FlagsOverrideInvalidEnv(t *testing.T) {
	t.Setenv("COSTAR_WORKERS", "0")

	_, err := run(t, "top", "-k", "1")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	out, err := run(t, "top", "-k", "1", "--workers", "4")
	require.NoError(t, err)
	assert.Equal(t, "Sigourney Weaver - Degree: 3\n", out)
}

func TestRootCmd_MissingInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"top", "--input", filepath.Join(t.TempDir(), "none.json"), "--log-level", "error"})
	assert.Error(t, cmd.Execute())
}
