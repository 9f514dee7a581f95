package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/costar/config"
)

// noEnv points Load at a .env file that does not exist.
func noEnv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "tmdb_5000_credits.json", cfg.Input)
	assert.Equal(t, 5, cfg.TopK)
	assert.Len(t, cfg.Queries, 3)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "costar.yaml", `
input: credits.json
out_dir: out
top_k: 10
workers: 4
max_cast: 15
timeout: 90s
logging:
  level: debug
queries:
  - from: Ann
    to: Bea
`)
	cfg, err := config.Load(path, noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "credits.json", cfg.Input)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 15, cfg.MaxCast)
	assert.Equal(t, 90*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []config.Query{{From: "Ann", To: "Bea"}}, cfg.Queries)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "costar.toml", `
input = "credits.json"
top_k = 3
timeout = "2m"

[logging]
level = "warn"
file = "costar.log"

[[queries]]
from = "Ann"
to = "Cal"
`)
	cfg, err := config.Load(path, noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "credits.json", cfg.Input)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, 1, cfg.Workers, "absent keys keep defaults")
	assert.Equal(t, 2*time.Minute, cfg.Timeout.Duration)
	assert.Equal(t, config.LoggingConfig{Level: "warn", File: "costar.log"}, cfg.Logging)
	assert.Equal(t, []config.Query{{From: "Ann", To: "Cal"}}, cfg.Queries)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnv(t))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "costar.json", "{}"), noEnv(t))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "bad.yaml", "top_k: [1"), noEnv(t))
	assert.ErrorContains(t, err, "failed to parse YAML")

	_, err = config.Load(writeFile(t, "bad.toml", "timeout = \"soon\""), noEnv(t))
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("COSTAR_INPUT", "env.json")
	t.Setenv("COSTAR_TOP_K", "7")
	t.Setenv("COSTAR_WORKERS", "3")
	t.Setenv("COSTAR_TIMEOUT", "5s")
	t.Setenv("COSTAR_QUERIES", "A|B; C | D ;")

	path := writeFile(t, "costar.yaml", "input: file.json\ntop_k: 2\n")
	cfg, err := config.Load(path, noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.Input, "environment overrides the file")
	assert.Equal(t, 7, cfg.TopK)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, []config.Query{{From: "A", To: "B"}, {From: "C", To: "D"}}, cfg.Queries)
}

func TestLoad_DotEnv(t *testing.T) {
	env := writeFile(t, "test.env", "COSTAR_OUT_DIR=from-dotenv\nCOSTAR_LOG_LEVEL=error\n")
	t.Setenv("COSTAR_LOG_LEVEL", "debug")
	// godotenv.Load sets variables process-wide; t.Setenv restores them.
	t.Setenv("COSTAR_OUT_DIR", "")
	require.NoError(t, os.Unsetenv("COSTAR_OUT_DIR"))

	cfg, err := config.Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.OutDir)
	assert.Equal(t, "debug", cfg.Logging.Level, "real environment wins over .env")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("COSTAR_TOP_K", "many")
	_, err := config.Load("", noEnv(t))
	assert.ErrorIs(t, err, config.ErrInvalidEnv)
}

func TestLoadUnvalidated_DefersValidation(t *testing.T) {
	t.Setenv("COSTAR_WORKERS", "0")

	_, err := config.Load("", noEnv(t))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg, err := config.LoadUnvalidated("", noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Workers)

	cfg.Workers = 4
	assert.NoError(t, cfg.Validate())

	t.Setenv("COSTAR_WORKERS", "lots")
	_, err = config.LoadUnvalidated("", noEnv(t))
	assert.ErrorIs(t, err, config.ErrInvalidEnv)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Input = " "
	cfg.TopK = -1
	cfg.Workers = 0
	cfg.MaxCast = 1
	cfg.Timeout.Duration = -time.Second
	cfg.Queries = append(cfg.Queries, config.Query{From: "Ann"})

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 6)

	assert.NoError(t, config.Default().Validate())
}

func TestParseQueries(t *testing.T) {
	q, err := config.ParseQueries("Sam Worthington|Sean Patrick Murphy")
	require.NoError(t, err)
	assert.Equal(t, []config.Query{{From: "Sam Worthington", To: "Sean Patrick Murphy"}}, q)

	for _, bad := range []string{"A", "A|", "|B", "A|B|C"} {
		_, err := config.ParseQueries(bad)
		assert.Error(t, err, bad)
	}
}
