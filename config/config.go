// Package config loads run settings for costar.
//
// Precedence, lowest first: built-in defaults, a YAML or TOML file, a .env
// file, COSTAR_* environment variables, then command-line flags applied by
// the caller before a final Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid")

	// ErrUnsupportedFormat is returned for a config file that is neither
	// YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidEnv is returned for a COSTAR_* variable that cannot be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment variable")
)

// Query is one actor pair of the path reports.
type Query struct {
	From string `yaml:"from" toml:"from"`
	To   string `yaml:"to" toml:"to"`
}

// LoggingConfig selects the log level and an optional log file.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// Duration is a time.Duration read from text such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds every setting of a run.
type Config struct {
	// Input is the TMDB credits JSON file.
	Input string `yaml:"input" toml:"input"`

	// OutDir receives the report files.
	OutDir string `yaml:"out_dir" toml:"out_dir"`

	// TopK is the length of the degree ranking.
	TopK int `yaml:"top_k" toml:"top_k"`

	// Workers is the number of ingestion shards.
	Workers int `yaml:"workers" toml:"workers"`

	// MaxCast caps the names used per movie; 0 means no cap.
	MaxCast int `yaml:"max_cast" toml:"max_cast"`

	// Timeout bounds a whole run; 0 means none.
	Timeout Duration `yaml:"timeout" toml:"timeout"`

	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Queries are the actor pairs of the path reports.
	Queries []Query `yaml:"queries" toml:"queries"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input:   "tmdb_5000_credits.json",
		OutDir:  ".",
		TopK:    5,
		Workers: 1,
		Logging: LoggingConfig{Level: "info"},
		Queries: []Query{
			{From: "Sam Worthington", To: "Sean Patrick Murphy"},
			{From: "Jennifer Connelly", To: "Kierstin Koppel"},
			{From: "Samm Levine", To: "Nick Frost"},
		},
	}
}

// Load builds a Config from defaults, the file at path (skipped when empty),
// the given .env files (".env" when none; missing files are ignored) and
// the COSTAR_* environment, then validates it.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg, err := LoadUnvalidated(path, envFiles...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadUnvalidated is Load without the final Validate, for callers that apply
// further overrides first. Unreadable files and unparsable values still fail.
func LoadUnvalidated(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// Missing .env files are normal outside development.
		_ = godotenv.Load(f)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Input = getEnv("COSTAR_INPUT", c.Input)
	c.OutDir = getEnv("COSTAR_OUT_DIR", c.OutDir)
	c.Logging.Level = getEnv("COSTAR_LOG_LEVEL", c.Logging.Level)
	c.Logging.File = getEnv("COSTAR_LOG_FILE", c.Logging.File)

	var err error
	c.TopK, err = getEnvInt("COSTAR_TOP_K", c.TopK)
	if err != nil {
		return err
	}
	c.Workers, err = getEnvInt("COSTAR_WORKERS", c.Workers)
	if err != nil {
		return err
	}
	c.MaxCast, err = getEnvInt("COSTAR_MAX_CAST", c.MaxCast)
	if err != nil {
		return err
	}
	if v := os.Getenv("COSTAR_TIMEOUT"); v != "" {
		if err := c.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%w: COSTAR_TIMEOUT: %v", ErrInvalidEnv, err)
		}
	}
	if v := os.Getenv("COSTAR_QUERIES"); v != "" {
		q, err := ParseQueries(v)
		if err != nil {
			return fmt.Errorf("%w: COSTAR_QUERIES: %v", ErrInvalidEnv, err)
		}
		c.Queries = q
	}

	return nil
}

// ParseQueries parses "A|B;C|D" into actor pairs. Blank items are skipped.
func ParseQueries(s string) ([]Query, error) {
	var out []Query
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		from, to, ok := strings.Cut(item, "|")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" || strings.Contains(to, "|") {
			return nil, fmt.Errorf("malformed query %q, want \"From|To\"", item)
		}
		out = append(out, Query{From: from, To: to})
	}

	return out, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	fail := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if strings.TrimSpace(c.Input) == "" {
		fail("input is required")
	}
	if c.TopK < 0 {
		fail("top_k must be >= 0, got %d", c.TopK)
	}
	if c.Workers < 1 {
		fail("workers must be >= 1, got %d", c.Workers)
	}
	if c.MaxCast < 0 || c.MaxCast == 1 {
		fail("max_cast must be 0 or >= 2, got %d", c.MaxCast)
	}
	if c.Timeout.Duration < 0 {
		fail("timeout must be >= 0, got %s", c.Timeout)
	}
	for i, q := range c.Queries {
		if strings.TrimSpace(q.From) == "" || strings.TrimSpace(q.To) == "" {
			fail("query %d needs both actors", i)
		}
	}

	return err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, value)
	}
	return v, nil
}
