package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/config"
	"github.com/katalvlaran/costar/internal/app"
	"github.com/katalvlaran/costar/internal/logging"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	input      string
	logLevel   string
	logFile    string
	timeout    string
	workers    int
	maxCast    int
}

// session is the per-invocation state built in PersistentPreRunE.
type session struct {
	flags  rootFlags
	cfg    *config.Config
	logger *zap.Logger
	runner *app.Runner
}

func newRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "costar",
		Short: "Analyze the actor co-occurrence graph of a movie credits dataset",
		Long: `costar reads a TMDB-style credits file, links every pair of actors
who share a cast, and reports degree ranking, connectivity and degrees of
separation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.flags.configPath, "config", "", "Path to a YAML or TOML config file")
	pf.StringVar(&s.flags.input, "input", "", "Credits JSON file (default tmdb_5000_credits.json)")
	pf.StringVar(&s.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&s.flags.logFile, "log-file", "", "Append logs to this file instead of stderr")
	pf.StringVar(&s.flags.timeout, "timeout", "", "Abort the run after this duration, e.g. 30s")
	pf.IntVar(&s.flags.workers, "workers", 0, "Number of ingestion shards")
	pf.IntVar(&s.flags.maxCast, "max-cast", 0, "Use at most this many names per movie (0 = all)")

	root.AddCommand(
		newReportCmd(s),
		newPathCmd(s),
		newComponentsCmd(s),
		newTopCmd(s),
	)

	return root
}

// init loads the config, applies flag overrides, validates the result and
// builds the logger.
func (s *session) init(cmd *cobra.Command) error {
	cfg, err := config.LoadUnvalidated(s.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = s.flags.input
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = s.flags.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = s.flags.logFile
	}
	if flags.Changed("timeout") {
		if err := cfg.Timeout.UnmarshalText([]byte(s.flags.timeout)); err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
	}
	if flags.Changed("workers") {
		cfg.Workers = s.flags.workers
	}
	if flags.Changed("max-cast") {
		cfg.MaxCast = s.flags.maxCast
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger
	s.runner = app.New(cfg, logger)

	return nil
}

// build loads the graph under the configured timeout.
func (s *session) build(ctx context.Context) (*builder.BuildResult, context.Context, context.CancelFunc, error) {
	ctx, cancel := s.runner.WithTimeout(ctx)
	built, err := s.runner.Load(ctx)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return built, ctx, cancel, nil
}
