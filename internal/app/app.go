// Package app wires the costar pipeline: load credits, build the co-star
// graph, run the analyses and emit the reports.
package app

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/centrality"
	"github.com/katalvlaran/costar/config"
	"github.com/katalvlaran/costar/dfs"
	"github.com/katalvlaran/costar/movies"
	"github.com/katalvlaran/costar/report"
)

var tracer = otel.Tracer("github.com/katalvlaran/costar/internal/app")

// Report file names.
const (
	AdjacencyFile    = "adjacency_list.txt"
	TopActorsFile    = "top_actors.txt"
	ConnectivityFile = "graph_report.txt"
	DistancesFile    = "shortest_paths_report.txt"
	PathsFile        = "shortest_paths_report_2.txt"
	BuildSummaryFile = "build_summary.txt"
)

// Runner executes the pipeline for one Config.
type Runner struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New returns a Runner. A nil logger disables logging.
func New(cfg *config.Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, logger: logger}
}

// Analysis holds everything the reports are rendered from.
type Analysis struct {
	Build      *builder.BuildResult
	Top        []centrality.Entry
	Components *dfs.ComponentsResult
	Distances  []bfs.Result
	Paths      []bfs.Result
}

// WithTimeout applies the configured run timeout to ctx.
func (r *Runner) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.Timeout.Duration > 0 {
		return context.WithTimeout(ctx, r.cfg.Timeout.Duration)
	}

	return context.WithCancel(ctx)
}

// Load decodes the input file and builds the frozen co-star graph.
// An unreadable input wraps movies.ErrSourceUnavailable.
func (r *Runner) Load(ctx context.Context) (*builder.BuildResult, error) {
	r.logger.Info("Loading credits", zap.String("input", r.cfg.Input))
	records, err := movies.LoadFile(r.cfg.Input)
	if err != nil {
		return nil, err
	}

	opts := []builder.BuilderOption{
		builder.WithContext(ctx),
		builder.WithWorkers(r.cfg.Workers),
		builder.WithLogger(r.logger),
	}
	if r.cfg.MaxCast > 0 {
		opts = append(opts, builder.WithMaxCast(r.cfg.MaxCast))
	}

	return builder.Build(records, opts...)
}

// Analyze runs ranking, connectivity and the configured path queries
// concurrently on the frozen graph.
func (r *Runner) Analyze(ctx context.Context, built *builder.BuildResult) (*Analysis, error) {
	ctx, span := tracer.Start(ctx, "app.Analyze")
	defer span.End()

	g := built.Graph
	out := &Analysis{Build: built}
	queries := r.Queries()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		out.Top, err = centrality.TopK(g, r.cfg.TopK)
		return err
	})
	eg.Go(func() (err error) {
		out.Components, err = dfs.Components(g, dfs.WithContext(egCtx))
		return err
	})
	eg.Go(func() (err error) {
		out.Distances, err = bfs.Resolve(g, queries, bfs.ModeDistance, bfs.WithContext(egCtx))
		return err
	})
	eg.Go(func() (err error) {
		out.Paths, err = bfs.Resolve(g, queries, bfs.ModePath, bfs.WithContext(egCtx))
		return err
	})
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		return nil, fmt.Errorf("analysis: %w", err)
	}

	span.SetAttributes(
		attribute.Int("components", out.Components.Count),
		attribute.Int("queries", len(queries)),
	)
	r.logger.Info("Analysis finished",
		zap.Int("components", out.Components.Count),
		zap.Bool("connected", out.Components.Connected()),
		zap.Int("queries", len(queries)),
	)

	return out, nil
}

// Queries converts the configured actor pairs.
func (r *Runner) Queries() []bfs.Query {
	out := make([]bfs.Query, 0, len(r.cfg.Queries))
	for _, q := range r.cfg.Queries {
		out = append(out, bfs.Query{From: q.From, To: q.To})
	}

	return out
}

// Artifacts returns the report set of a run.
func Artifacts(a *Analysis) []report.Artifact {
	return []report.Artifact{
		{Name: AdjacencyFile, Render: func(w io.Writer) error { return report.WriteAdjacency(w, a.Build.Graph) }},
		{Name: TopActorsFile, Render: func(w io.Writer) error { return report.WriteTopK(w, a.Top) }},
		{Name: ConnectivityFile, Render: func(w io.Writer) error { return report.WriteConnectivity(w, a.Components) }},
		{Name: DistancesFile, Render: func(w io.Writer) error { return report.WriteDistances(w, a.Distances) }},
		{Name: PathsFile, Render: func(w io.Writer) error { return report.WritePaths(w, a.Paths) }},
		{Name: BuildSummaryFile, Render: func(w io.Writer) error {
			return report.WriteBuildSummary(w, a.Build.Stats, a.Build.Skipped)
		}},
	}
}

// Report runs the whole pipeline and writes every artifact to the configured
// output directory. All artifacts are attempted; the returned error combines
// the failures. Outcomes are nil when loading or analysis failed.
func (r *Runner) Report(ctx context.Context) ([]report.Outcome, error) {
	ctx, span := tracer.Start(ctx, "app.Report")
	defer span.End()

	built, err := r.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}
	analysis, err := r.Analyze(ctx, built)
	if err != nil {
		return nil, err
	}

	sink := report.FileSink{Dir: r.cfg.OutDir, Logger: r.logger}
	outcomes := sink.WriteAll(ctx, Artifacts(analysis))
	if err := report.Failures(outcomes); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reports failed")
		return outcomes, err
	}

	return outcomes, nil
}
