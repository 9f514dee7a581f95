// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// api.go - Build, the single public entry-point.
//
// Design contract:
//   • Build runs once per input batch and returns a frozen *core.Graph.
//   • Records whose cast cannot be extracted are skipped, never fatal.
//   • Determinism: the same records produce the same adjacency regardless of
//     WithWorkers, because edge insertion is commutative and idempotent.

package builder

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/costar/core"
)

var tracer = otel.Tracer("github.com/katalvlaran/costar/builder")

// Record is what Build needs from a movie entry.
type Record interface {
	// MovieTitle is informational; it only appears in diagnostics.
	MovieTitle() string

	// CastNames returns the credited actor names in cast order, or an error
	// when the cast field is absent or undecodable.
	CastNames() ([]string, error)
}

// Stats summarizes one Build call.
type Stats struct {
	// RecordsSeen is the number of input records.
	RecordsSeen int

	// RecordsUsed is the number of records whose cast was extracted,
	// including those with fewer than two names.
	RecordsUsed int

	// RecordsSkipped is len(BuildResult.Skipped).
	RecordsSkipped int

	// RecordsWithoutEdges counts used records with fewer than two names.
	RecordsWithoutEdges int

	// CastTruncated counts records whose cast was cut by WithMaxCast.
	CastTruncated int

	// PairsVisited is the number of (i<j) cast pairs examined.
	PairsVisited int

	// Actors and Edges describe the resulting graph.
	Actors int
	Edges  int

	// Duration is the wall time of the build.
	Duration time.Duration
}

// BuildResult is the outcome of Build.
type BuildResult struct {
	// Graph is the frozen co-star graph.
	Graph *core.Graph

	// Skipped lists records that contributed nothing because their cast
	// could not be extracted, ordered by Index.
	Skipped []RecordError

	// Stats summarizes the build.
	Stats Stats
}

// Build materializes the co-star graph from records.
//
// For every record with an extractable cast it links every pair of
// positions i < j with distinct names. Duplicate names inside one cast only
// cause idempotent re-insertions.
//
// Complexity: O(Σ k²) over cast sizes k (bounded by WithMaxCast).
//
// Errors:
//   - ErrBuildCanceled (wrapping the context error) if the context is done.
func Build[R Record](records []R, opts ...BuilderOption) (*BuildResult, error) {
	cfg := newBuilderConfig(opts...)
	start := time.Now()

	ctx, span := tracer.Start(cfg.ctx, "builder.Build", trace.WithAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("workers", cfg.workers),
		attribute.Int("max_cast", cfg.maxCast),
	))
	defer span.End()
	cfg.ctx = ctx

	shards := splitShards(len(records), cfg.workers)
	parts := make([]*shard, len(shards))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, bounds := range shards {
		eg.Go(func() error {
			s := newShard(cfg, bounds[1]-bounds[0])
			parts[i] = s
			for idx := bounds[0]; idx < bounds[1]; idx++ {
				if err := egCtx.Err(); err != nil {
					return fmt.Errorf("%w: %w", ErrBuildCanceled, err)
				}
				if err := s.ingest(idx, records[idx]); err != nil {
					return err
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return nil, err
	}

	res := mergeShards(parts)
	res.Graph.Freeze()
	res.Stats.RecordsSeen = len(records)
	res.Stats.RecordsSkipped = len(res.Skipped)
	gs := res.Graph.Stats()
	res.Stats.Actors = gs.ActorCount
	res.Stats.Edges = gs.EdgeCount
	res.Stats.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("actors", res.Stats.Actors),
		attribute.Int("edges", res.Stats.Edges),
		attribute.Int("skipped", res.Stats.RecordsSkipped),
	)
	cfg.logger.Info("Graph built",
		zap.Int("records", res.Stats.RecordsSeen),
		zap.Int("skipped", res.Stats.RecordsSkipped),
		zap.Int("actors", res.Stats.Actors),
		zap.Int("edges", res.Stats.Edges),
		zap.Int("max_degree", gs.MaxDegree),
		zap.Int("isolated", gs.IsolatedCount),
		zap.Duration("duration", res.Stats.Duration),
	)

	return res, nil
}

// splitShards cuts [0,n) into at most workers contiguous half-open ranges.
// An empty input still yields one empty shard so Build returns a graph.
func splitShards(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		return [][2]int{{0, 0}}
	}
	out := make([][2]int, 0, workers)
	size, rem := n/workers, n%workers
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}

// mergeShards unions shard graphs in shard order. Shards are contiguous, so
// concatenating their skip lists keeps them ordered by Index.
func mergeShards(parts []*shard) *BuildResult {
	res := &BuildResult{Graph: parts[0].graph}
	for i, s := range parts {
		if i > 0 {
			// The destination is never frozen here, so Merge cannot fail.
			_ = res.Graph.Merge(s.graph)
		}
		res.Skipped = append(res.Skipped, s.skipped...)
		res.Stats.RecordsUsed += s.stats.RecordsUsed
		res.Stats.RecordsWithoutEdges += s.stats.RecordsWithoutEdges
		res.Stats.CastTruncated += s.stats.CastTruncated
		res.Stats.PairsVisited += s.stats.PairsVisited
	}

	return res
}
