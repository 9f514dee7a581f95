// Package builder turns movie records into the co-star graph.
//
// What:
//
//   - Build(records, opts...) consumes anything implementing Record
//     (MovieTitle, CastNames) and returns a BuildResult holding a frozen
//     *core.Graph, the list of skipped records and ingestion Stats.
//   - Every pair of cast positions i < j with distinct names becomes one
//     undirected edge. Duplicate names in one cast and repeated pairs across
//     movies collapse into the same edge.
//   - A record whose cast is absent or undecodable is skipped and reported as
//     a RecordError; the rest of the batch is unaffected.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked between records.
//   - WithWorkers(n)     shard the input across n errgroup workers; shard
//     graphs are merged by neighbor-set union.
//   - WithMaxCast(k)     only the first k names of a cast form pairs.
//   - WithLogger(l)      zap logger for per-record diagnostics.
//
// Complexity:
//
//	Time O(Σ k²) over cast sizes k, Memory O(V + E).
//
//	The quadratic term is the scaling risk for unbounded casts: a single
//	movie with 1,000 credited names yields ~500,000 pair insertions. Use
//	WithMaxCast to bound it when casts are not trusted to be small.
package builder
