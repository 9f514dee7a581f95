// Package costar builds the actor co-occurrence graph of a movie credits
// dataset and answers questions about it.
//
// 🚀 What is costar?
//
//	Every actor becomes a vertex, and two actors are linked when they appear
//	in the same cast. On top of that graph costar offers:
//		• Ingestion: TMDB credits JSON, string- or array-encoded casts
//		• Connectivity: iterative DFS, component count, sizes and roots
//		• Degrees of separation: BFS distance and path, batch resolution
//		• Centrality: actors ranked by distinct co-stars
//		• Reports: the plain-text files of a full run, written atomically
//
// ✨ Why this layout?
//
//   - Deterministic - neighbors are visited in name order, ties break by name
//   - Safe to share - the graph is frozen after ingestion, queries run in parallel
//   - Honest outcomes - unknown actors and missing paths are results, not errors
//
// Packages:
//
//	core/        - undirected, unweighted graph of actor names
//	movies/      - credits file decoding and cast extraction
//	builder/     - records → frozen graph, sharded ingestion
//	dfs/         - traversal and connected components
//	bfs/         - traversal, Distance, Path and Resolve
//	centrality/  - degree ranking and top-K
//	report/      - renderers and the atomic file sink
//	config/      - YAML/TOML file, .env and COSTAR_* settings
//	cmd/costar/  - the command-line front end
//
// Quick ASCII example (Avatar and Alien credits):
//
//	Sam Worthington ─── Sigourney Weaver ─── Sean Patrick Murphy
//	        │              │
//	        └─ Zoe Saldana ┘
//
//	Sam Worthington is two co-stars away from Sean Patrick Murphy.
//
//	go install github.com/katalvlaran/costar/cmd/costar@latest
package costar
