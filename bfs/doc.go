// Package bfs answers shortest-path questions on the co-star graph.
//
// What
//
//   - BFS walks a core.Graph from a start actor in non-decreasing distance
//     and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: actor → distance (edges) from start
//   - Parent: actor → predecessor in the BFS tree
//   - Distance and Path answer a single From→To query as a Result whose
//     Outcome is Found, NoPath or UnknownActor. An unknown actor is an
//     outcome, not an error.
//   - Resolve answers a batch of queries concurrently and keeps input order.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in ascending name order and the
//	walker enqueues them in that order, so visit sequences and returned paths
//	are reproducible run to run. Among several shortest paths, Path returns the
//	one the BFS tree discovers first.
//
// Complexity (V = actors, E = co-star edges)
//
//   - Time:   O(V + E) per query, less with WithTarget or WithMaxDepth
//   - Memory: O(V)     (queue, Depth, Parent, visited)
//
// Usage
//
//	res, err := bfs.Path(g, "Sam Worthington", "Sean Patrick Murphy",
//	    bfs.WithContext(ctx))
//	if err != nil {
//	    // nil graph, bad option or canceled context
//	}
//	switch res.Outcome {
//	case bfs.Found:
//	    fmt.Println(res.Distance, res.Path)
//	case bfs.NoPath:
//	case bfs.UnknownActor:
//	    fmt.Println(res.Unknown)
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation, checked per dequeued actor.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithOnVisit(fn):         called per visited actor; an error aborts.
//   - WithTarget(id):          stop as soon as id is dequeued.
//   - WithParallelism(n):      Resolve concurrency bound.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the BFS start actor does not exist.
//   - ErrOptionViolation      if an Option is invalid.
//   - ErrNeighbors            if neighbor lookup fails.
//   - context errors and wrapped OnVisit errors.
package bfs
