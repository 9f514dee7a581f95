// Package dfs implements depth-first search and connected components on the
// co-star graph.
//
// What:
//
//   - DFS(g, startID, opts...): single-source iterative DFS. The stack is an
//     explicit slice of frames, so traversal depth is bounded by memory and
//     not by the goroutine stack. Reports pre-order (Order), post-order
//     (PostOrder), Depth, Parent and Visited.
//   - Components(g, opts...): runs the same walker from every actor not yet
//     reached, in ascending name order, and returns Count, Assignment, Roots
//     and Sizes. Connected() is Count == 1; an empty graph has no components
//     and is not connected.
//
// Determinism:
//
//	core.Graph.NeighborIDs and core.Graph.Actors are sorted, so visit order,
//	component numbering and roots are identical run to run.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked per discovered vertex.
//   - WithOnVisit(fn)           pre-order hook; error aborts traversal.
//   - WithOnExit(fn)            post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)       stops descending beyond limit (>=0). DFS only.
//   - WithFilterNeighbor(fn)    skip neighbors; counted in SkippedNeighbors. DFS only.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled / context.DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
