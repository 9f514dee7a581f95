// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns names sorted lex asc.
//   - AdjacencyList() returns per-actor slices sorted lex asc.
// Concurrency:
//   - Read lock only; returned slices are fresh copies.
package core

import "slices"

// NeighborIDs returns the co-stars of name, sorted lexicographically ascending.
//
// Traversals iterate this slice, which is what makes BFS tie-breaking and DFS
// discovery order reproducible across runs.
//
// Errors:
//   - ErrEmptyActor: if name == "".
//   - ErrActorNotFound: if the actor is absent.
//
// Complexity: O(d log d), where d is the degree of name.
func (g *Graph) NeighborIDs(name string) ([]string, error) {
	if name == "" {
		return nil, ErrEmptyActor
	}

	g.mu.RLock()
	nbrs, ok := g.adjacency[name]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrActorNotFound
	}
	ids := nbrs.ToSlice()
	g.mu.RUnlock()

	slices.Sort(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot actor → sorted co-stars.
// The returned map and slices are owned by the caller.
//
// Complexity: O(V + E·log d).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	out := make(map[string][]string, len(g.adjacency))
	for name, nbrs := range g.adjacency {
		out[name] = nbrs.ToSlice()
	}
	g.mu.RUnlock()

	for _, ids := range out {
		slices.Sort(ids)
	}

	return out
}
