// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Policy:
//   - Undirected: AddEdge(a,b) mirrors into both neighbor sets under one lock.
//   - Simple: repeated insertion is a no-op, self-loops are rejected.
package core

// AddEdge connects a and b, creating either actor if absent.
//
// Behavior highlights:
//   - Symmetric: both neighbor sets are updated under the same write lock.
//   - Idempotent: a second AddEdge(a,b) or AddEdge(b,a) returns added == false.
//
// Returns:
//   - added: true iff the edge did not exist before.
//
// Errors:
//   - ErrEmptyActor: if a or b is empty.
//   - ErrSelfLoop: if a == b.
//   - ErrFrozen: if the graph has been published.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyActor
	}
	if a == b {
		return false, ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen.Load() {
		return false, ErrFrozen
	}

	return g.link(a, b), nil
}

// HasEdge reports whether a and b are co-stars. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[a]
	if !ok {
		return false
	}

	return nbrs.Contains(b)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// link inserts the symmetric edge a–b and reports whether it was new.
// Caller must hold the write lock and have rejected self-loops.
func (g *Graph) link(a, b string) bool {
	added := g.ensureActor(a).Add(b)
	g.ensureActor(b).Add(a)
	if added {
		g.edges++
	}

	return added
}
