// File: methods_clone.go
// Role: Cloning, merging and publishing graph instances.
// Concurrency:
//   - Clone and the source side of Merge take read locks only.
//   - Merge takes the destination write lock after snapshotting the source,
//     so merging a graph into itself cannot deadlock.
package core

import mapset "github.com/deckarep/golang-set/v2"

// Freeze publishes the graph: every later mutation fails with ErrFrozen.
// Freeze is idempotent and safe to call concurrently with readers.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen.Store(true)
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen.Load() }

// Clone returns an unfrozen deep copy of the adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for name, nbrs := range g.adjacency {
		clone.adjacency[name] = nbrs.Clone()
	}
	clone.edges = g.edges

	return clone
}

// Merge adds every actor and edge of other into g (union of neighbor sets).
//
// Edge insertion is commutative and idempotent, so merging shard graphs in
// any order yields the same adjacency.
//
// Errors:
//   - ErrFrozen: if g has been published.
//
// Complexity: O(V' + E') for other's size.
func (g *Graph) Merge(other *Graph) error {
	if other == nil {
		return nil
	}

	other.mu.RLock()
	snapshot := make(map[string]mapset.Set[string], len(other.adjacency))
	for name, nbrs := range other.adjacency {
		snapshot[name] = nbrs.Clone()
	}
	other.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen.Load() {
		return ErrFrozen
	}
	for name, nbrs := range snapshot {
		g.ensureActor(name)
		nbrs.Each(func(nbr string) bool {
			g.link(name, nbr)
			return false
		})
	}

	return nil
}
