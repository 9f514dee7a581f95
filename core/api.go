// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.

package core

// Stats produces a read-only snapshot of catalog sizes.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		ActorCount: len(g.adjacency),
		EdgeCount:  g.edges,
		Frozen:     g.frozen.Load(),
	}
	for _, nbrs := range g.adjacency {
		d := nbrs.Cardinality()
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
