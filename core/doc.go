// Package core provides the in-memory actor co-star graph: an undirected,
// unweighted, simple graph whose vertices are actor display names.
//
// The Graph G = (V,E) keeps, for every actor, the set of actors they have
// shared a credited cast with:
//
//   - adjacency[actor] = mapset.Set[string] of co-stars
//   - AddEdge(a, b) inserts b into adjacency[a] and a into adjacency[b]
//   - re-inserting an existing edge is a no-op (set semantics)
//   - self-loops are rejected with ErrSelfLoop
//
// Why a dedicated type?
//
//   - Symmetry is maintained by the only mutator, so consumers never see a
//     half-inserted edge.
//   - Deterministic enumeration: Actors(), NeighborIDs() and AdjacencyList()
//     return sorted results, independent of map iteration order.
//   - Publish barrier: Freeze() makes the graph read-only; after that the
//     BFS, DFS and ranking packages may run concurrently on one instance.
//   - Merge(): union of neighbor sets, used by sharded ingestion. Edge
//     insertion is commutative and idempotent, so shard order never changes
//     the resulting adjacency.
//
// Core Methods:
//
//	// Actor lifecycle
//	AddActor(name string) error              // O(1)
//	HasActor(name string) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string) (added bool, err error) // O(1)
//	HasEdge(a, b string) bool                // O(1)
//
//	// Query
//	NeighborIDs(name string) ([]string, error) // O(d·log d), sorted
//	AdjacencyList() map[string][]string        // O(V+E·log d)
//	Actors() []string                          // O(V·log V)
//	Degree(name string) (int, error)           // O(1)
//	ActorCount() int / EdgeCount() int         // O(1)
//	Stats() *GraphStats                        // O(V)
//
//	// Lifecycle
//	Freeze() / Frozen()                        // O(1)
//	Clone() *Graph                             // O(V+E)
//	Merge(other *Graph) error                  // O(V'+E')
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog. Mutators take the write lock,
//	queries take the read lock. Neighbor sets are thread-unsafe mapset values
//	and are only touched under that lock; callers always receive copies.
package core
