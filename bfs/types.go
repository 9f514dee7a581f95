// File: types.go
// Role: query options, sentinel errors and the walk result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound: the start actor is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil: a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option carried a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts a walk or a query. Bad values are remembered and reported
// as ErrOptionViolation by the call that receives them.
type Option func(*BFSOptions)

// BFSOptions is the resolved configuration shared by BFS, Distance, Path
// and Resolve.
type BFSOptions struct {
	// Ctx is polled once per dequeued actor and once per neighbor.
	Ctx context.Context

	// OnVisit sees every actor in Order as it is dequeued. A non-nil error
	// ends the walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds how far from the start actors are discovered.
	// 0 means unbounded.
	MaxDepth int

	// FilterNeighbor hides the edge curr–neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	// Target ends the walk right after this actor is visited.
	Target string

	// Parallelism caps concurrent searches in Resolve; 0 is GOMAXPROCS.
	Parallelism int

	trackParents bool
	err          error
}

// DefaultOptions: background context, no depth bound, every edge followed,
// no target, parents recorded.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
		trackParents:   true,
	}
}

// WithContext attaches ctx. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to actors at most d hops away.
// d == 0 removes the limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithTarget stops the walk once id is visited; the result then covers only
// what was discovered up to that point.
func WithTarget(id string) Option {
	return func(o *BFSOptions) {
		o.Target = id
	}
}

// WithParallelism caps how many searches Resolve runs at once.
// n == 0 means GOMAXPROCS; n < 0 is an ErrOptionViolation.
func WithParallelism(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Parallelism cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// BFSResult is the BFS tree of one walk. Order lists actors as visited,
// Depth maps each discovered actor to its hop count and Parent to its
// predecessor. Parent is nil for distance-only queries.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent back from dest and returns start..dest.
// It fails when dest was never discovered.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, hops+1)
	cur := dest
	for i := hops; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
