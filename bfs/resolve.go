package bfs

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/costar/core"
)

// Query is one actor pair to resolve.
type Query struct {
	From string
	To   string
}

// Mode selects what Resolve computes per query.
type Mode int

const (
	// ModeDistance computes distances only.
	ModeDistance Mode = iota
	// ModePath also reconstructs the path.
	ModePath
)

// Resolve answers every query on g concurrently and returns the results in
// input order. At most WithParallelism searches run at once.
// The first error (nil graph, invalid option, cancellation) cancels the
// remaining queries and is returned with a nil slice.
func Resolve(g *core.Graph, queries []Query, mode Mode, opts ...Option) ([]Result, error) {
	o, err := resolveOptions(g, opts)
	if err != nil {
		return nil, err
	}
	n := o.Parallelism
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(queries))
	p := pool.New().
		WithContext(o.Ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(n)

	for i, q := range queries {
		p.Go(func(ctx context.Context) error {
			qopts := make([]Option, 0, len(opts)+1)
			qopts = append(qopts, opts...)
			// each slot is written by exactly one goroutine
			r, err := query(g, q.From, q.To, mode == ModePath, append(qopts, WithContext(ctx)))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
