// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.
//   • Later options override earlier ones.

package builder

import (
	"context"

	"go.uber.org/zap"
)

// BuilderOption customizes a Build call.
type BuilderOption func(*builderConfig)

// WithContext sets the context checked between records. nil is ignored.
func WithContext(ctx context.Context) BuilderOption {
	return func(c *builderConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithWorkers shards the input into n contiguous slices built in parallel and
// merged by neighbor-set union. Panics if n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithMaxCast limits pair generation to the first k credited names of each
// movie, bounding the O(k²) insertion cost. 0 disables the cap.
// Panics if k < 0 or k == 1 (a one-name cap can never form an edge).
func WithMaxCast(k int) BuilderOption {
	if k < 0 || k == 1 {
		panic("builder: WithMaxCast(k<0 || k==1)")
	}
	return func(c *builderConfig) {
		c.maxCast = k
	}
}

// WithLogger sets the diagnostics sink. nil restores the no-op logger.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}
