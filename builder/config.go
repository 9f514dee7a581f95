// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • ctx      = context.Background()
//   • workers  = 1       (sequential ingestion)
//   • maxCast  = 0       (no cap)
//   • logger   = zap.NewNop()

package builder

import (
	"context"

	"go.uber.org/zap"
)

const (
	defaultWorkers = 1
	noCastCap      = 0
)

// builderConfig aggregates all knobs used by Build. Passed by value.
type builderConfig struct {
	ctx     context.Context
	workers int
	maxCast int
	logger  *zap.Logger
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		ctx:     context.Background(),
		workers: defaultWorkers,
		maxCast: noCastCap,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
