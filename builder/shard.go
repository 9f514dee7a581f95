// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// shard.go - per-worker ingestion into a local graph.

package builder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/costar/core"
)

// shard owns a private graph; no locking beyond core's own is needed.
type shard struct {
	cfg     builderConfig
	graph   *core.Graph
	skipped []RecordError
	stats   Stats
}

// newShard sizes the local graph for a shard of n records, assuming a
// couple of first-seen actors per movie.
func newShard(cfg builderConfig, n int) *shard {
	return &shard{cfg: cfg, graph: core.NewGraph(core.WithCapacity(2 * n))}
}

// ingest links every distinct-name pair of one record's cast.
// Extraction failures are recorded, not returned.
func (s *shard) ingest(idx int, rec Record) error {
	title, names, err := extract(rec)
	if err != nil {
		s.skip(idx, title, err)
		return nil
	}
	s.stats.RecordsUsed++

	if s.cfg.maxCast > 0 && len(names) > s.cfg.maxCast {
		names = names[:s.cfg.maxCast]
		s.stats.CastTruncated++
	}
	s.cfg.logger.Debug("Processing movie",
		zap.Int("index", idx),
		zap.String("title", title),
		zap.Int("cast", len(names)),
	)
	if len(names) < 2 {
		s.stats.RecordsWithoutEdges++
		return nil
	}

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			s.stats.PairsVisited++
			if names[i] == names[j] {
				continue
			}
			if _, err = s.graph.AddEdge(names[i], names[j]); err != nil {
				return fmt.Errorf("builder: record %d (%q): %w", idx, title, err)
			}
		}
	}

	return nil
}

// extract reads title and cast from rec. Names are trimmed and blank ones
// dropped. A nil record fails with ErrNilRecord and a panicking one, such as
// a typed nil pointer, with ErrRecordPanic.
func extract(rec Record) (title string, names []string, err error) {
	if rec == nil {
		return "", nil, ErrNilRecord
	}
	defer func() {
		if r := recover(); r != nil {
			names = nil
			err = fmt.Errorf("%w: %v", ErrRecordPanic, r)
		}
	}()

	title = rec.MovieTitle()
	raw, err := rec.CastNames()
	if err != nil {
		return title, nil, err
	}
	names = make([]string, 0, len(raw))
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	return title, names, nil
}

func (s *shard) skip(idx int, title string, err error) {
	s.skipped = append(s.skipped, RecordError{Index: idx, Title: title, Err: err})
	s.cfg.logger.Warn("No valid cast data",
		zap.Int("index", idx),
		zap.String("title", title),
		zap.Error(err),
	)
}
