// File: sink.go
// Role: isolated, concurrent persistence of report artifacts.
// Contract:
//   - Every artifact is rendered into its own temp file in Dir and renamed
//     into place only after a successful render, so a failed artifact never
//     leaves a partial file and never prevents the others.
//   - WriteAll returns one Outcome per artifact, in input order.
// Concurrency:
//   - Artifacts are written by a bounded conc pool; Render funcs must not
//     share mutable state.

package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrNilInput is returned by a renderer given a nil graph or result.
	ErrNilInput = errors.New("report: nil input")

	// ErrInvalidName is recorded for an artifact whose name is empty or
	// contains a path separator.
	ErrInvalidName = errors.New("report: invalid artifact name")

	// ErrNoRenderer is recorded for an artifact with a nil Render func.
	ErrNoRenderer = errors.New("report: artifact has no renderer")
)

// Artifact is one named output.
type Artifact struct {
	// Name is the file name inside the sink directory.
	Name string

	// Render writes the artifact content.
	Render func(io.Writer) error
}

// Outcome records what happened to one artifact.
type Outcome struct {
	Name  string
	Path  string
	Bytes int64
	Err   error
}

// FileSink writes artifacts as files under Dir.
type FileSink struct {
	// Dir is created if missing. Empty means the working directory.
	Dir string

	// Parallelism bounds concurrent writes; 0 means GOMAXPROCS.
	Parallelism int

	// Logger receives one entry per artifact; nil disables logging.
	Logger *zap.Logger
}

// WriteAll writes every artifact and returns their outcomes in input order.
// Artifacts not yet started when ctx is done fail with the context error.
func (s FileSink) WriteAll(ctx context.Context, artifacts []Artifact) []Outcome {
	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}
	n := s.Parallelism
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(artifacts))
	p := pool.New().WithMaxGoroutines(n)
	for i, a := range artifacts {
		p.Go(func() {
			out := s.write(ctx, a)
			if out.Err != nil {
				log.Error("Report failed", zap.String("name", a.Name), zap.Error(out.Err))
			} else {
				log.Info("Report written", zap.String("path", out.Path), zap.Int64("bytes", out.Bytes))
			}
			outcomes[i] = out
		})
	}
	p.Wait()

	return outcomes
}

func (s FileSink) write(ctx context.Context, a Artifact) Outcome {
	out := Outcome{Name: a.Name}
	switch {
	case a.Name == "" || a.Name == "." || a.Name == ".." || filepath.Base(a.Name) != a.Name:
		out.Err = fmt.Errorf("%w: %q", ErrInvalidName, a.Name)
		return out
	case a.Render == nil:
		out.Err = fmt.Errorf("%w: %q", ErrNoRenderer, a.Name)
		return out
	}
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	out.Path = filepath.Join(dir, a.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		out.Err = fmt.Errorf("report: create %s: %w", dir, err)
		return out
	}

	tmp, err := os.CreateTemp(dir, "."+a.Name+".*.tmp")
	if err != nil {
		out.Err = fmt.Errorf("report: %s: %w", a.Name, err)
		return out
	}
	// Removing after a successful rename fails harmlessly.
	defer os.Remove(tmp.Name())

	cw := &countingWriter{w: tmp}
	bw := bufio.NewWriter(cw)
	err = a.Render(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), out.Path)
	}
	if err != nil {
		out.Err = fmt.Errorf("report: %s: %w", a.Name, err)
		return out
	}
	out.Bytes = cw.n

	return out
}

// Failures combines the errors of all failed outcomes, or returns nil.
func Failures(outcomes []Outcome) error {
	var err error
	for _, o := range outcomes {
		if o.Err != nil {
			err = multierr.Append(err, o.Err)
		}
	}

	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
