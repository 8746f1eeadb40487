package transform

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

// executeCompiles compiles every job on at most workers goroutines. A
// failing module does not stop the others; its error is kept on its
// Result. Only cancellation of ctx aborts the phase.
func (s *Session) executeCompiles(ctx context.Context, jobs []Job, workers int, verbose bool) ([]Result, PhaseRecord, error) {
	start := time.Now()

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.runWorker(gctx, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, PhaseRecord{}, fmt.Errorf("compiling modules: %w", err)
	}

	var maxWorkerDuration time.Duration
	for _, r := range results {
		if r.Duration > maxWorkerDuration {
			maxWorkerDuration = r.Duration
		}
		if verbose && r.Error == nil {
			output.Debug("compiled", "module", r.Path, "duration", formatDuration(r.Duration))
		}
	}

	record := PhaseRecord{
		Name:     "Parallel Compile",
		Duration: time.Since(start),
		Details:  fmt.Sprintf("%d modules on %d workers (max: %s)", len(jobs), workers, formatDuration(maxWorkerDuration)),
	}
	return results, record, nil
}

// runWorker reads and compiles one module.
func (s *Session) runWorker(ctx context.Context, job Job) Result {
	start := time.Now()

	src, err := s.opts.ReadFile(job.Path)
	if err != nil {
		return Result{
			Path:     job.Path,
			Error:    fmt.Errorf("reading %s: %w", job.Path, err),
			Duration: time.Since(start),
		}
	}

	c, err := s.Compile(ctx, job.Path, src)
	return Result{
		Path:     job.Path,
		Compiled: c,
		Error:    err,
		Duration: time.Since(start),
	}
}
