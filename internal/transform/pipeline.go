package transform

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/classname"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

// skipDirs are never descended into by Discover.
var skipDirs = map[string]bool{"node_modules": true, ".git": true}

// Pattern returns the doublestar pattern matching eligible module files.
func (s *Session) Pattern() string {
	exts := s.opts.Extensions
	if len(exts) == 1 {
		return "**/*" + exts[0]
	}
	return "**/*{" + strings.Join(exts, ",") + "}"
}

// Discover lists every eligible module under root, sorted.
func (s *Session) Discover(root string) ([]string, error) {
	pattern := s.Pattern()
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		ok, err := doublestar.PathMatch(filepath.FromSlash(pattern), rel)
		if err != nil {
			return fmt.Errorf("matching %s: %w", pattern, err)
		}
		if ok && s.Eligible(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering modules under %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// BatchOptions configures Batch.
type BatchOptions struct {
	// Workers bounds parallel compiles. A sequential namer always runs
	// with one worker.
	Workers int
	Verbose bool
}

// Batch transforms every module in paths. Modules are compiled in parallel
// and committed one by one in sorted path order, so the processing order
// and therefore the CSS order does not depend on scheduling. With a
// sequential namer modules are also compiled in sorted order. Per-module
// failures are aggregated in the result; only cancellation returns an
// error.
func (s *Session) Batch(ctx context.Context, paths []string, opts BatchOptions) (*BatchResult, error) {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	jobs := make([]Job, len(sorted))
	for i, p := range sorted {
		jobs[i] = Job{Path: p}
	}

	workers := opts.Workers
	if _, ok := s.opts.Namer.(classname.Sequential); ok {
		workers = 1
	}
	if opts.Verbose {
		output.Debug("compiling modules", "count", len(jobs), "workers", workers)
	}
	results, compileRecord, err := s.executeCompiles(ctx, jobs, workers, opts.Verbose)
	if err != nil {
		return nil, err
	}

	commitRecord, reports, errs := s.commitResults(results)

	return &BatchResult{
		Modules: reports,
		Phases:  []PhaseRecord{compileRecord, commitRecord},
		Errors:  errs,
	}, nil
}

// commitResults publishes successful results in order and aggregates
// failures.
func (s *Session) commitResults(results []Result) (PhaseRecord, []ModuleReport, []error) {
	start := time.Now()

	var (
		reports []ModuleReport
		errs    []error
		changed int
	)
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
			reports = append(reports, ModuleReport{Path: r.Path, Error: r.Error})
			continue
		}
		out := s.Commit(r.Compiled)
		if out.Changed {
			changed++
		}
		reports = append(reports, ModuleReport{
			Path:     r.Path,
			Output:   out,
			Rules:    len(r.Compiled.Rules),
			CSSBytes: len(r.Compiled.CSS(s.opts.Mode == ModeDev)),
			Warnings: r.Compiled.Warnings,
		})
	}

	record := PhaseRecord{
		Name:     "Publish",
		Duration: time.Since(start),
		Details:  fmt.Sprintf("%d changed, %d failed (%s)", changed, len(errs), s.opts.Mode),
	}
	return record, reports, errs
}
