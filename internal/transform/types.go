package transform

import (
	"time"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
)

// Job is one module handed to a compile worker.
type Job struct {
	Path string
}

// Result is the output of one compile worker.
type Result struct {
	Path     string
	Compiled *Compiled
	Error    error
	Duration time.Duration
}

// PhaseStep represents a timed sub-step within a phase.
type PhaseStep struct {
	Name     string
	Duration time.Duration
}

// PhaseRecord captures timing for an entire pipeline phase.
type PhaseRecord struct {
	Name     string
	Duration time.Duration
	Steps    []PhaseStep
	Details  string // Human-readable summary (e.g., "12 modules on 4 workers")
}

// ModuleReport is the committed outcome of one module in a batch run.
type ModuleReport struct {
	Path     string
	Output   Output
	Rules    int
	CSSBytes int
	Warnings []diag.Warning
	Error    error
}

// BatchResult contains the output of a batch run.
type BatchResult struct {
	// Modules holds one report per input path, sorted by path.
	Modules []ModuleReport

	// Phases holds timing records for the timing summary.
	Phases []PhaseRecord

	// Errors aggregates per-module failures (fail-on-end).
	Errors []error
}

// Changed returns the reports of modules that produced CSS.
func (r *BatchResult) Changed() []ModuleReport {
	var out []ModuleReport
	for _, m := range r.Modules {
		if m.Error == nil && m.Output.Changed {
			out = append(out, m)
		}
	}
	return out
}
