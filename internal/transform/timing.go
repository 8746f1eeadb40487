package transform

import (
	"fmt"
	"io"
	"time"
)

// formatDuration returns a concise duration string.
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// phaseDetails joins a phase's details with its first two steps.
func phaseDetails(phase PhaseRecord) string {
	details := phase.Details
	for i, step := range phase.Steps {
		if i == 2 {
			break
		}
		s := fmt.Sprintf("%s: %s", step.Name, formatDuration(step.Duration))
		switch {
		case details == "":
			details = s
		case i == 0:
			details = details + " | " + s
		default:
			details = details + ", " + s
		}
	}
	if len(details) > 45 {
		details = details[:42] + "..."
	}
	return details
}

// PrintTimingSummary writes an ASCII table with phase timing details.
func PrintTimingSummary(w io.Writer, phases []PhaseRecord) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "╭──────────────────────────────┬──────────┬───────────────────────────────────────────────╮")
	fmt.Fprintln(w, "│ Phase                        │ Duration │ Details                                       │")
	fmt.Fprintln(w, "├──────────────────────────────┼──────────┼───────────────────────────────────────────────┤")

	var total time.Duration
	for i, phase := range phases {
		total += phase.Duration
		fmt.Fprintf(w, "│ %d. %-25s │ %8s │ %-45s │\n", i+1, phase.Name, formatDuration(phase.Duration), phaseDetails(phase))
	}

	fmt.Fprintln(w, "├──────────────────────────────┼──────────┼───────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-28s │ %8s │ %-45s │\n", "Total", formatDuration(total), "Pipeline complete")
	fmt.Fprintln(w, "╰──────────────────────────────┴──────────┴───────────────────────────────────────────────╯")
}
