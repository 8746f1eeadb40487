// Package edit applies byte-range replacements to module source text.
//
// Transform passes never mutate a syntax tree. They describe their changes as
// a list of Edits against the original source, and Apply produces the new
// text in one pass.
package edit

import (
	"fmt"
	"sort"
	"strings"
)

// Edit replaces Source[Start:End] with Text. Start == End inserts.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Replace returns an edit replacing [start, end) with text.
func Replace(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// Insert returns an edit inserting text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Start: offset, End: offset, Text: text}
}

// OverlapError reports two edits touching the same bytes.
type OverlapError struct {
	A, B Edit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("edits overlap: [%d,%d) and [%d,%d)", e.A.Start, e.A.End, e.B.Start, e.B.End)
}

// Apply applies edits to src. Insertions at the same offset keep their
// relative order. Overlapping replacements are rejected.
func Apply(src []byte, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return string(src), nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var b strings.Builder
	b.Grow(len(src))
	pos := 0
	for i, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(src) {
			return "", fmt.Errorf("edit [%d,%d) out of range for %d bytes", e.Start, e.End, len(src))
		}
		if e.Start < pos {
			return "", &OverlapError{A: sorted[i-1], B: e}
		}
		b.Write(src[pos:e.Start])
		b.WriteString(e.Text)
		pos = e.End
	}
	b.Write(src[pos:])
	return b.String(), nil
}
