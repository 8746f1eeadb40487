// Package diag defines the non-fatal diagnostics produced while transforming
// a source module.
package diag

import "fmt"

// Kind identifies an unsupported markup combination.
type Kind string

const (
	// KindSpreadStyle is reported when an element carries both a spread
	// attribute and a literal style object. Its styles stay inline.
	KindSpreadStyle Kind = "spread-style"

	// KindUnsupportedClass is reported when the class attribute holds a value
	// a generated class cannot be merged into (an element, a fragment, or no
	// value at all).
	KindUnsupportedClass Kind = "unsupported-class"
)

// Warning describes one element left as authored.
type Warning struct {
	Kind   Kind
	Path   string
	Tag    string
	Line   int
	Column int

	// Detail is the offending source text, e.g. the spread expression.
	Detail string
}

// Location returns "path:line:column".
func (w Warning) Location() string {
	return fmt.Sprintf("%s:%d:%d", w.Path, w.Line, w.Column)
}

// Message returns a one-line human readable description.
func (w Warning) Message() string {
	switch w.Kind {
	case KindSpreadStyle:
		return fmt.Sprintf("<%s> spreads %s alongside a literal style object; inline styles are kept dynamic", w.Tag, w.Detail)
	case KindUnsupportedClass:
		return fmt.Sprintf("<%s> has a class value (%s) a generated class cannot be merged into; class not injected", w.Tag, w.Detail)
	default:
		return fmt.Sprintf("<%s>: %s", w.Tag, w.Detail)
	}
}
