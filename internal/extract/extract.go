// Package extract finds literal inline style declarations on markup elements
// and plans their removal from the style object.
package extract

import (
	"strings"
	"unicode"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/edit"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/parser"
)

// StyleAttribute is the attribute carrying inline style objects.
const StyleAttribute = "style"

// Result is the outcome of visiting one element. A zero Result means the
// element is left untouched.
type Result struct {
	// Declarations are the extracted properties in declaration order.
	Declarations []Declaration

	// Edit rewrites the style object without the extracted properties.
	Edit *edit.Edit

	// Warning is set when extraction was skipped for an unsupported
	// combination.
	Warning *diag.Warning
}

// Extracted reports whether any declaration was promoted to CSS.
func (r Result) Extracted() bool {
	return len(r.Declarations) > 0
}

// Element visits one element of the module at path.
func Element(path string, el *parser.Element) Result {
	attr := el.Attribute(StyleAttribute)
	if attr == nil || attr.Value == nil || attr.Value.Kind != parser.ValueExpression {
		return Result{}
	}
	obj := attr.Value.Expr
	if obj == nil || obj.Kind != parser.ExprObject {
		return Result{}
	}

	if spread := el.Spread(); spread != nil {
		return Result{Warning: &diag.Warning{
			Kind:   diag.KindSpreadStyle,
			Path:   path,
			Tag:    el.Tag,
			Line:   el.Pos.Line,
			Column: el.Pos.Column,
			Detail: spread.Text,
		}}
	}

	var (
		decls []Declaration
		kept  []string
	)
	for _, p := range obj.Properties {
		if d, ok := literal(p); ok {
			decls = append(decls, d)
			continue
		}
		kept = append(kept, p.Text)
	}
	if len(decls) == 0 {
		return Result{}
	}

	e := edit.Replace(obj.Span.Start, obj.Span.End, objectText(kept))
	return Result{Declarations: decls, Edit: &e}
}

// literal converts a property with a static key and a string or number
// value into a declaration.
func literal(p *parser.Property) (Declaration, bool) {
	if p.Key == "" || p.Value == nil {
		return Declaration{}, false
	}
	switch p.Value.Kind {
	case parser.ExprString, parser.ExprNumber:
		return Declaration{Property: KebabCase(p.Key), Value: p.Value.Literal}, true
	default:
		return Declaration{}, false
	}
}

func objectText(props []string) string {
	if len(props) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

// KebabCase converts a camelCase style key to its CSS property name by
// inserting "-" before every uppercase letter and lowercasing the result.
func KebabCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
