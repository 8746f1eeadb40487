// Package classname synthesizes class tokens and merges them into an
// element's class attribute.
package classname

import (
	"strconv"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/edit"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/parser"
)

// Attribute is the attribute the synthesized token is merged into.
const Attribute = "class"

// Value is the current representation of an element's class attribute.
// The set of implementations is closed: Absent, Literal, Expression and
// Unsupported.
type Value interface {
	// inject returns the edit that adds token to the class value. It
	// reports false when the value cannot carry the token.
	inject(token string) (edit.Edit, bool)
}

// Absent means the element has no class attribute. At is the offset after
// the last attribute (or the tag name).
type Absent struct {
	At int
}

// Literal is a quoted string value.
type Literal struct {
	Span  parser.Span
	Quote byte
	Text  string
}

// Expression is an expression container. Expr is empty for {} or a
// container holding only comments.
type Expression struct {
	Span parser.Span
	Expr string
}

// Unsupported is a class attribute whose value cannot be merged with a
// token: a nested element, a fragment, or no value at all.
type Unsupported struct {
	Attr *parser.Attribute
}

func (v Absent) inject(token string) (edit.Edit, bool) {
	return edit.Insert(v.At, ` class="`+token+`"`), true
}

func (v Literal) inject(token string) (edit.Edit, bool) {
	merged := token
	if v.Text != "" {
		merged = v.Text + " " + token
	}
	q := string(v.Quote)
	return edit.Replace(v.Span.Start, v.Span.End, q+merged+q), true
}

func (v Expression) inject(token string) (edit.Edit, bool) {
	expr := v.Expr
	if expr == "" {
		expr = "undefined"
	}
	text := "{(" + expr + `) + " " + ` + strconv.Quote(token) + "}"
	return edit.Replace(v.Span.Start, v.Span.End, text), true
}

func (Unsupported) inject(string) (edit.Edit, bool) {
	return edit.Edit{}, false
}

// Classify inspects the class attribute of el.
func Classify(el *parser.Element) Value {
	attr := el.Attribute(Attribute)
	if attr == nil {
		return Absent{At: el.InsertAt}
	}
	if attr.Value == nil {
		return Unsupported{Attr: attr}
	}
	switch attr.Value.Kind {
	case parser.ValueString:
		return Literal{Span: attr.Value.Span, Quote: attr.Value.Quote, Text: attr.Value.Literal}
	case parser.ValueExpression:
		v := Expression{Span: attr.Value.Span}
		if attr.Value.Expr != nil {
			v.Expr = attr.Value.Expr.Text
		}
		return v
	default:
		return Unsupported{Attr: attr}
	}
}

// Inject merges token into the class attribute of el. When the attribute
// has an unsupported shape no edit is returned and the warning describes
// the element.
func Inject(path string, el *parser.Element, token string) (*edit.Edit, *diag.Warning) {
	v := Classify(el)
	if e, ok := v.inject(token); ok {
		return &e, nil
	}

	w := &diag.Warning{
		Kind:   diag.KindUnsupportedClass,
		Path:   path,
		Tag:    el.Tag,
		Line:   el.Pos.Line,
		Column: el.Pos.Column,
	}
	if u, ok := v.(Unsupported); ok {
		w.Detail = "no value"
		if u.Attr.Value != nil {
			w.Detail = u.Attr.Value.Kind.String()
		}
	}
	return nil, w
}
