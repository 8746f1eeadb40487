// Package parser adapts tree-sitter's JavaScript, TypeScript and TSX grammars
// into the markup-level Document consumed by the style transform.
//
// Each Parse call creates its own tree-sitter parser, so Parse is safe for
// concurrent use. The native syntax tree is closed before Parse returns.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
)

// maxSnippet bounds the source excerpt carried by a ParseError.
const maxSnippet = 24

// languageFor picks the grammar for a module path by extension.
func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses src and collects every markup element in source order.
// A module containing syntax errors yields a *errors.ParseError.
func Parse(ctx context.Context, path string, src []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse %s canceled before start: %w", path, err)
	}
	if !utf8.Valid(src) {
		return nil, &oerrors.ParseError{Path: path, Line: 1, Column: 1, Snippet: "invalid UTF-8"}
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(languageFor(path))

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &oerrors.ParseError{Path: path, Line: 1, Column: 1}
	}
	if root.HasError() {
		return nil, syntaxError(path, root, src)
	}

	doc := &Document{Path: path, Source: src}
	w := walker{src: src}
	w.collect(root, doc)
	return doc, nil
}

// syntaxError locates the first ERROR or MISSING node under root.
func syntaxError(path string, root *sitter.Node, src []byte) error {
	bad := firstError(root)
	if bad == nil {
		bad = root
	}
	pt := bad.StartPoint()
	snippet := strings.TrimSpace(bad.Content(src))
	if i := strings.IndexByte(snippet, '\n'); i >= 0 {
		snippet = snippet[:i]
	}
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet]
	}
	return &oerrors.ParseError{
		Path:    path,
		Line:    int(pt.Row) + 1,
		Column:  int(pt.Column) + 1,
		Snippet: snippet,
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstError(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

type walker struct {
	src []byte
}

func (w walker) text(n *sitter.Node) string {
	return n.Content(w.src)
}

func span(n *sitter.Node) Span {
	return Span{Start: int(n.StartByte()), End: int(n.EndByte())}
}

func (w walker) collect(n *sitter.Node, doc *Document) {
	switch n.Type() {
	case "jsx_opening_element", "jsx_self_closing_element":
		if el := w.element(n); el != nil {
			doc.Elements = append(doc.Elements, el)
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.collect(n.NamedChild(i), doc)
	}
}

func (w walker) element(n *sitter.Node) *Element {
	name := n.ChildByFieldName("name")
	if name == nil {
		// <> opens a fragment, which takes no attributes.
		return nil
	}
	pt := n.StartPoint()
	el := &Element{
		Tag:      w.text(name),
		Pos:      Position{Line: int(pt.Row) + 1, Column: int(pt.Column) + 1},
		Span:     span(n),
		InsertAt: int(name.EndByte()),
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		var attr *Attribute
		switch c.Type() {
		case "jsx_attribute":
			attr = w.attribute(c)
		case "jsx_expression":
			attr = w.spread(c)
		}
		if attr == nil {
			continue
		}
		el.Attributes = append(el.Attributes, attr)
		el.InsertAt = attr.Span.End
	}
	return el
}

func (w walker) attribute(n *sitter.Node) *Attribute {
	if n.NamedChildCount() == 0 {
		return nil
	}
	attr := &Attribute{
		Kind: AttributePlain,
		Name: w.text(n.NamedChild(0)),
		Span: span(n),
		Text: w.text(n),
	}
	if n.NamedChildCount() > 1 {
		attr.Value = w.value(n.NamedChild(int(n.NamedChildCount()) - 1))
	}
	return attr
}

// spread handles the {...expr} form of an attribute. Any other expression in
// attribute position is not valid markup and is ignored.
func (w walker) spread(n *sitter.Node) *Attribute {
	inner := firstNamed(n)
	if inner == nil || inner.Type() != "spread_element" {
		return nil
	}
	return &Attribute{
		Kind: AttributeSpread,
		Span: span(n),
		Text: w.text(inner),
	}
}

func (w walker) value(n *sitter.Node) *Value {
	v := &Value{Span: span(n), Text: w.text(n)}
	switch n.Type() {
	case "string":
		v.Kind = ValueString
		if len(v.Text) >= 2 {
			v.Quote = v.Text[0]
			v.Literal = v.Text[1 : len(v.Text)-1]
		}
	case "jsx_expression":
		v.Kind = ValueExpression
		if inner := firstNamed(n); inner != nil {
			v.Expr = w.expr(inner)
		}
	case "jsx_fragment":
		v.Kind = ValueFragment
	default:
		v.Kind = ValueElement
		if n.Type() == "jsx_element" {
			if open := n.ChildByFieldName("open_tag"); open != nil && open.ChildByFieldName("name") == nil {
				v.Kind = ValueFragment
			}
		}
	}
	return v
}

func (w walker) expr(n *sitter.Node) *Expr {
	for n.Type() == "parenthesized_expression" {
		inner := firstNamed(n)
		if inner == nil {
			break
		}
		n = inner
	}
	e := &Expr{Kind: ExprOther, Span: span(n), Text: w.text(n)}
	switch n.Type() {
	case "object":
		e.Kind = ExprObject
		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() == "comment" {
				continue
			}
			e.Properties = append(e.Properties, w.property(c))
		}
	case "string":
		if lit, ok := unquoteJS(e.Text); ok {
			e.Kind = ExprString
			e.Literal = lit
		}
	case "number":
		e.Kind = ExprNumber
		e.Literal = e.Text
	}
	return e
}

func (w walker) property(n *sitter.Node) *Property {
	p := &Property{Span: span(n), Text: w.text(n)}
	if n.Type() != "pair" {
		return p
	}
	if key := n.ChildByFieldName("key"); key != nil {
		switch key.Type() {
		case "property_identifier", "number":
			p.Key = w.text(key)
		case "string":
			if lit, ok := unquoteJS(w.text(key)); ok {
				p.Key = lit
			}
		}
	}
	if val := n.ChildByFieldName("value"); val != nil {
		p.Value = w.expr(val)
	}
	return p
}

// firstNamed returns the first named child that is not a comment.
func firstNamed(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "comment" {
			return c
		}
	}
	return nil
}
