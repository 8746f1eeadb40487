package parser

// Span is a half-open byte range [Start, End) into the module source.
type Span struct {
	Start int
	End   int
}

// Position is a 1-based line/column location.
type Position struct {
	Line   int
	Column int
}

// Document is the markup view of one parsed source module. It holds no
// reference to the underlying syntax tree, which is released by Parse.
type Document struct {
	Path     string
	Source   []byte
	Elements []*Element
}

// Element is an opening or self-closing markup element.
type Element struct {
	Tag        string
	Pos        Position
	Span       Span
	Attributes []*Attribute

	// InsertAt is the offset where a new attribute can be appended: the end
	// of the last attribute, or the end of the tag name.
	InsertAt int
}

// Attribute returns the first plain attribute named name, or nil.
func (e *Element) Attribute(name string) *Attribute {
	for _, a := range e.Attributes {
		if a.Kind == AttributePlain && a.Name == name {
			return a
		}
	}
	return nil
}

// Spread returns the first spread attribute, or nil.
func (e *Element) Spread() *Attribute {
	for _, a := range e.Attributes {
		if a.Kind == AttributeSpread {
			return a
		}
	}
	return nil
}

// AttributeKind distinguishes name=value attributes from {...spread} ones.
type AttributeKind int

const (
	AttributePlain AttributeKind = iota
	AttributeSpread
)

// Attribute is one entry of an element's attribute list.
type Attribute struct {
	Kind AttributeKind
	Name string
	Span Span

	// Text is the raw attribute source; for spreads it is the spread
	// expression, e.g. "...rest".
	Text string

	// Value is nil for valueless attributes and spreads.
	Value *Value
}

// ValueKind is the syntactic shape of an attribute value.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueExpression
	ValueElement
	ValueFragment
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueExpression:
		return "expression"
	case ValueElement:
		return "element"
	case ValueFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Value is an attribute value.
type Value struct {
	Kind ValueKind
	Span Span
	Text string

	// Quote and Literal are set for ValueString; Literal excludes the quotes.
	Quote   byte
	Literal string

	// Expr is the contained expression of a ValueExpression. It is nil for an
	// empty container such as {} or {/* comment */}.
	Expr *Expr
}

// ExprKind classifies an expression by what the transform can know about it
// statically.
type ExprKind int

const (
	ExprOther ExprKind = iota
	ExprObject
	ExprString
	ExprNumber
)

// Expr is an expression node. Parentheses around it are already unwrapped.
type Expr struct {
	Kind ExprKind
	Span Span
	Text string

	// Literal is the decoded value of a string, or the source text of a number.
	Literal string

	// Properties lists the members of an object literal in source order.
	Properties []*Property
}

// Property is one member of an object literal.
type Property struct {
	Span Span
	Text string

	// Key is the static key name. It is empty for computed keys, shorthand
	// properties, spreads and methods.
	Key string

	// Value is nil unless the member is a key: value pair.
	Value *Expr
}
