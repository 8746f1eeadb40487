package extract

import "strings"

// Declaration is one CSS property with its value. Property is kebab-case.
type Declaration struct {
	Property string
	Value    string
}

// Rule is the CSS generated for one element. It is immutable once built.
type Rule struct {
	ClassName    string
	Declarations []Declaration
}

// Body renders the declarations. Compact output is "key:value;" per
// declaration; pretty output adds a space after every colon and semicolon.
func (r Rule) Body(pretty bool) string {
	var b strings.Builder
	for _, d := range r.Declarations {
		b.WriteString(d.Property)
		b.WriteByte(':')
		if pretty {
			b.WriteByte(' ')
		}
		b.WriteString(d.Value)
		b.WriteByte(';')
		if pretty {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// CSS renders the rule as a class selector block.
func (r Rule) CSS(pretty bool) string {
	if pretty {
		return "." + r.ClassName + " { " + r.Body(true) + "}\n"
	}
	return "." + r.ClassName + "{" + r.Body(false) + "}"
}

// Stylesheet concatenates rules in order.
func Stylesheet(rules []Rule, pretty bool) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(r.CSS(pretty))
	}
	return b.String()
}
