package transform

import (
	"context"
	"fmt"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/classname"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/edit"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/extract"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/parser"
)

// Compiled is the result of compiling one module. It has not been
// published yet; see Session.Commit.
type Compiled struct {
	Path     string
	Source   []byte
	Code     string
	Rules    []extract.Rule
	Warnings []diag.Warning
}

// Changed reports whether the module produced CSS. A module without rules
// is passed through byte for byte.
func (c *Compiled) Changed() bool {
	return len(c.Rules) > 0
}

// CSS renders the module's rules. pretty selects the dev formatting.
func (c *Compiled) CSS(pretty bool) string {
	return extract.Stylesheet(c.Rules, pretty)
}

// Compile parses src, extracts literal inline styles and merges the
// generated class tokens. It does not touch any session state and is safe
// for concurrent use with distinct namers or a concurrency-safe namer.
func Compile(ctx context.Context, path string, src []byte, namer classname.Namer) (*Compiled, error) {
	doc, err := parser.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}

	c := &Compiled{Path: path, Source: src}
	var (
		edits    []edit.Edit
		replaced []parser.Span
	)
	for _, el := range doc.Elements {
		// Text inside an earlier replacement is copied verbatim, so
		// elements nested there cannot be edited.
		if within(replaced, el.Span.Start) {
			continue
		}

		res := extract.Element(path, el)
		if res.Warning != nil {
			c.Warnings = append(c.Warnings, *res.Warning)
		}
		if !res.Extracted() {
			continue
		}

		token := namer.Token(el.Tag)
		c.Rules = append(c.Rules, extract.Rule{ClassName: token, Declarations: res.Declarations})
		edits = append(edits, *res.Edit)
		replaced = append(replaced, parser.Span{Start: res.Edit.Start, End: res.Edit.End})

		classEdit, w := classname.Inject(path, el, token)
		if w != nil {
			c.Warnings = append(c.Warnings, *w)
			continue
		}
		edits = append(edits, *classEdit)
		if classEdit.End > classEdit.Start {
			replaced = append(replaced, parser.Span{Start: classEdit.Start, End: classEdit.End})
		}
	}

	if len(c.Rules) == 0 {
		c.Code = string(src)
		return c, nil
	}

	c.Code, err = edit.Apply(src, edits)
	if err != nil {
		return nil, fmt.Errorf("rewriting %s: %w", path, err)
	}
	return c, nil
}

func within(spans []parser.Span, offset int) bool {
	for _, s := range spans {
		if offset >= s.Start && offset < s.End {
			return true
		}
	}
	return false
}
