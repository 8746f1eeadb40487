package classname

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/edit"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/parser"
)

func firstElement(t *testing.T, src string) *parser.Element {
	t.Helper()
	doc, err := parser.Parse(context.Background(), "View.jsx", []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, doc.Elements)
	return doc.Elements[0]
}

func TestInject_MergeMatrix(t *testing.T) {
	const tok = "_div_abc12345"

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "no class attribute",
			src:  `const a = <div id="x">hi</div>;`,
			want: `const a = <div id="x" class="_div_abc12345">hi</div>;`,
		},
		{
			name: "no attributes",
			src:  `const a = <div />;`,
			want: `const a = <div class="_div_abc12345" />;`,
		},
		{
			name: "double quoted literal",
			src:  `const a = <div class="foo" />;`,
			want: `const a = <div class="foo _div_abc12345" />;`,
		},
		{
			name: "single quoted literal",
			src:  `const a = <div class='foo bar' />;`,
			want: `const a = <div class='foo bar _div_abc12345' />;`,
		},
		{
			name: "empty literal",
			src:  `const a = <div class="" />;`,
			want: `const a = <div class="_div_abc12345" />;`,
		},
		{
			name: "expression",
			src:  `const a = <div class={props.cls} />;`,
			want: `const a = <div class={(props.cls) + " " + "_div_abc12345"} />;`,
		},
		{
			name: "empty expression",
			src:  `const a = <div class={} />;`,
			want: `const a = <div class={(undefined) + " " + "_div_abc12345"} />;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := firstElement(t, tt.src)
			e, w := Inject("View.jsx", el, tok)
			require.Nil(t, w)
			require.NotNil(t, e)

			out, err := edit.Apply([]byte(tt.src), []edit.Edit{*e})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInject_Unsupported(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		detail string
	}{
		{name: "element value", src: `const a = <div class=<b /> />;`, detail: "element"},
		{name: "fragment value", src: `const a = <div class=<></> />;`, detail: "fragment"},
		{name: "valueless", src: `const a = <div class />;`, detail: "no value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := firstElement(t, tt.src)
			_, isUnsupported := Classify(el).(Unsupported)
			assert.True(t, isUnsupported)

			e, w := Inject("View.jsx", el, "_div_x")
			assert.Nil(t, e)
			require.NotNil(t, w)
			assert.Equal(t, diag.KindUnsupportedClass, w.Kind)
			assert.Equal(t, "div", w.Tag)
			assert.Equal(t, tt.detail, w.Detail)
			assert.Equal(t, "View.jsx:1:11", w.Location())
		})
	}
}

func TestClassify(t *testing.T) {
	assert.IsType(t, Absent{}, Classify(firstElement(t, `const a = <p />;`)))
	assert.IsType(t, Literal{}, Classify(firstElement(t, `const a = <p class="a" />;`)))
	assert.IsType(t, Expression{}, Classify(firstElement(t, `const a = <p class={a} />;`)))
}

func TestRandomNamer(t *testing.T) {
	var n RandomNamer
	re := regexp.MustCompile(`^_Menu-Item_[0-9a-f]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := n.Token("Menu.Item")
		assert.Regexp(t, re, tok)
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}

func TestSequenceNamer(t *testing.T) {
	n := &SequenceNamer{}
	assert.Equal(t, "_div_00000001", n.Token("div"))
	assert.Equal(t, "_svg-rect_00000002", n.Token("svg:rect"))

	assert.Implements(t, (*Sequential)(nil), n)
	_, random := Namer(RandomNamer{}).(Sequential)
	assert.False(t, random)
}
