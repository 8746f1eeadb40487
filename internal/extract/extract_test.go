package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/edit"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/parser"
)

func visitFirst(t *testing.T, src string) (Result, string) {
	t.Helper()
	doc, err := parser.Parse(context.Background(), "Panel.tsx", []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, doc.Elements)

	res := Element(doc.Path, doc.Elements[0])
	if res.Edit == nil {
		return res, src
	}
	out, err := edit.Apply(doc.Source, []edit.Edit{*res.Edit})
	require.NoError(t, err)
	return res, out
}

func TestElement_LiteralRoundTrip(t *testing.T) {
	res, out := visitFirst(t, `const a = <div style={{ color: "red", width: 10 }} />;`)

	assert.Equal(t, []Declaration{
		{Property: "color", Value: "red"},
		{Property: "width", Value: "10"},
	}, res.Declarations)
	assert.Nil(t, res.Warning)
	assert.Equal(t, `const a = <div style={{}} />;`, out)

	rule := Rule{ClassName: "_div_x", Declarations: res.Declarations}
	assert.Equal(t, "color:red;width:10;", rule.Body(false))
}

func TestElement_DynamicPreservation(t *testing.T) {
	res, out := visitFirst(t, `const a = <div style={{ color: "red", top: someExpression }} />;`)

	require.Len(t, res.Declarations, 1)
	assert.Equal(t, Declaration{Property: "color", Value: "red"}, res.Declarations[0])
	assert.Equal(t, `const a = <div style={{ top: someExpression }} />;`, out)
}

func TestElement_KeptPropertiesKeepOrder(t *testing.T) {
	_, out := visitFirst(t, `const a = <div style={{ left: x, color: 'blue', ...extra, top: y() }} />;`)

	assert.Equal(t, `const a = <div style={{ left: x, ...extra, top: y() }} />;`, out)
}

func TestElement_StaticKeyForms(t *testing.T) {
	res, _ := visitFirst(t, `const a = <div style={{ "font-size": "12px", zIndex: 3, [k]: "1px" }} />;`)

	assert.Equal(t, []Declaration{
		{Property: "font-size", Value: "12px"},
		{Property: "z-index", Value: "3"},
	}, res.Declarations)
}

func TestElement_SpreadSkip(t *testing.T) {
	src := `const a = <div {...rest} style={{ color: "red" }} />;`
	res, out := visitFirst(t, src)

	assert.False(t, res.Extracted())
	assert.Nil(t, res.Edit)
	require.NotNil(t, res.Warning)
	assert.Equal(t, diag.KindSpreadStyle, res.Warning.Kind)
	assert.Equal(t, "div", res.Warning.Tag)
	assert.Equal(t, "...rest", res.Warning.Detail)
	assert.Equal(t, 1, res.Warning.Line)
	assert.Equal(t, src, out)
}

func TestElement_NoOp(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "no style", src: `const a = <div class="x" />;`},
		{name: "string style", src: `const a = <div style="color: red" />;`},
		{name: "identifier style", src: `const a = <div style={styles} />;`},
		{name: "only dynamic", src: `const a = <div style={{ top: y, left: x + 1 }} />;`},
		{name: "template literal", src: "const a = <div style={{ color: `red` }} />;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, out := visitFirst(t, tt.src)
			assert.False(t, res.Extracted())
			assert.Nil(t, res.Warning)
			assert.Equal(t, tt.src, out)
		})
	}
}

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "color", want: "color"},
		{in: "backgroundColor", want: "background-color"},
		{in: "zIndex", want: "z-index"},
		{in: "borderTopLeftRadius", want: "border-top-left-radius"},
		{in: "WebkitTransform", want: "-webkit-transform"},
		{in: "font-size", want: "font-size"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, KebabCase(tt.in))
		})
	}
}

func TestRule_CSS(t *testing.T) {
	r := Rule{
		ClassName: "_div_ab12cd34",
		Declarations: []Declaration{
			{Property: "color", Value: "red"},
			{Property: "width", Value: "10"},
		},
	}

	assert.Equal(t, "._div_ab12cd34{color:red;width:10;}", r.CSS(false))
	assert.Equal(t, "._div_ab12cd34 { color: red; width: 10; }\n", r.CSS(true))
	assert.Equal(t, "._div_ab12cd34{color:red;width:10;}._div_ab12cd34{color:red;width:10;}",
		Stylesheet([]Rule{r, r}, false))
}
