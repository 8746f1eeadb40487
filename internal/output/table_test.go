package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummaryTable(t *testing.T) {
	out := stripAnsi(RenderSummaryTable([]ModuleSummary{
		{Path: "src/Hud.tsx", Status: StatusTransformed, Rules: 2, CSSBytes: 1500},
		{Path: "src/Plain.jsx", Status: StatusUnchanged},
	}))

	for _, want := range []string{"MODULE", "STATUS", "RULES", "CSS", "src/Hud.tsx", "transformed", "1.5 kB", "src/Plain.jsx", "-"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "-", FormatSize(0))
	assert.Equal(t, "42 B", FormatSize(42))
	assert.Equal(t, "2.0 kB", FormatSize(2000))
}
