package edit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	src := []byte(`<div style={{ color: "red" }}>`)

	tests := []struct {
		name  string
		edits []Edit
		want  string
	}{
		{
			name: "no edits returns source",
			want: `<div style={{ color: "red" }}>`,
		},
		{
			name:  "replace object",
			edits: []Edit{Replace(12, 28, "{}")},
			want:  `<div style={{}}>`,
		},
		{
			name:  "insert after last attribute",
			edits: []Edit{Insert(29, ` class="_div_x"`)},
			want:  `<div style={{ color: "red" }} class="_div_x">`,
		},
		{
			name: "edits given out of order",
			edits: []Edit{
				Insert(29, ` class="_div_x"`),
				Replace(12, 28, "{}"),
			},
			want: `<div style={{}} class="_div_x">`,
		},
		{
			name: "insertions at one offset keep order",
			edits: []Edit{
				Insert(0, "a"),
				Insert(0, "b"),
			},
			want: `ab<div style={{ color: "red" }}>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(src, tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_RejectsOverlap(t *testing.T) {
	_, err := Apply([]byte("abcdef"), []Edit{Replace(0, 3, "x"), Replace(2, 4, "y")})

	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, 2, overlap.B.Start)
}

func TestApply_RejectsOutOfRange(t *testing.T) {
	_, err := Apply([]byte("abc"), []Edit{Replace(2, 9, "x")})
	assert.Error(t, err)
}
