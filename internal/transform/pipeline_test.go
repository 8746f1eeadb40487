package transform

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/classname"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/registry"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/testutil"
)

func TestDiscover(t *testing.T) {
	root := testutil.Project(t)
	s := NewSession(Options{})

	paths, err := s.Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "App.tsx"),
		filepath.Join(root, "src", "Hud.tsx"),
		filepath.Join(root, "src", "Plain.jsx"),
	}, paths)
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "**/*{.jsx,.tsx}", NewSession(Options{}).Pattern())
	assert.Equal(t, "**/*.jsx", NewSession(Options{Extensions: []string{".jsx"}}).Pattern())
}

func TestBatch_CommitsInPathOrder(t *testing.T) {
	root := testutil.Project(t)
	s := NewSession(Options{Mode: ModeBuild, Namer: &classname.SequenceNamer{}})

	paths, err := s.Discover(root)
	require.NoError(t, err)

	// Reverse the input; results come back sorted regardless.
	reversed := []string{paths[2], paths[1], paths[0]}
	res, err := s.Batch(context.Background(), reversed, BatchOptions{Workers: 3})
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Modules, 3)
	require.Len(t, res.Phases, 2)

	assert.Equal(t, paths, []string{res.Modules[0].Path, res.Modules[1].Path, res.Modules[2].Path})

	app, hud, plain := res.Modules[0], res.Modules[1], res.Modules[2]
	assert.True(t, app.Output.Changed)
	assert.Equal(t, 1, app.Rules)
	assert.True(t, hud.Output.Changed)
	assert.False(t, plain.Output.Changed)
	assert.Len(t, res.Changed(), 2)

	entries := s.chunks.Ordered([]string{paths[1], paths[0]})
	require.Len(t, entries, 2)
	assert.Equal(t, registry.NormalizePath(paths[0]), entries[0].Path)
	assert.Less(t, entries[0].Seq, entries[1].Seq)
	assert.Equal(t, len(entries[0].CSS), app.CSSBytes)
}

func TestBatch_SequentialNamerIsReproducible(t *testing.T) {
	root := t.TempDir()
	files := make(map[string]string)
	for i := 0; i < 40; i++ {
		files[fmt.Sprintf("src/m%02d.jsx", i)] = `export const M = () => <div style={{ color: "red" }}><span style={{ top: 1 }} /></div>;
`
	}
	testutil.WriteTree(t, root, files)

	run := func() []ModuleReport {
		s := NewSession(Options{Mode: ModeBuild, Namer: &classname.SequenceNamer{}})
		paths, err := s.Discover(root)
		require.NoError(t, err)
		res, err := s.Batch(context.Background(), paths, BatchOptions{Workers: 8})
		require.NoError(t, err)
		require.Empty(t, res.Errors)
		return res.Modules
	}

	first, second := run(), run()
	require.Len(t, first, 40)
	assert.Contains(t, first[0].Output.Code, `class="_div_00000001"`)
	assert.Contains(t, first[0].Output.Code, `class="_span_00000002"`)
	assert.Contains(t, first[39].Output.Code, `class="_div_00000079"`)
	for i := range first {
		assert.Equal(t, first[i].Output.Code, second[i].Output.Code, first[i].Path)
	}
}

func TestBatch_AggregatesFailures(t *testing.T) {
	root := testutil.Project(t)
	broken := testutil.WriteFile(t, root, "src/Broken.jsx", "export const X = <div style={{ color: 'red' }}")
	s := NewSession(Options{Mode: ModeBuild})

	paths, err := s.Discover(root)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	res, err := s.Batch(context.Background(), paths, BatchOptions{Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], oerrors.ErrParse)
	assert.Len(t, res.Changed(), 2, "other modules still compile")

	for _, m := range res.Modules {
		if m.Path == broken {
			assert.Error(t, m.Error)
		}
	}
}

func TestBatch_Canceled(t *testing.T) {
	root := testutil.Project(t)
	s := NewSession(Options{Mode: ModeBuild})
	paths, err := s.Discover(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Batch(ctx, paths, BatchOptions{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintTimingSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintTimingSummary(&buf, []PhaseRecord{
		{Name: "Parallel Compile", Details: "3 modules on 2 workers"},
		{Name: "Publish", Steps: []PhaseStep{{Name: "commit"}, {Name: "sort"}, {Name: "ignored"}}},
	})

	out := buf.String()
	assert.Contains(t, out, "1. Parallel Compile")
	assert.Contains(t, out, "2. Publish")
	assert.Contains(t, out, "commit: 0ns, sort: 0ns")
	assert.NotContains(t, out, "ignored")
	assert.Contains(t, out, "Pipeline complete")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500))
	assert.Equal(t, "12µs", formatDuration(12_000))
	assert.Equal(t, "34ms", formatDuration(34_000_000))
	assert.Equal(t, "1.50s", formatDuration(1_500_000_000))
}
