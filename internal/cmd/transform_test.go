package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/testutil"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/transform"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestTransformCmd_DevPrintsImportAndClass(t *testing.T) {
	dir := testutil.Project(t)
	path := filepath.Join(dir, "src", "App.tsx")

	out, err := execute(t, "transform", path, "--stable")
	require.NoError(t, err)

	assert.Contains(t, out, `import "virtual:gfcss/`)
	assert.Contains(t, out, `App.tsx.css";`)
	assert.Contains(t, out, `<main style={{}} class="_main_00000001">`)
}

func TestTransformCmd_JSONWithCSS(t *testing.T) {
	dir := testutil.Project(t)
	path := filepath.Join(dir, "src", "Hud.tsx")

	out, err := execute(t, "transform", path, "--stable", "--css", "-o", "json")
	require.NoError(t, err)

	var doc transformDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "dev", doc.Mode)
	assert.True(t, doc.Changed)
	assert.Equal(t, "._div_00000001 { color: red; }\n", doc.CSS)
	assert.Contains(t, doc.Code, `class={(props.cls) + " " + "_div_00000001"}`)
	assert.Contains(t, doc.Code, `style={{ top: props.y }}`)
	assert.NotEmpty(t, doc.VirtualID)
	assert.Empty(t, doc.Warnings)
}

func TestTransformCmd_BuildModeYAML(t *testing.T) {
	dir := testutil.Project(t)
	path := filepath.Join(dir, "src", "App.tsx")

	out, err := execute(t, "transform", path, "--mode", "build", "--stable", "--css", "-o", "yaml")
	require.NoError(t, err)

	var doc transformDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "build", doc.Mode)
	assert.True(t, doc.Changed)
	assert.Empty(t, doc.VirtualID)
	assert.NotContains(t, doc.Code, "virtual:gfcss")
	assert.Contains(t, doc.Code, `import { Hud } from "./Hud";`)
	assert.Equal(t, "._main_00000001{display:flex;flex-direction:column;}", doc.CSS)
}

func TestTransformCmd_ReportsWarnings(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "Spread.jsx",
		"export const S = (p) => <div {...p} style={{ color: \"red\" }} />;\n")

	out, stderr, err := executeIn(t, config.EnvironmentProduction, "transform", path, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "spread-style"), stderr)

	var doc transformDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.False(t, doc.Changed)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, "spread-style", doc.Warnings[0].Kind)
	assert.Contains(t, doc.Warnings[0].Location, "Spread.jsx:1:")
}

func TestTransformCmd_IneligiblePassesThrough(t *testing.T) {
	dir := testutil.Project(t)
	path := filepath.Join(dir, "src", "util.ts")

	out, err := execute(t, "transform", path)
	require.NoError(t, err)
	assert.Equal(t, testutil.ReadFile(t, dir, "src/util.ts"), out)
}

func TestTransformCmd_Errors(t *testing.T) {
	dir := testutil.Project(t)
	broken := testutil.WriteFile(t, dir, "src/Broken.jsx", "const a = <div style={{ color: }} ;\n")

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{name: "missing file", args: []string{"transform", filepath.Join(dir, "nope.jsx")}, exitCode: oerrors.ExitNotFound},
		{name: "syntax error", args: []string{"transform", broken}, exitCode: oerrors.ExitParseError},
		{name: "bad format", args: []string{"transform", broken, "-o", "toml"}, exitCode: oerrors.ExitGeneralError},
		{name: "bad mode", args: []string{"transform", broken, "--mode", "prod"}, exitCode: oerrors.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		cfg     string
		want    transform.Mode
		wantErr bool
	}{
		{name: "default", want: transform.ModeDev},
		{name: "config", cfg: "build", want: transform.ModeBuild},
		{name: "flag wins", flag: "dev", cfg: "build", want: transform.ModeDev},
		{name: "unknown", flag: "hot", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			rc := config.ResolveAll(config.ResolveAllOptions{Config: &config.Config{Mode: tt.cfg}})

			got, err := resolveMode(rc, tt.flag, transform.ModeDev)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
