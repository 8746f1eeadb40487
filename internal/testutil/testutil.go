// Package testutil provides file system helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
// name may contain forward slashes.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTree writes every name -> content pair under dir.
func WriteTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		WriteFile(t, dir, name, files[name])
	}
}

// ReadFile returns the content of dir/name, failing the test if it is missing.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// Project writes a small component tree used by the command tests and
// returns its root.
func Project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteTree(t, dir, map[string]string{
		"src/App.tsx": `import { Hud } from "./Hud";

export function App() {
	return <main style={{ display: "flex", flexDirection: "column" }}><Hud /></main>;
}
`,
		"src/Hud.tsx": `export function Hud(props) {
	return <div class={props.cls} style={{ color: "red", top: props.y }}>hp</div>;
}
`,
		"src/Plain.jsx": `export const Plain = () => <span>plain</span>;
`,
		"src/util.ts": `export const add = (a: number, b: number) => a + b;
`,
		"node_modules/lib/Widget.jsx": `export const W = () => <b style={{ color: "blue" }} />;
`,
	})
	return dir
}
