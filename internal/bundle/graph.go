// Package bundle models the chunk graph a bundler emits once the module
// graph is known: which source modules ended up in which script chunk, and
// which CSS assets each chunk pulls in.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
)

// scriptExts are the chunk file extensions treated as script chunks.
var scriptExts = map[string]bool{".js": true, ".mjs": true, ".cjs": true}

// Chunk is one bundler output unit.
type Chunk struct {
	// File is the chunk's output file name.
	File string `json:"file" validate:"required"`

	// Modules are the source module paths bundled into the chunk.
	Modules []string `json:"modules,omitempty"`

	// CSS are the CSS asset file names the chunk imports.
	CSS []string `json:"css,omitempty" validate:"dive,required"`
}

// IsScript reports whether the chunk is a script chunk.
func (c Chunk) IsScript() bool {
	return scriptExts[strings.ToLower(filepath.Ext(c.File))]
}

// Asset is an emitted CSS asset.
type Asset struct {
	FileName string
	Source   string

	// Modified is set once CSS has been appended.
	Modified bool
}

// Append adds css to the end of the asset, separated from existing
// content by a newline.
func (a *Asset) Append(css string) {
	if a.Source != "" && !strings.HasSuffix(a.Source, "\n") {
		a.Source += "\n"
	}
	a.Source += css
	a.Modified = true
}

// ChunkGraph is the finalized bundle.
type ChunkGraph struct {
	Chunks []Chunk `json:"chunks" validate:"dive"`

	// Assets holds the CSS assets by file name. It is not part of the
	// manifest; see LoadAssets.
	Assets map[string]*Asset `json:"-"`
}

// Parse decodes a YAML or JSON chunk graph manifest.
func Parse(data []byte) (*ChunkGraph, error) {
	var g ChunkGraph
	if err := yaml.UnmarshalStrict(data, &g); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "chunks", "expected a list of {file, modules, css} entries")
	}
	if err := config.Validator().Struct(&g); err != nil {
		return nil, config.ConvertValidationError(err)
	}
	g.Assets = make(map[string]*Asset)
	return &g, nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (*ChunkGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(fmt.Sprintf("chunk graph %s does not exist", path), path, "pass the manifest written by the bundler with --chunks")
		}
		return nil, fmt.Errorf("reading chunk graph %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("chunk graph %s: %w", path, err)
	}
	return g, nil
}

// ScriptChunks returns the script chunks in manifest order.
func (g *ChunkGraph) ScriptChunks() []Chunk {
	var out []Chunk
	for _, c := range g.Chunks {
		if c.IsScript() {
			out = append(out, c)
		}
	}
	return out
}

// CSSFiles returns every CSS asset name referenced by a chunk, sorted.
func (g *ChunkGraph) CSSFiles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range g.Chunks {
		for _, f := range c.CSS {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Asset returns the asset named fileName.
func (g *ChunkGraph) Asset(fileName string) (*Asset, bool) {
	a, ok := g.Assets[fileName]
	return a, ok
}

// SetAsset registers an asset with the given content.
func (g *ChunkGraph) SetAsset(fileName, source string) {
	if g.Assets == nil {
		g.Assets = make(map[string]*Asset)
	}
	g.Assets[fileName] = &Asset{FileName: fileName, Source: source}
}

// LoadAssets reads every referenced CSS asset from dir. Missing assets are
// registered empty; the bundler may emit them only once CSS exists.
func (g *ChunkGraph) LoadAssets(dir string) error {
	for _, name := range g.CSSFiles() {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading asset %s: %w", name, err)
		}
		g.SetAsset(name, string(data))
	}
	return nil
}

// WriteAssets writes every modified asset under dir and returns their
// names, sorted.
func (g *ChunkGraph) WriteAssets(dir string) ([]string, error) {
	var written []string
	for _, name := range g.CSSFiles() {
		a, ok := g.Assets[name]
		if !ok || !a.Modified {
			continue
		}
		dst := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", name, err)
		}
		if err := os.WriteFile(dst, []byte(a.Source), 0o644); err != nil {
			return written, fmt.Errorf("writing asset %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}
