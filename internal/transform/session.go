// Package transform runs the inline style transform for a compilation
// session and exposes the lifecycle hooks a bundler host calls.
package transform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/bundle"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/classname"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/registry"
)

// Mode selects how generated CSS is published.
type Mode string

const (
	// ModeDev publishes CSS as virtual modules imported by the transformed
	// module and supports hot updates.
	ModeDev Mode = "dev"

	// ModeBuild records CSS per module and appends it to chunk CSS assets
	// once the bundle is finalized.
	ModeBuild Mode = "build"
)

// DefaultExtensions are the module extensions transformed by default.
var DefaultExtensions = []string{".jsx", ".tsx"}

// Options configures a Session.
type Options struct {
	Mode Mode

	// Extensions lists eligible module extensions. Default: .jsx, .tsx.
	Extensions []string

	// VirtualPrefix starts every virtual module id.
	// Default: registry.DefaultPrefix.
	VirtualPrefix string

	// Namer produces class tokens. Default: classname.RandomNamer.
	Namer classname.Namer

	// ReadFile reads a changed module in OnFileChanged. Default: os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	// OnWarning receives every warning of a committed module.
	OnWarning func(diag.Warning)
}

// Output is the result of the transform hook.
type Output struct {
	Code    string
	Changed bool
}

// Session owns the registry of one compilation session. Sessions never
// share state; all methods are safe for concurrent use.
type Session struct {
	opts      Options
	publisher registry.Publisher
	virtual   *registry.VirtualModules
	chunks    *registry.ChunkCSS
	pending   *registry.PendingStore
	changes   singleflight.Group
}

// NewSession creates a session. The publisher is chosen from opts.Mode.
func NewSession(opts Options) *Session {
	if opts.Mode == "" {
		opts.Mode = ModeDev
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if opts.VirtualPrefix == "" {
		opts.VirtualPrefix = registry.DefaultPrefix
	}
	if opts.Namer == nil {
		opts.Namer = classname.RandomNamer{}
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}

	s := &Session{
		opts:    opts,
		virtual: registry.NewVirtualModules(),
		chunks:  registry.NewChunkCSS(),
		pending: registry.NewPendingStore(),
	}
	if opts.Mode == ModeBuild {
		s.publisher = &registry.ChunkAssociationPublisher{Chunks: s.chunks}
	} else {
		s.publisher = &registry.VirtualModulePublisher{Prefix: opts.VirtualPrefix, Modules: s.virtual}
	}
	return s
}

// Mode returns the session mode.
func (s *Session) Mode() Mode {
	return s.opts.Mode
}

// Eligible reports whether path is a module the transform handles: one of
// the configured extensions, outside node_modules, and not a virtual id.
func (s *Session) Eligible(path string) bool {
	if strings.HasPrefix(path, "\x00") || strings.HasPrefix(path, s.opts.VirtualPrefix) {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" {
			return false
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.opts.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Compile compiles one module with the session's namer without publishing.
func (s *Session) Compile(ctx context.Context, path string, src []byte) (*Compiled, error) {
	return Compile(ctx, path, src, s.opts.Namer)
}

// Commit reports c's warnings and publishes its CSS. Modules without rules
// publish nothing and come back unchanged.
func (s *Session) Commit(c *Compiled) Output {
	s.warn(c.Warnings)
	if !c.Changed() {
		return Output{Code: c.Code}
	}

	code := c.Code
	if id := s.publisher.Publish(c.Path, c.CSS(s.opts.Mode == ModeDev)); id != "" {
		code = ensureImport(code, id)
	}
	return Output{Code: code, Changed: true}
}

// Transform is the module transform hook. Ineligible modules and modules
// without extractable styles pass through unchanged. A pending hot update
// for path is consumed instead of recompiling.
func (s *Session) Transform(ctx context.Context, path string, src []byte) (Output, error) {
	if !s.Eligible(path) {
		return Output{Code: string(src)}, nil
	}

	if s.opts.Mode == ModeDev {
		if code, ok := s.pending.Take(path); ok {
			return Output{Code: ensureImport(code, s.virtualID(path)), Changed: true}, nil
		}
	}

	c, err := s.Compile(ctx, path, src)
	if err != nil {
		return Output{}, err
	}
	return s.Commit(c), nil
}

// ResolveVirtualID is the module id resolution hook. It returns the
// internal id for a registered virtual id. Build sessions never resolve.
func (s *Session) ResolveVirtualID(id string) (string, bool) {
	if s.opts.Mode == ModeBuild || !s.virtual.Has(id) {
		return "", false
	}
	return registry.InternalID(id), true
}

// LoadVirtual is the module loader hook. It returns the CSS stored for an
// internal id, or "" when unknown.
func (s *Session) LoadVirtual(internalID string) string {
	id, ok := registry.PublicID(internalID)
	if !ok {
		return ""
	}
	css, _ := s.virtual.Get(id)
	return css
}

// VirtualModules returns every registered virtual module, sorted by id.
func (s *Session) VirtualModules() []registry.VirtualModule {
	return s.virtual.List()
}

// OnBundleFinalized is the bundle generation hook. For every script chunk
// it appends the CSS recorded for the chunk's modules to each CSS asset the
// chunk imports. Each module contributes once per asset, in processing
// order. Missing assets are reported after all others are updated.
func (s *Session) OnBundleFinalized(graph *bundle.ChunkGraph) error {
	if s.opts.Mode != ModeBuild {
		return fmt.Errorf("bundle finalization in %s mode: %w", s.opts.Mode, oerrors.ErrWrongMode)
	}

	contributed := make(map[string]map[string]bool)
	var errs []error
	for _, chunk := range graph.ScriptChunks() {
		entries := s.chunks.Ordered(chunk.Modules)
		if len(entries) == 0 {
			continue
		}
		for _, name := range chunk.CSS {
			asset, ok := graph.Asset(name)
			if !ok {
				errs = append(errs, oerrors.NewNotFoundError(
					fmt.Sprintf("CSS asset %s imported by chunk %s was not emitted", name, chunk.File),
					chunk.File, "load the chunk's assets before finalizing"))
				continue
			}
			if contributed[name] == nil {
				contributed[name] = make(map[string]bool)
			}
			for _, e := range entries {
				if contributed[name][e.Path] {
					continue
				}
				contributed[name][e.Path] = true
				asset.Append(e.CSS)
			}
		}
	}
	return errors.Join(errs...)
}

// OnFileChanged is the hot update hook. It recompiles path and, when the
// module still produces CSS, refreshes its virtual module, stores the new
// code for the next Transform of path and returns the internal virtual id
// to reload alongside the module. When the module no longer produces CSS
// nothing is returned and its previous virtual module is kept, so the page
// does not flash unstyled.
func (s *Session) OnFileChanged(ctx context.Context, path string) ([]string, error) {
	if s.opts.Mode != ModeDev {
		return nil, fmt.Errorf("hot update in %s mode: %w", s.opts.Mode, oerrors.ErrWrongMode)
	}
	if !s.Eligible(path) {
		return nil, nil
	}

	v, err, _ := s.changes.Do(registry.NormalizePath(path), func() (interface{}, error) {
		src, err := s.opts.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, oerrors.NewNotFoundError(fmt.Sprintf("changed module %s no longer exists", path), path, "")
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		c, err := s.Compile(ctx, path, src)
		if err != nil {
			return nil, err
		}
		s.warn(c.Warnings)
		if !c.Changed() {
			return []string(nil), nil
		}

		id := s.publisher.Publish(path, c.CSS(true))
		s.pending.Put(path, ensureImport(c.Code, id))
		return []string{registry.InternalID(id)}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (s *Session) virtualID(path string) string {
	return registry.VirtualID(s.opts.VirtualPrefix, path)
}

func (s *Session) warn(ws []diag.Warning) {
	if s.opts.OnWarning == nil {
		return
	}
	for _, w := range ws {
		s.opts.OnWarning(w)
	}
}

// ImportStatement returns the side effect import of a virtual module.
func ImportStatement(virtualID string) string {
	return `import "` + virtualID + `";`
}

// ensureImport prepends the import of virtualID unless code already
// imports it.
func ensureImport(code, virtualID string) string {
	stmt := ImportStatement(virtualID)
	if strings.Contains(code, stmt) {
		return code
	}
	return stmt + "\n" + code
}
