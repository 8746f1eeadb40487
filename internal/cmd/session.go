package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/classname"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/transform"
)

// newWarner builds the warning printer writing to w. Build mode counts as
// production: warnings are never repeated during a build.
func newWarner(w io.Writer, rc *config.ResolvedConfig, mode transform.Mode) *output.Warner {
	return output.NewWarner(output.WarnerOptions{
		Writer:      w,
		Production:  rc.Production() || mode == transform.ModeBuild,
		RepeatDelay: rc.File.RepeatDelay(),
	})
}

// sessionOptions holds what commands vary when opening a session.
type sessionOptions struct {
	mode transform.Mode

	// root, when set, makes module paths relative to it.
	root string

	// stable numbers class tokens instead of randomizing them.
	stable bool

	onWarning func(diag.Warning)
}

// newSession opens a transform session configured from rc.
func newSession(rc *config.ResolvedConfig, opts sessionOptions) *transform.Session {
	readFile := os.ReadFile
	if opts.root != "" {
		root := opts.root
		readFile = func(path string) ([]byte, error) {
			return os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
		}
	}
	var namer classname.Namer
	if opts.stable {
		namer = &classname.SequenceNamer{}
	}
	return transform.NewSession(transform.Options{
		Mode:          opts.mode,
		Extensions:    rc.File.Extensions,
		VirtualPrefix: rc.VirtualPrefix.Value,
		Namer:         namer,
		ReadFile:      readFile,
		OnWarning:     opts.onWarning,
	})
}

// relativeModules converts paths under root to slash-separated module ids.
func relativeModules(root string, paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil, err
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out, nil
}

// writeModule writes code for module under dir.
func writeModule(dir, module, code string) error {
	dst := filepath.Join(dir, filepath.FromSlash(module))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(code), 0o644)
}

// virtualFileName maps a virtual module id to a file path under dir.
func virtualFileName(dir, prefix, id string) string {
	return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(id, prefix)))
}

// withoutDir drops modules under dir, so generated output is never read
// back as source.
func withoutDir(root, dir string, modules []string) []string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return modules
	}
	prefix := filepath.ToSlash(rel) + "/"
	out := modules[:0:0]
	for _, m := range modules {
		if !strings.HasPrefix(m, prefix) {
			out = append(out, m)
		}
	}
	return out
}
