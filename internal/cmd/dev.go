package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/registry"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/transform"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/watch"
)

type devFlags struct {
	outDir string
	once   bool
	stable bool
}

// NewDevCmd creates the dev command.
func NewDevCmd() *cobra.Command {
	var flags devFlags

	cmd := &cobra.Command{
		Use:   "dev [dir]",
		Short: "Transform a source tree and keep it updated",
		Long: `Transform every JSX/TSX module under a directory in dev mode and watch
it for changes.

Rewritten modules are written under --out-dir, and each virtual CSS module
is written next to them as <module>.css. When a module changes it is
recompiled, its virtual CSS module is refreshed and both ids are logged
for reload.

Arguments:
  dir    Source directory (default: current directory)

Examples:
  # Serve the current directory into ./.gfcss
  gfcss dev

  # Transform once without watching
  gfcss dev ./src --once`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDev(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.outDir, "out-dir", ".gfcss", "Directory for rewritten modules and virtual CSS")
	cmd.Flags().BoolVar(&flags.once, "once", false, "Exit after the initial transform")
	cmd.Flags().BoolVar(&flags.stable, "stable", false, "Number class tokens instead of randomizing them")

	return cmd
}

// devServer mirrors a dev session to disk.
type devServer struct {
	root    string
	outDir  string
	prefix  string
	session *transform.Session

	// out receives one status line per changed module.
	out io.Writer
}

func runDev(ctx context.Context, w, errW io.Writer, root string, flags devFlags) error {
	rc := GetResolvedConfig()
	warner := newWarner(errW, rc, transform.ModeDev)
	srv := &devServer{
		root:   root,
		outDir: flags.outDir,
		prefix: rc.VirtualPrefix.Value,
		out:    w,
		session: newSession(rc, sessionOptions{
			mode:      transform.ModeDev,
			root:      root,
			stable:    flags.stable,
			onWarning: warner.Warn,
		}),
	}

	if err := srv.initial(ctx); err != nil {
		return err
	}
	if flags.once {
		warner.Wait()
		return nil
	}

	ignore := rc.File.Watch.Ignore
	if rel, err := filepath.Rel(root, flags.outDir); err == nil && filepath.IsLocal(rel) {
		ignore = append(ignore, filepath.ToSlash(rel)+"/**")
	}
	w, err := watch.New(watch.Config{
		BaseDir:  root,
		Patterns: []string{srv.session.Pattern()},
		Ignore:   ignore,
		Debounce: rc.File.Debounce(),
		OnChange: srv.onChange,
	})
	if err != nil {
		return err
	}
	srv.root = w.BaseDir()

	output.Info("watching for changes", "dir", root)
	return w.Run(ctx)
}

// initial transforms every module once and writes all virtual CSS.
func (s *devServer) initial(ctx context.Context) error {
	found, err := s.session.Discover(s.root)
	if err != nil {
		return err
	}
	modules, err := relativeModules(s.root, found)
	if err != nil {
		return err
	}
	modules = withoutDir(s.root, s.outDir, modules)

	var errs []error
	changed := 0
	for _, m := range modules {
		out, err := s.transform(ctx, m)
		if err != nil {
			output.Error("transform failed", "module", m, "err", err)
			errs = append(errs, err)
			continue
		}
		if out.Changed {
			changed++
		}
	}
	if err := s.writeVirtual(); err != nil {
		return err
	}

	output.Info(fmt.Sprintf("transformed %d modules", len(modules)),
		"changed", changed, "failed", len(errs), "out", s.outDir)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// onChange handles one debounced batch of changed files.
func (s *devServer) onChange(ctx context.Context, changed []string) error {
	var errs []error
	for _, abs := range changed {
		rel, err := filepath.Rel(s.root, abs)
		if err != nil {
			continue
		}
		module := filepath.ToSlash(rel)
		log := output.ModuleLogger(module)

		ids, err := s.session.OnFileChanged(ctx, module)
		if err != nil {
			if errors.Is(err, oerrors.ErrNotFound) {
				log.Debug("module removed")
				continue
			}
			log.Error("hot update failed", "err", err)
			s.status(module, output.StatusFailed)
			errs = append(errs, err)
			continue
		}

		out, err := s.transform(ctx, module)
		if err != nil {
			log.Error("transform failed", "err", err)
			s.status(module, output.StatusFailed)
			errs = append(errs, err)
			continue
		}
		if out.Changed {
			s.status(module, output.StatusTransformed)
		} else {
			s.status(module, output.StatusUnchanged)
		}
		for _, id := range ids {
			public, _ := registry.PublicID(id)
			if err := s.writeCSS(public); err != nil {
				errs = append(errs, err)
			}
		}
		log.Info("reload", "modules", append([]string{module}, ids...))
	}
	return errors.Join(errs...)
}

func (s *devServer) status(module, status string) {
	if s.out == nil {
		return
	}
	fmt.Fprintln(s.out, output.FormatModuleLine(module, status))
}

// transform runs the transform hook on module and writes the result.
func (s *devServer) transform(ctx context.Context, module string) (transform.Output, error) {
	src, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(module)))
	if err != nil {
		return transform.Output{}, err
	}
	out, err := s.session.Transform(ctx, module, src)
	if err != nil {
		return transform.Output{}, err
	}
	if err := writeModule(s.outDir, module, out.Code); err != nil {
		return transform.Output{}, fmt.Errorf("writing %s: %w", module, err)
	}
	return out, nil
}

func (s *devServer) writeVirtual() error {
	for _, vm := range s.session.VirtualModules() {
		if err := s.writeCSS(vm.ID); err != nil {
			return err
		}
	}
	return nil
}

// writeCSS writes the virtual module id through the loader hook.
func (s *devServer) writeCSS(id string) error {
	internal, ok := s.session.ResolveVirtualID(id)
	if !ok {
		return nil
	}
	dst := virtualFileName(s.outDir, s.prefix, id)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, []byte(s.session.LoadVirtual(internal)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", id, err)
	}
	return nil
}
