package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/bundle"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/transform"
)

// Output names used when no chunk graph is given.
const (
	defaultChunkFile = "index.js"
	defaultCSSAsset  = "gfcss.css"
)

type buildFlags struct {
	outDir    string
	chunks    string
	assetsDir string
	stable    bool
}

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Transform a source tree and emit CSS assets",
		Long: `Transform every JSX/TSX module under a directory in build mode.

Rewritten modules are written under --out-dir, mirroring the source tree.
The CSS of each module is appended to the CSS assets of the chunks that
contain it. Chunks are read from a chunk graph file (--chunks, YAML or
JSON) whose module paths are relative to dir; without one, all modules
form a single chunk whose CSS is written to gfcss.css.

Arguments:
  dir    Source directory (default: current directory)

Examples:
  # Build the current directory into ./dist
  gfcss build

  # Build against a bundler's chunk graph
  gfcss build ./src --chunks dist/chunks.yaml --assets-dir dist/assets`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runBuild(cmd.Context(), cmd.ErrOrStderr(), root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.outDir, "out-dir", "dist", "Directory for rewritten modules")
	cmd.Flags().StringVar(&flags.chunks, "chunks", "", "Chunk graph file (YAML or JSON)")
	cmd.Flags().StringVar(&flags.assetsDir, "assets-dir", "", "Directory holding the chunk CSS assets (default: --out-dir)")
	cmd.Flags().BoolVar(&flags.stable, "stable", false, "Number class tokens instead of randomizing them")

	return cmd
}

func runBuild(ctx context.Context, errW io.Writer, root string, flags buildFlags) error {
	rc := GetResolvedConfig()
	warner := newWarner(errW, rc, transform.ModeBuild)
	session := newSession(rc, sessionOptions{
		mode:      transform.ModeBuild,
		root:      root,
		stable:    flags.stable,
		onWarning: warner.Warn,
	})

	found, err := session.Discover(root)
	if err != nil {
		return err
	}
	modules, err := relativeModules(root, found)
	if err != nil {
		return err
	}
	modules = withoutDir(root, flags.outDir, modules)
	if len(modules) == 0 {
		output.Warn("no modules found", "dir", root, "pattern", session.Pattern())
		return nil
	}

	var result *transform.BatchResult
	err = output.RunWithSpinner(ctx, func() error {
		var batchErr error
		result, batchErr = session.Batch(ctx, modules, transform.BatchOptions{
			Workers: rc.WorkerCount(),
			Verbose: verboseFlag,
		})
		return batchErr
	}, output.WithTitle(fmt.Sprintf("Transforming %d modules...", len(modules))))
	if err != nil {
		return err
	}

	for _, m := range result.Modules {
		if m.Error != nil {
			continue
		}
		if err := writeModule(flags.outDir, m.Path, m.Output.Code); err != nil {
			return fmt.Errorf("writing %s: %w", m.Path, err)
		}
	}

	assets, err := finalizeBundle(session, modules, flags)
	if err != nil {
		return err
	}

	output.Println(output.RenderSummaryTable(summarize(result)))
	for _, name := range assets {
		output.Println(output.FormatCheckmark("wrote " + output.StyleNoun.Render(name)))
	}
	if verboseFlag {
		transform.PrintTimingSummary(os.Stderr, result.Phases)
	}
	warner.Wait()

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			output.Error("transform failed", "err", e)
		}
		joined := errors.Join(result.Errors...)
		return &oerrors.ExitError{
			Err:     fmt.Errorf("%d of %d modules failed: %w", len(result.Errors), len(modules), joined),
			Code:    oerrors.ExitCodeFromError(joined),
			Printed: true,
		}
	}
	return nil
}

// finalizeBundle appends recorded CSS to the chunk assets and writes the
// modified ones. It returns the written asset names.
func finalizeBundle(session *transform.Session, modules []string, flags buildFlags) ([]string, error) {
	assetsDir := flags.assetsDir
	if assetsDir == "" {
		assetsDir = flags.outDir
	}

	graph, err := loadGraph(modules, flags.chunks)
	if err != nil {
		return nil, err
	}
	if flags.chunks == "" {
		graph.SetAsset(defaultCSSAsset, "")
	} else if err := graph.LoadAssets(assetsDir); err != nil {
		return nil, err
	}
	if err := session.OnBundleFinalized(graph); err != nil {
		return nil, err
	}
	return graph.WriteAssets(assetsDir)
}

// loadGraph reads the chunk graph at path, or puts every module in one
// chunk when path is empty.
func loadGraph(modules []string, path string) (*bundle.ChunkGraph, error) {
	if path != "" {
		return bundle.Load(path)
	}
	return &bundle.ChunkGraph{
		Chunks: []bundle.Chunk{{
			File:    defaultChunkFile,
			Modules: slices.Clone(modules),
			CSS:     []string{defaultCSSAsset},
		}},
	}, nil
}

func summarize(result *transform.BatchResult) []output.ModuleSummary {
	rows := make([]output.ModuleSummary, 0, len(result.Modules))
	for _, m := range result.Modules {
		row := output.ModuleSummary{
			Path:     filepath.ToSlash(m.Path),
			Rules:    m.Rules,
			Warnings: len(m.Warnings),
			CSSBytes: m.CSSBytes,
		}
		switch {
		case m.Error != nil:
			row.Status = output.StatusFailed
		case len(m.Warnings) > 0:
			row.Status = output.StatusWarned
		case m.Output.Changed:
			row.Status = output.StatusTransformed
		default:
			row.Status = output.StatusUnchanged
		}
		rows = append(rows, row)
	}
	return rows
}
