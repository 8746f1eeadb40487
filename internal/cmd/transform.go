package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/diag"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/registry"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/transform"
)

// transformDocument is the json/yaml rendering of a single transform.
type transformDocument struct {
	Path      string            `json:"path" yaml:"path"`
	Mode      string            `json:"mode" yaml:"mode"`
	Changed   bool              `json:"changed" yaml:"changed"`
	Code      string            `json:"code" yaml:"code"`
	CSS       string            `json:"css,omitempty" yaml:"css,omitempty"`
	VirtualID string            `json:"virtualId,omitempty" yaml:"virtualId,omitempty"`
	Warnings  []warningDocument `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type warningDocument struct {
	Kind     string `json:"kind" yaml:"kind"`
	Location string `json:"location" yaml:"location"`
	Message  string `json:"message" yaml:"message"`
}

// NewTransformCmd creates the transform command.
func NewTransformCmd() *cobra.Command {
	var (
		modeFlag   string
		cssFlag    bool
		outputFlag string
		stableFlag bool
	)

	cmd := &cobra.Command{
		Use:   "transform <file>",
		Short: "Transform one module and print the result",
		Long: `Transform a single JSX/TSX module and print the rewritten source.

In dev mode the output imports the module's virtual CSS module. In build
mode the CSS is only recorded; use --css to print it.

Examples:
  # Print the rewritten module
  gfcss transform src/Hud.tsx

  # Print code and generated CSS as YAML
  gfcss transform src/Hud.tsx --css -o yaml

  # Reproducible class names
  gfcss transform src/Hud.tsx --stable`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], transformFlags{
				mode:   modeFlag,
				css:    cssFlag,
				output: outputFlag,
				stable: stableFlag,
			})
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "", "Publishing mode: dev, build (env: GFCSS_MODE)")
	cmd.Flags().BoolVar(&cssFlag, "css", false, "Also print the generated CSS")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "code", "Output format: code, json, yaml")
	cmd.Flags().BoolVar(&stableFlag, "stable", false, "Number class tokens instead of randomizing them")

	return cmd
}

type transformFlags struct {
	mode   string
	css    bool
	output string
	stable bool
}

// resolveMode applies flag > env/config > def to the publishing mode.
func resolveMode(rc *config.ResolvedConfig, flag string, def transform.Mode) (transform.Mode, error) {
	mode := flag
	if mode == "" {
		mode = rc.Mode.Value
	}
	if mode == "" {
		return def, nil
	}
	switch transform.Mode(mode) {
	case transform.ModeDev, transform.ModeBuild:
		return transform.Mode(mode), nil
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("unknown mode %q", mode), "", "mode", "Use one of: dev, build.")
}

func runTransform(ctx context.Context, w, errW io.Writer, path string, flags transformFlags) error {
	format := output.OutputFormat(flags.output)
	if !format.Valid() {
		return &oerrors.ExitError{
			Code: oerrors.ExitGeneralError,
			Err:  fmt.Errorf("invalid output format %q (valid: %v)", flags.output, output.ValidFormats()),
		}
	}

	rc := GetResolvedConfig()
	mode, err := resolveMode(rc, flags.mode, transform.ModeDev)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError("module not found", path, "")
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var warnings []diag.Warning
	session := newSession(rc, sessionOptions{
		mode:   mode,
		stable: flags.stable,
		onWarning: func(d diag.Warning) {
			warnings = append(warnings, d)
		},
	})

	doc := transformDocument{Path: path, Mode: string(mode)}
	if !session.Eligible(path) {
		output.Debug("module not eligible, printing unchanged", "path", path)
		doc.Code = string(src)
		return printTransform(w, format, doc, flags.css)
	}

	compiled, err := session.Compile(ctx, path, src)
	if err != nil {
		return err
	}
	out := session.Commit(compiled)
	newWarner(errW, rc, mode).WarnAll(warnings)

	doc.Changed = out.Changed
	doc.Code = out.Code
	doc.CSS = compiled.CSS(mode == transform.ModeDev)
	if out.Changed && mode == transform.ModeDev {
		doc.VirtualID = registry.VirtualID(rc.VirtualPrefix.Value, path)
	}
	for _, d := range warnings {
		doc.Warnings = append(doc.Warnings, warningDocument{
			Kind:     string(d.Kind),
			Location: d.Location(),
			Message:  d.Message(),
		})
	}

	return printTransform(w, format, doc, flags.css)
}

func printTransform(w io.Writer, format output.OutputFormat, doc transformDocument, withCSS bool) error {
	if !withCSS {
		doc.CSS = ""
	}
	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	if _, err := io.WriteString(w, doc.Code); err != nil {
		return err
	}
	if doc.CSS != "" {
		_, err := fmt.Fprintf(w, "\n/* %s */\n%s", output.StyleDim.Render("generated CSS"), doc.CSS)
		return err
	}
	return nil
}
