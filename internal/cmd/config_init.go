package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force, global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a configuration file populated with the default values.

By default the file is created as ./gfcss.yaml. With --global it is
created as ~/.gfcss/config.yaml, readable only by the current user.

Examples:
  # Initialize project configuration
  gfcss config init

  # Initialize user configuration, overwriting an existing one
  gfcss config init --global --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force, global)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&global, "global", false, "Write the user configuration in ~/.gfcss")

	return cmd
}

func runConfigInit(force, global bool) error {
	target := config.ProjectConfigFile
	dirMode, fileMode := os.FileMode(0o755), os.FileMode(0o644)
	if global {
		paths, err := config.DefaultPaths()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		target = paths.ConfigFile
		dirMode, fileMode = 0o700, 0o600
	}

	if _, err := os.Stat(target); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: target,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if err := os.WriteFile(target, data, fileMode); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + target))
	output.Println("Validate with: gfcss config vet")
	return nil
}
