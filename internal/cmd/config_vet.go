package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the gfcss configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values pass validation (mode, extensions, durations, glob patterns)

The config path is resolved using precedence:
  --config flag > GFCSS_CONFIG env > ./gfcss.yaml > ~/.gfcss/config.yaml

Examples:
  # Validate default configuration
  gfcss config vet

  # Validate custom config path
  gfcss config vet --config ./ci/gfcss.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigVet(GetConfigPath())
		},
	}
}

func runConfigVet(configPath string) error {
	output.Debug("validating config", "path", configPath)

	exists, err := config.FileExists(configPath)
	if err != nil {
		return err
	}
	if !exists {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'gfcss config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}
	output.Println(output.FormatVetCheck("Config file found", configPath))

	cfg, err := config.NewLoader().Load(configPath)
	if err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}
	output.Println(output.FormatVetCheck("YAML parsed", ""))

	if err := cfg.Validate(); err != nil {
		return err
	}
	eff := cfg.WithDefaults()
	output.Println(output.FormatVetCheck("Values valid",
		fmt.Sprintf("extensions %s, repeat %s, debounce %s",
			strings.Join(eff.Extensions, ","), eff.RepeatDelay(), eff.Debounce())))
	return nil
}
