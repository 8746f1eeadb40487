// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool
	workersFlag    int
	envFlag        string

	// Loaded during PersistentPreRunE
	fileConfig     *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the gfcss CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gfcss",
		Short: "Compile inline styles to CSS",
		Long: `gfcss moves static inline style objects out of JSX/TSX markup and into
generated CSS classes.

In dev mode the CSS of each module is served as a virtual module that the
module imports. In build mode it is appended to the CSS assets of the
chunks that contain the module.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: GFCSS_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().IntVarP(&workersFlag, "workers", "j", 0, "Parallel compile workers (env: GFCSS_WORKERS)")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "Runtime environment; production silences repeated warnings (env: GFCSS_ENV, NODE_ENV)")

	rootCmd.AddCommand(NewTransformCmd())
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewDevCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads the config file, resolves every value and sets up
// logging.
func initializeGlobals(cmd *cobra.Command) error {
	pathValue, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	loaded, err := config.NewLoader().Load(pathValue.Value)
	if err != nil {
		// Commands that don't need the file still run; config vet reports it.
		output.Debug("config load error", "error", err)
		loaded = &config.Config{}
	}
	if err := loaded.Validate(); err != nil {
		output.Warn("ignoring invalid configuration, run 'gfcss config vet'", "path", pathValue.Value)
		loaded = &config.Config{}
	}
	fileConfig = loaded

	resolvedConfig = config.ResolveAll(config.ResolveAllOptions{
		ConfigPath:  pathValue,
		WorkersFlag: workersFlag,
		EnvFlag:     envFlag,
		Config:      fileConfig,
	})

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if fileConfig.Log.Timestamps != nil {
		logCfg.Timestamps = fileConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(resolvedConfig.Values())
	}
	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	if resolvedConfig == nil {
		resolvedConfig = config.ResolveAll(config.ResolveAllOptions{})
	}
	return resolvedConfig
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	return configFlag
}
