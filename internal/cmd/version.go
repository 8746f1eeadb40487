package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show gfcss version information.

Displays:
  - gfcss version, commit, and build date
  - Go version
  - tree-sitter binding version`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	output.Println(fmt.Sprintf("gfcss version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:      %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:       %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:          %s", info.GoVersion))
	output.Println(fmt.Sprintf("  tree-sitter: %s", info.TreeSitter))

	return nil
}
