// Package main is the entry point for the gfcss CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/cmd"
	oerrors "github.com/CoherentLabs/Gameface-UI-sub000/internal/errors"
	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		code := oerrors.ExitCodeFromError(err)
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
			// The command layer may have reported it already
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		output.Debug("exiting", "code", code, "status", oerrors.ExitCodeName(code))
		os.Exit(code)
	}
}
