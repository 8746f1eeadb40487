package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigFile is the per-project config file name looked up in the
// working directory.
const ProjectConfigFile = "gfcss.yaml"

// Paths contains standard filesystem paths for gfcss.
type Paths struct {
	// ConfigFile is the path to the user config file (~/.gfcss/config.yaml).
	ConfigFile string

	// HomeDir is the gfcss home directory (~/.gfcss).
	HomeDir string
}

// DefaultPaths returns the default paths for gfcss.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".gfcss")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// DefaultConfigFile returns ./gfcss.yaml when it exists, otherwise the
// user config file.
func DefaultConfigFile() (string, error) {
	if _, err := os.Stat(ProjectConfigFile); err == nil {
		return ProjectConfigFile, nil
	}
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
