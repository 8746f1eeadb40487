package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/config"
)

// isolate clears every gfcss environment variable for the test.
func isolate(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvConfig, config.EnvMode, config.EnvEnvironment,
		config.EnvNodeEnv, config.EnvWorkers, config.EnvVirtualPrefix,
	} {
		t.Setenv(name, "")
	}
}

// execute runs the root command with a missing config file, production
// environment and a single worker, and returns what the command wrote to
// its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeIn(t, config.EnvironmentProduction, args...)
	return out, err
}

// executeIn is execute with an explicit environment. It also returns what
// the command wrote to its error output.
func executeIn(t *testing.T, env string, args ...string) (string, string, error) {
	t.Helper()
	isolate(t)

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	base := []string{
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--env", env,
		"--workers", "1",
		"--timestamps=false",
	}
	root.SetArgs(append(base, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "gfcss", root.Use)
	for _, name := range []string{"transform", "build", "dev", "config", "version"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "verbose", "timestamps", "workers", "env"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestInitializeGlobals_ResolvesFromFlagsAndFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gfcss.yaml")
	writeConfig(t, cfgPath, "mode: build\nvirtualPrefix: virtual:hud/\nworkers: 3\n")

	root := NewRootCmd()
	root.SetArgs([]string{"--config", cfgPath, "--workers", "5", "version"})
	require.NoError(t, root.Execute())

	rc := GetResolvedConfig()
	assert.Equal(t, cfgPath, rc.ConfigPath.Value)
	assert.Equal(t, config.SourceFlag, rc.ConfigPath.Source)
	assert.Equal(t, "build", rc.Mode.Value)
	assert.Equal(t, config.SourceConfig, rc.Mode.Source)
	assert.Equal(t, "virtual:hud/", rc.VirtualPrefix.Value)
	assert.Equal(t, 5, rc.WorkerCount())
	assert.Equal(t, config.SourceFlag, rc.Workers.Source)
}

func TestInitializeGlobals_InvalidConfigIsIgnored(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "gfcss.yaml")
	writeConfig(t, cfgPath, "mode: production\n")

	root := NewRootCmd()
	root.SetArgs([]string{"--config", cfgPath, "version"})
	require.NoError(t, root.Execute())

	assert.Empty(t, GetResolvedConfig().Mode.Value)
}
