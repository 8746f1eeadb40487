// Package config provides configuration loading, resolution and validation.
package config

import (
	"time"
)

// Mode values.
const (
	ModeDev   = "dev"
	ModeBuild = "build"
)

// EnvironmentProduction is the environment name that silences repeated
// warnings.
const EnvironmentProduction = "production"

// WarningsConfig contains warning printer settings.
type WarningsConfig struct {
	// RepeatDelay is how long after a warning it is printed a second time
	// outside production. "0s" disables the repeat.
	// Default: 1s
	RepeatDelay string `json:"repeatDelay,omitempty" yaml:"repeatDelay,omitempty" validate:"omitempty,duration"`
}

// WatchConfig contains dev-mode watcher settings.
type WatchConfig struct {
	// Debounce groups file events arriving within this window.
	// Default: 100ms
	Debounce string `json:"debounce,omitempty" yaml:"debounce,omitempty" validate:"omitempty,duration"`

	// Ignore lists extra glob patterns (doublestar syntax) to skip.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" validate:"dive,required,glob"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the gfcss configuration file.
// Loaded from ./gfcss.yaml or ~/.gfcss/config.yaml.
type Config struct {
	// Mode selects how generated CSS is published: "dev" (virtual modules)
	// or "build" (chunk association).
	// Env: GFCSS_MODE, Default: per command
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=dev build"`

	// Extensions lists the file extensions that are transformed.
	// Default: [.jsx, .tsx]
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" validate:"dive,required,startswith=."`

	// VirtualPrefix starts every virtual CSS module id.
	// Env: GFCSS_VIRTUAL_PREFIX, Default: "virtual:gfcss/"
	VirtualPrefix string `json:"virtualPrefix,omitempty" yaml:"virtualPrefix,omitempty" validate:"omitempty,endswith=/"`

	// Environment names the runtime environment. "production" suppresses
	// repeated warnings.
	// Env: GFCSS_ENV or NODE_ENV
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`

	// Workers bounds parallel compilation in the build command.
	// Env: GFCSS_WORKERS, Default: number of CPUs
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0,lte=256"`

	Warnings WarningsConfig `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Watch    WatchConfig    `json:"watch,omitempty" yaml:"watch,omitempty"`
	Log      LogConfig      `json:"log,omitempty" yaml:"log,omitempty"`
}

// Defaults.
var (
	DefaultExtensions  = []string{".jsx", ".tsx"}
	DefaultRepeatDelay = time.Second
	DefaultDebounce    = 100 * time.Millisecond
)

// DefaultConfig returns a Config with all default values populated.
// Used by `gfcss config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Extensions:    append([]string(nil), DefaultExtensions...),
		VirtualPrefix: "virtual:gfcss/",
		Warnings: WarningsConfig{
			RepeatDelay: DefaultRepeatDelay.String(),
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce.String(),
		},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	d := DefaultConfig()
	if len(out.Extensions) == 0 {
		out.Extensions = d.Extensions
	}
	if out.VirtualPrefix == "" {
		out.VirtualPrefix = d.VirtualPrefix
	}
	if out.Warnings.RepeatDelay == "" {
		out.Warnings.RepeatDelay = d.Warnings.RepeatDelay
	}
	if out.Watch.Debounce == "" {
		out.Watch.Debounce = d.Watch.Debounce
	}
	return &out
}

// RepeatDelay returns the parsed warnings.repeatDelay, or the default when
// unset or invalid.
func (c *Config) RepeatDelay() time.Duration {
	return parseDuration(c.Warnings.RepeatDelay, DefaultRepeatDelay)
}

// Debounce returns the parsed watch.debounce, or the default when unset or
// invalid.
func (c *Config) Debounce() time.Duration {
	return parseDuration(c.Watch.Debounce, DefaultDebounce)
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return def
	}
	return d
}
