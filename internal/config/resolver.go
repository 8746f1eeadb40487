package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/CoherentLabs/Gameface-UI-sub000/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables read by the resolver.
const (
	EnvConfig        = "GFCSS_CONFIG"
	EnvMode          = "GFCSS_MODE"
	EnvEnvironment   = "GFCSS_ENV"
	EnvNodeEnv       = "NODE_ENV"
	EnvWorkers       = "GFCSS_WORKERS"
	EnvVirtualPrefix = "GFCSS_VIRTUAL_PREFIX"
)

// ResolvedValue is one configuration value with its source.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolve applies flag > env > config > default. Empty strings count as
// unset.
func resolve(key, flag, env, cfg, def string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flag},
		{SourceEnv, env},
		{SourceConfig, cfg},
		{SourceDefault, def},
	}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			rv.Shadowed[c.source] = c.value
		}
	}
	return rv
}

// firstEnv returns the first non-empty variable among names.
func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) GFCSS_CONFIG env, (3) ./gfcss.yaml, (4) ~/.gfcss/config.yaml.
func ResolveConfigPath(flag string) (ResolvedValue, error) {
	def, err := DefaultConfigFile()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolve("config", flag, os.Getenv(EnvConfig), "", def), nil
}

// ResolveAllOptions carries flag values (empty when not set) and the
// loaded config file.
type ResolveAllOptions struct {
	ConfigPath  ResolvedValue
	ModeFlag    string
	ModeDefault string
	WorkersFlag int
	EnvFlag     string
	Config      *Config
}

// ResolvedConfig is the effective configuration of one command run.
type ResolvedConfig struct {
	ConfigPath    ResolvedValue
	Mode          ResolvedValue
	Environment   ResolvedValue
	Workers       ResolvedValue
	VirtualPrefix ResolvedValue

	// File is the loaded config file with defaults applied.
	File *Config
}

// ResolveAll resolves every value that can come from flags or the
// environment.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	file := cfg.WithDefaults()

	workersFlag := ""
	if opts.WorkersFlag > 0 {
		workersFlag = strconv.Itoa(opts.WorkersFlag)
	}
	workersCfg := ""
	if cfg.Workers > 0 {
		workersCfg = strconv.Itoa(cfg.Workers)
	}

	return &ResolvedConfig{
		ConfigPath:    opts.ConfigPath,
		Mode:          resolve("mode", opts.ModeFlag, os.Getenv(EnvMode), cfg.Mode, opts.ModeDefault),
		Environment:   resolve("environment", opts.EnvFlag, firstEnv(EnvEnvironment, EnvNodeEnv), cfg.Environment, ""),
		Workers:       resolve("workers", workersFlag, os.Getenv(EnvWorkers), workersCfg, strconv.Itoa(runtime.NumCPU())),
		VirtualPrefix: resolve("virtualPrefix", "", os.Getenv(EnvVirtualPrefix), cfg.VirtualPrefix, file.VirtualPrefix),
		File:          file,
	}
}

// Values returns every resolved value, for logging.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Mode, r.Environment, r.Workers, r.VirtualPrefix}
}

// WorkerCount returns the resolved worker count, at least 1.
func (r *ResolvedConfig) WorkerCount() int {
	n, err := strconv.Atoi(r.Workers.Value)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Production reports whether the resolved environment is production.
func (r *ResolvedConfig) Production() bool {
	return r.Environment.Value == EnvironmentProduction
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
