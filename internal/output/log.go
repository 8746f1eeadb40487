// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Commands configure it once with
// SetupLogging; tests may swap it with SetOutput.
var (
	logger   = newLogger(os.Stderr, LogConfig{})
	loggerMu sync.RWMutex
)

// LogConfig holds logging configuration.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps controls whether timestamps are shown. nil means true.
	Timestamps *bool
}

func (c LogConfig) timestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

func newLogger(w io.Writer, cfg LogConfig) *log.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.timestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetupLogging configures the logger based on verbosity and timestamps.
func SetupLogging(cfg LogConfig) {
	SetOutput(os.Stderr, cfg)
}

// SetOutput configures the logger to write to w.
func SetOutput(w io.Writer, cfg LogConfig) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = newLogger(w, cfg)
}

// Logger returns the package logger.
func Logger() *log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// ModuleLogger returns a child logger prefixed with a source module path.
func ModuleLogger(path string) *log.Logger {
	return Logger().WithPrefix(StyleNoun.Render(path))
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger().Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}
