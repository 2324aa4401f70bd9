// Package logger provides verbose logging for the notecal CLI.
// When verbose mode is enabled via the --verbose flag, records are
// written to stderr through a zap console encoder. With verbose off
// nothing is written, so the TUI keeps the terminal to itself.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	sugar   = newSugar(os.Stderr)
)

// newSugar builds a levelled console logger without timestamps or callers.
func newSugar(w io.Writer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		NameKey:          "logger",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
	return zap.New(core).Named("notecal").Sugar()
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	sugar = newSugar(w)
}

// Debug logs a formatted message at debug level if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Debugf(format, args...)
	}
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Infof("=== %s ===", name)
	}
}

// Info logs a formatted message at info level if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Infof(format, args...)
	}
}

// Infow logs a message with key/value pairs at info level if verbose mode is enabled.
func Infow(msg string, keysAndValues ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Infow(msg, keysAndValues...)
	}
}

// Warn logs a formatted message at warn level if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Warnf(format, args...)
	}
}

// Warnw logs a message with key/value pairs at warn level if verbose mode is enabled.
func Warnw(msg string, keysAndValues ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		sugar.Warnw(msg, keysAndValues...)
	}
}

// Sync flushes any buffered records.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return sugar.Sync()
}
