// ABOUTME: Leveled logging with verbosity control, backed by charmbracelet/log
// ABOUTME: Output can be redirected to a file while the TUI owns the terminal

package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	verbose = false
	level   = log.InfoLevel
	std     = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "infoflow",
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
	})
	l.SetLevel(effectiveLevel())
	return l
}

func effectiveLevel() log.Level {
	if verbose {
		return log.DebugLevel
	}
	return level
}

// SetVerbose enables or disables DEBUG output regardless of the configured level.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	std.SetLevel(effectiveLevel())
}

// IsVerbose returns the current verbose setting.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetLevel sets the minimum level by name: debug, info, warn or error.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	std.SetLevel(effectiveLevel())
	return nil
}

// SetOutput sets the destination for logs. nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	mu.Lock()
	defer mu.Unlock()
	std = newLogger(w)
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return std
}

func Debug(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	current().Infof(format, args...)
}

func Warn(format string, args ...interface{}) {
	current().Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	current().Errorf(format, args...)
}
