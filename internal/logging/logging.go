package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultLogFile = "text-style-control.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	verbose      bool
	logPath      = defaultLogFile
)

// withFile opens the shared log file and hands fn a logger bound to it. The
// file is reopened per entry so external rotation never loses writes.
func withFile(formatter log.Formatter, fn func(*log.Logger)) {
	traceMu.Lock()
	path := logPath
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	traceMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	fn(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Formatter:       formatter,
	}))
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	withFile(log.TextFormatter, func(l *log.Logger) {
		l.Error(err)
	})
}

// Debugf writes a formatted line to the shared log when verbose logging is on.
func Debugf(format string, args ...interface{}) {
	traceMu.Lock()
	enabled := verbose
	traceMu.Unlock()
	if !enabled {
		return
	}
	withFile(log.TextFormatter, func(l *log.Logger) {
		l.Debugf(format, args...)
	})
}

// PrintfLogger adapts Debugf to libraries that accept a Printf-style logger.
type PrintfLogger struct{}

func (PrintfLogger) Printf(format string, args ...interface{}) {
	Debugf(format, args...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// SetVerbose enables debug-level output.
func SetVerbose(enabled bool) {
	traceMu.Lock()
	verbose = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	withFile(log.JSONFormatter, func(l *log.Logger) {
		if payload == nil {
			l.Info(event)
			return
		}
		l.Info(event, "payload", payload)
	})
}

// Path returns the current log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
