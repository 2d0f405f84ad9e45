package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// RunningInActions reports whether the process runs as a GitHub Actions step.
func RunningInActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// ActionsLogger writes GitHub Actions workflow commands.
//
// Info lines are written verbatim, errors become ::error:: annotations and
// verbose output becomes ::debug:: lines, which the runner only shows when
// step debug logging is enabled. With verbose set, verbose output is written
// as plain lines instead.
type ActionsLogger struct {
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewActionsLogger creates an ActionsLogger writing to stdout.
func NewActionsLogger(verbose bool) *ActionsLogger {
	return NewActionsLoggerTo(os.Stdout, verbose)
}

// NewActionsLoggerTo creates an ActionsLogger writing to w.
func NewActionsLoggerTo(w io.Writer, verbose bool) *ActionsLogger {
	return &ActionsLogger{verbose: verbose, out: w}
}

// Verbose logs diagnostic information.
func (l *ActionsLogger) Verbose(format string, args ...interface{}) {
	msg := sprintf(format, args)
	if l.verbose {
		l.writeLine(msg)
		return
	}
	l.writeLine("::debug::" + escapeData(msg))
}

// Info logs informational messages about normal operations.
func (l *ActionsLogger) Info(format string, args ...interface{}) {
	l.writeLine(sprintf(format, args))
}

// Error logs an error annotation.
func (l *ActionsLogger) Error(format string, args ...interface{}) {
	l.writeLine("::error::" + escapeData(sprintf(format, args)))
}

func (l *ActionsLogger) writeLine(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, s)
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// escapeData encodes a workflow command payload so multi-line messages stay
// inside one annotation.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
