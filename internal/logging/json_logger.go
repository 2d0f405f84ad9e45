package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// JSONLogger writes one JSON object per message, for log shippers.
// Verbose messages are emitted at debug level and dropped unless verbose
// is set.
type JSONLogger struct {
	log zerolog.Logger
}

// NewJSONLogger creates a JSONLogger writing to stderr.
func NewJSONLogger(verbose bool) *JSONLogger {
	return NewJSONLoggerTo(os.Stderr, verbose)
}

// NewJSONLoggerTo creates a JSONLogger writing to w.
func NewJSONLoggerTo(w io.Writer, verbose bool) *JSONLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return &JSONLogger{log: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// With returns a logger that adds key=value to every message.
func (l *JSONLogger) With(key, value string) *JSONLogger {
	return &JSONLogger{log: l.log.With().Str(key, value).Logger()}
}

// Verbose logs detailed diagnostic information.
func (l *JSONLogger) Verbose(format string, args ...interface{}) {
	l.log.Debug().Msg(sprintf(format, args))
}

// Info logs informational messages about normal operations.
func (l *JSONLogger) Info(format string, args ...interface{}) {
	l.log.Info().Msg(sprintf(format, args))
}

// Error logs error messages.
func (l *JSONLogger) Error(format string, args ...interface{}) {
	l.log.Error().Msg(sprintf(format, args))
}
