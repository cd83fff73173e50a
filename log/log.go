// Package log provides a leveled, structured logger for the whole module,
// backed by zerolog. It exposes package-level functions so that callers do
// not need to carry a logger around.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

// The init function sets a default logger to stderr with the error level,
// so the package is usable without calling Init.
func init() {
	logger = zerolog.New(consoleWriter(os.Stderr)).With().Timestamp().Logger().Level(zerolog.ErrorLevel)
}

// panicOnInvalidChars is set based on the LOG_PANIC_ON_INVALIDCHARS env var.
// If true, the logger panics when a message contains invalid UTF-8, which is
// generally a sign of logging raw bytes instead of their hex encoding.
var panicOnInvalidChars = os.Getenv("LOG_PANIC_ON_INVALIDCHARS") == "true"

// logTestWriterName is a reserved output name used by tests and benchmarks.
const logTestWriterName = "log_test_writer"

// logTestWriter is the writer used when the output is logTestWriterName.
var logTestWriter io.Writer = io.Discard

func consoleWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

// Init initializes the logger with the given level and output. The output
// can be "stdout", "stderr" or a file path. If errorOutput is not nil, error
// messages are duplicated to it as JSON lines.
func Init(level, output string, errorOutput io.Writer) {
	var out io.Writer
	switch output {
	case "stdout":
		out = consoleWriter(os.Stdout)
	case "stderr":
		out = consoleWriter(os.Stderr)
	case logTestWriterName:
		out = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("cannot create log output: %v", err))
		}
		out = f
	}
	if errorOutput != nil {
		out = zerolog.MultiLevelWriter(out, errorLevelWriter{errorOutput})
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		panic(fmt.Sprintf("invalid log level %q: %v", level, err))
	}
	logger = zerolog.New(out).With().Timestamp().Logger().Level(lvl)
	Infow("logger construction succeeded", "level", level, "output", output)
}

// errorLevelWriter forwards only error-or-worse lines to its writer.
type errorLevelWriter struct{ io.Writer }

func (w errorLevelWriter) WriteLevel(lvl zerolog.Level, p []byte) (int, error) {
	if lvl < zerolog.ErrorLevel {
		return len(p), nil
	}
	return w.Write(p)
}

// Logger returns the underlying zerolog logger, e.g. to pass it to libraries
// that accept one.
func Logger() *zerolog.Logger { return &logger }

func checkInvalidChars(msg string) string {
	if panicOnInvalidChars && !utf8.ValidString(msg) {
		panic(fmt.Sprintf("log message contains invalid chars: %q", msg))
	}
	return msg
}

// Debug logs a debug message.
func Debug(args ...any) { logger.Debug().Msg(checkInvalidChars(fmt.Sprint(args...))) }

// Info logs an info message.
func Info(args ...any) { logger.Info().Msg(checkInvalidChars(fmt.Sprint(args...))) }

// Warn logs a warning message.
func Warn(args ...any) { logger.Warn().Msg(checkInvalidChars(fmt.Sprint(args...))) }

// Error logs an error message.
func Error(args ...any) { logger.Error().Msg(checkInvalidChars(fmt.Sprint(args...))) }

// Debugf logs a debug message with format.
func Debugf(template string, args ...any) {
	logger.Debug().Msg(checkInvalidChars(fmt.Sprintf(template, args...)))
}

// Infof logs an info message with format.
func Infof(template string, args ...any) {
	logger.Info().Msg(checkInvalidChars(fmt.Sprintf(template, args...)))
}

// Warnf logs a warning message with format.
func Warnf(template string, args ...any) {
	logger.Warn().Msg(checkInvalidChars(fmt.Sprintf(template, args...)))
}

// Errorf logs an error message with format.
func Errorf(template string, args ...any) {
	logger.Error().Msg(checkInvalidChars(fmt.Sprintf(template, args...)))
}

func logw(ev *zerolog.Event, msg string, keyvals []any) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		ev = ev.Interface(key, keyvals[i+1])
	}
	ev.Msg(checkInvalidChars(msg))
}

// Debugw logs a debug message with key-value pairs.
func Debugw(msg string, keyvals ...any) { logw(logger.Debug(), msg, keyvals) }

// Infow logs an info message with key-value pairs.
func Infow(msg string, keyvals ...any) { logw(logger.Info(), msg, keyvals) }

// Warnw logs a warning message with key-value pairs.
func Warnw(msg string, keyvals ...any) { logw(logger.Warn(), msg, keyvals) }

// Errorw logs an error with key-value pairs.
func Errorw(err error, keyvals ...any) {
	if err == nil {
		return
	}
	logw(logger.Error().Err(err), err.Error(), keyvals)
}
