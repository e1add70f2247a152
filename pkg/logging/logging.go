// pkg/logging/logging.go
package logging

import (
	"fmt"
	"io"
	stdLog "log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// logWriter stores the current log writer globally
	logWriter io.Writer = os.Stdout
	writerMu  sync.RWMutex
)

// stdLogWriter forwards stdlib log output to zerolog at debug level.
type stdLogWriter struct {
	logger zerolog.Logger
}

func (w *stdLogWriter) Write(p []byte) (n int, err error) {
	w.logger.Debug().Str("source", "stdlog").Msg(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// init hides logs emitted before ConfigureGlobalLogging runs.
func init() {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
}

// ConfigureGlobalLogging configures the global zerolog logger.
// format is "json" for structured output; anything else selects the console writer.
func ConfigureGlobalLogging(levelStr, format string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	w := formatWriter(getLogWriter(), format)

	logContext := zerolog.New(w).With().Timestamp()
	if level <= zerolog.DebugLevel {
		logContext = logContext.Caller()
	}

	log.Logger = logContext.Logger().Level(level)
	zerolog.DefaultContextLogger = &log.Logger

	// stdlib log prefixes would duplicate zerolog's timestamp
	stdLog.SetFlags(0)
	stdLog.SetOutput(&stdLogWriter{logger: log.Logger})

	return nil
}

// SetLevel changes the global level at runtime, e.g. after a config reload.
func SetLevel(levelStr string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Logger.Level(level)
	return nil
}

// ParseLevel converts a string log level to zerolog.Level. Empty means info.
func ParseLevel(levelString string) (zerolog.Level, error) {
	if levelString == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelString))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", levelString, err)
	}
	return level, nil
}

// Component derives a logger from the global logger tagged with component.
// Filtering is left to the global level so SetLevel takes effect on it.
func Component(component string) zerolog.Logger {
	return log.Logger.Level(zerolog.TraceLevel).With().Str("component", component).Logger()
}

func formatWriter(w io.Writer, format string) io.Writer {
	if strings.EqualFold(format, "json") {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
}

// getLogWriter returns the configured log writer
func getLogWriter() io.Writer {
	writerMu.RLock()
	defer writerMu.RUnlock()
	return logWriter
}

// SetLogWriter sets the global log writer
func SetLogWriter(w io.Writer) {
	writerMu.Lock()
	defer writerMu.Unlock()
	logWriter = w
}
