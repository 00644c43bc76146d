package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats and destinations.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	OutputStderr  = "stderr"
	OutputFile    = "file"

	// FieldComponent is the log field naming the emitting package.
	FieldComponent = "component"
)

// Config controls logger construction.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
}

// LogPathResult is a configured logger plus where it writes.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when log lines go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is true when file output was requested but stderr is used.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger returns a logger for cfg, writing to stderr when file output is
// unavailable.
func NewLogger(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath builds a logger for cfg. When cfg asks for file output
// and the file cannot be opened, the logger falls back to stderr and the
// result records why.
func NewLoggerWithPath(cfg Config) LogPathResult {
	return newLoggerWithWriter(cfg, os.Stderr)
}

func newLoggerWithWriter(cfg Config, stderr io.Writer) LogPathResult {
	result := LogPathResult{}

	var out io.Writer = stderr
	if cfg.Output == OutputFile && cfg.File != "" {
		f, err := openLogFile(cfg.File)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			out = f
			result.file = f
			result.UsingFile = true
			result.FilePath = cfg.File
		}
	}

	if strings.EqualFold(cfg.Format, FormatConsole) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	result.Logger = zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		Hook(TraceHook{}).
		With().
		Timestamp().
		Logger()
	return result
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ParseLevel parses level, defaulting to info for empty or unknown values.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str(FieldComponent, component).Logger()
}

// FromContext returns the logger stored in ctx, tagged with the context's
// trace ID when one is present. Without a stored logger it returns a
// disabled logger. Loggers built by NewLogger also pick the trace ID up from
// any context passed to Event.Ctx.
func FromContext(ctx context.Context) zerolog.Logger {
	l := *zerolog.Ctx(ctx)
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		l = l.With().Str(FieldTraceID, traceID).Logger()
	}
	return l
}

// PrintLogPathMessage tells the user where log lines are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
