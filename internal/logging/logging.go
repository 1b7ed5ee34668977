// Package logging provides types.Logger implementations backed by log/slog and
// zap, plus a no-op logger, and builds them from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/erelsgl/family-fair-allocation/types"
)

// Supported backends and formats.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
	BackendNop  = "nop"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects and configures a logger.
type Options struct {
	// Level is one of debug, info, warn, error (default info).
	Level string

	// Format is text or json (default text).
	Format string

	// Backend is slog, zap or nop (default slog).
	Backend string

	// Output receives log lines (default os.Stderr).
	Output io.Writer
}

// ParseLevel parses a level name. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: unknown log level %q", types.ErrInvalidConfig, s)
	}
}

// New builds a logger from opts.
//
// Parameters:
//   - opts: Backend, level, format and output
//
// Returns:
//   - types.Logger: The configured logger
//   - error: types.ErrInvalidConfig for an unknown backend, level or format
//
// Example:
//
//	logger, err := logging.New(logging.Options{Backend: "zap", Level: "debug"})
func New(opts Options) (types.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	format := strings.ToLower(opts.Format)

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		h, err := newSlogHandler(out, format, level)
		if err != nil {
			return nil, err
		}
		return NewSlog(slog.New(h)), nil
	case BackendZap:
		core, err := newZapCore(out, format, level)
		if err != nil {
			return nil, err
		}
		return NewZap(zap.New(core)), nil
	case BackendNop:
		return NewNop(), nil
	default:
		return nil, fmt.Errorf("%w: unknown log backend %q", types.ErrInvalidConfig, opts.Backend)
	}
}

// With scopes logger with keysAndValues. Loggers with their own With method
// (the slog, zap and nop loggers here) handle it natively; any other logger
// gets the pairs appended to every call.
//
// Example:
//
//	logger = logging.With(logger, "protocol", "rwav")
func With(logger types.Logger, keysAndValues ...any) types.Logger {
	if len(keysAndValues) == 0 {
		return logger
	}
	if w, ok := logger.(interface {
		With(keysAndValues ...any) types.Logger
	}); ok {
		return w.With(keysAndValues...)
	}

	return &fieldLogger{base: logger, fields: keysAndValues}
}

type fieldLogger struct {
	base   types.Logger
	fields []any
}

func (l *fieldLogger) kv(keysAndValues []any) []any {
	return append(append(make([]any, 0, len(keysAndValues)+len(l.fields)), keysAndValues...), l.fields...)
}

func (l *fieldLogger) Debug(msg string, keysAndValues ...any) { l.base.Debug(msg, l.kv(keysAndValues)...) }
func (l *fieldLogger) Info(msg string, keysAndValues ...any)  { l.base.Info(msg, l.kv(keysAndValues)...) }
func (l *fieldLogger) Warn(msg string, keysAndValues ...any)  { l.base.Warn(msg, l.kv(keysAndValues)...) }
func (l *fieldLogger) Error(msg string, keysAndValues ...any) { l.base.Error(msg, l.kv(keysAndValues)...) }
func (l *fieldLogger) Fatal(msg string, keysAndValues ...any) { l.base.Fatal(msg, l.kv(keysAndValues)...) }
