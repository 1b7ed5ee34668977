package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erelsgl/family-fair-allocation/types"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "", " warn ", "warning", "error"} {
		_, err := ParseLevel(name)
		require.NoError(t, err, name)
	}

	_, err := ParseLevel("trace")
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestNew(t *testing.T) {
	t.Run("slog text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(Options{Level: "debug", Output: buf})
		require.NoError(t, err)
		require.IsType(t, &SlogLogger{}, logger)

		logger.Debug("turn", "family", "Group1")
		require.Contains(t, buf.String(), "level=DEBUG")
		require.Contains(t, buf.String(), "family=Group1")
	})

	t.Run("slog json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(Options{Format: "json", Output: buf})
		require.NoError(t, err)

		logger.Debug("filtered")
		logger.Info("picked", "good", "x")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "picked", entry["msg"])
		require.Equal(t, "x", entry["good"])
	})

	t.Run("zap json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(Options{Backend: "zap", Format: "json", Level: "warn", Output: buf})
		require.NoError(t, err)
		require.IsType(t, &ZapLogger{}, logger)

		logger.Info("filtered")
		logger.Warn("no convergence", "iterations", 8)
		require.NoError(t, logger.(*ZapLogger).Sync())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		require.Equal(t, "no convergence", entry["msg"])
		require.Equal(t, "warn", entry["level"])
		require.InDelta(t, 8, entry["iterations"], 0)
	})

	t.Run("zap text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(Options{Backend: "zap", Output: buf})
		require.NoError(t, err)

		logger.Error("failed", "protocol", "line")
		require.Contains(t, buf.String(), "ERROR")
		require.Contains(t, buf.String(), "failed")
	})

	t.Run("nop", func(t *testing.T) {
		logger, err := New(Options{Backend: "nop"})
		require.NoError(t, err)
		require.NotPanics(t, func() {
			logger.Info("discarded")
			logger.Fatal("discarded")
		})
	})

	t.Run("invalid options", func(t *testing.T) {
		for _, opts := range []Options{
			{Backend: "logrus"},
			{Level: "loud"},
			{Format: "xml"},
			{Backend: "zap", Format: "xml"},
		} {
			_, err := New(opts)
			require.ErrorIs(t, err, types.ErrInvalidConfig, "%+v", opts)
		}
	})
}

func TestNewZap(t *testing.T) {
	require.NotPanics(t, func() {
		NewZap(nil).Info("discarded")
		NewZap(zap.NewNop()).Debug("discarded", "k", "v")
	})
}

// recordingLogger has no With method of its own.
type recordingLogger struct {
	calls [][]any
}

func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) Info(_ string, keysAndValues ...any) {
	r.calls = append(r.calls, keysAndValues)
}

func TestWith(t *testing.T) {
	t.Run("native", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger, err := New(Options{Backend: "zap", Format: "json", Output: buf})
		require.NoError(t, err)

		With(logger, "protocol", "rwav").Info("allocated", "families", 2)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "rwav", entry["protocol"])
		require.InDelta(t, 2, entry["families"], 0)
	})

	t.Run("foreign logger", func(t *testing.T) {
		rec := &recordingLogger{}
		With(rec, "protocol", "line").Info("allocated", "families", 2)
		require.Equal(t, [][]any{{"families", 2, "protocol", "line"}}, rec.calls)
	})

	t.Run("no fields", func(t *testing.T) {
		rec := &recordingLogger{}
		require.Same(t, types.Logger(rec), With(rec))
	})
}
