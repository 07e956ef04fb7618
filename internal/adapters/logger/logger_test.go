package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/adapters/logger"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{
			name:       "simple message",
			msg:        "some message",
			goldenName: "info_basic",
		},
		{
			name:       "message with attributes",
			msg:        "compiled group",
			args:       []any{"units", 3, "backend", "native"},
			goldenName: "info_attrs",
		},
		{
			name:       "multiline message",
			msg:        "line1\nline2",
			goldenName: "info_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{
			name:       "simple warning",
			msg:        "some warning",
			goldenName: "warn_basic",
		},
		{
			name:       "warning with attributes",
			msg:        "cache disabled",
			args:       []any{"mode", "identity"},
			goldenName: "warn_attrs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Warn(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Debug(t *testing.T) {
	t.Run("filtered at info level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Debug("native compile failed", "reason", "unsupported")

		assert.Empty(t, buf.String())
	})

	t.Run("written at debug level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetLevel(slog.LevelDebug)
		lg.Debug("native compile failed", "reason", "unsupported")

		g := goldie.New(t)
		g.Assert(t, "debug_enabled", buf.Bytes())
	})
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("database connection failed"),
					"failed to load user data",
				),
				"failed to process request",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "two level chain",
			err: zerr.Wrap(
				errors.New("underlying cause"),
				"wrapped message",
			),
			goldenName: "error_chain_zerr_two",
		},
		{
			name: "stdlib chain",
			err: fmt.Errorf("failed to initialize service: %w",
				fmt.Errorf("failed to connect to database: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_WithMetadata(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name: "metadata on main error",
			err: zerr.With(
				zerr.Wrap(errors.New("connection refused"), domain.ErrCompileFailed.Error()),
				"output", "u",
			),
			goldenName: "error_metadata_main",
		},
		{
			name: "sorted metadata keys",
			err: func() error {
				e := zerr.New("validation failed")
				e = zerr.With(e, "zebra", "z")
				e = zerr.With(e, "alpha", "a")
				e = zerr.With(e, "mike", "m")
				return e
			}(),
			goldenName: "error_metadata_sorted",
		},
		{
			name:       "metadata on a standard error",
			err:        zerr.With(errors.New("boom"), "k", 1),
			goldenName: "error_metadata_stdlib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON_WithErrorChain(t *testing.T) {
	innerErr := errors.New("database connection failed")
	middleErr := zerr.Wrap(innerErr, "failed to load user data")
	outerErr := zerr.With(middleErr, "user_id", "12345")

	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(outerErr)

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, "failed to load user data")
	assert.Contains(t, output, "user_id")
	assert.NotContains(t, output, "✗", "JSON format should not have pretty markers")
}

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name      string
		format    domain.LogFormat
		level     domain.LogLevel
		wantJSON  bool
		wantDebug bool
		wantInfo  bool
	}{
		{name: "pretty info", format: domain.LogPretty, level: domain.LevelInfo, wantInfo: true},
		{name: "json debug", format: domain.LogJSON, level: domain.LevelDebug, wantJSON: true, wantDebug: true, wantInfo: true},
		{name: "pretty warn", format: domain.LogPretty, level: domain.LevelWarn},
		{name: "json error", format: domain.LogJSON, level: domain.LevelError, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Configure(tt.format, tt.level)

			lg.Debug("debug line")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))

			lg.Info("info line")
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")))

			lg.Error(errors.New("error line"))
			assert.Contains(t, buf.String(), "error line")
			assert.Equal(t, tt.wantJSON, bytes.Contains(buf.Bytes(), []byte(`"level":"ERROR"`)))
		})
	}
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")
	assert.Contains(t, backToPrettyOutput, "✗")
}

func TestLogger_SetOutput_NilDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch i % 4 {
			case 0:
				lg.Info("concurrent info")
			case 1:
				lg.Warn("concurrent warn")
			case 2:
				lg.Error(errors.New("concurrent error"))
			default:
				lg.SetJSON(i%2 == 0)
			}
		}()
	}
	wg.Wait()
}
