package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/adapters/telemetry"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// debugRecorder keeps the last debug record.
type debugRecorder struct {
	messages []string
	args     []any
}

func (r *debugRecorder) Debug(msg string, args ...any) {
	r.messages = append(r.messages, msg)
	r.args = args
}
func (r *debugRecorder) Info(string, ...any) {}
func (r *debugRecorder) Warn(string, ...any) {}
func (r *debugRecorder) Error(error)         {}

func TestBridge_LogsFinishedSpans(t *testing.T) {
	log := &debugRecorder{}

	previous := otel.GetTracerProvider()
	tp := telemetry.Install(telemetry.NewBridge(log))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(previous)
	})

	tracer := telemetry.NewOTelTracer("bridge-test")
	_, span := tracer.Start(context.Background(), "compile_unit", ports.WithAttribute("kind", "symbolic"))
	span.RecordError(errors.New("boom"))
	span.End()

	require.Equal(t, []string{"span finished"}, log.messages)
	got := log.args
	require.NotEmpty(t, got)
	assert.Equal(t, "span", got[0])
	assert.Equal(t, "compile_unit", got[1])
	assert.Contains(t, got, "kind")
	assert.Contains(t, got, "symbolic")
	assert.Equal(t, "boom", got[len(got)-1])
}

func TestBridge_NilLogger(t *testing.T) {
	b := telemetry.NewBridge(nil)
	assert.NotPanics(t, func() {
		b.OnEnd(nil)
	})
	require.NoError(t, b.ForceFlush(context.Background()))
	require.NoError(t, b.Shutdown(context.Background()))
}
