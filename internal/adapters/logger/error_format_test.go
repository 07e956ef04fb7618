package logger_test

import (
	"errors"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata on standard error moves to the cause",
			err:          zerr.With(errors.New("boom"), "k", 1),
			wantMessages: []string{"boom"},
			wantMetadata: []map[string]any{{"k": 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			require.Len(t, entries, len(tt.wantMessages))
			for i, e := range entries {
				assert.Equal(t, tt.wantMessages[i], e.Message())
				assert.Equal(t, tt.wantMetadata[i], e.Metadata())
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(errors.New("inner"), "outer"))
	assert.Equal(t, "Error: outer\n\n  Caused by:\n    → inner", logger.FormatErrorEntries(entries))
}
