package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/adapters/config"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lambdify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func TestLoader_Load(t *testing.T) {
	path := writeConfig(t, `
version: "1"
cache:
  key: structural
backend:
  native: false
  chunk: 256
log:
  format: json
  level: debug
monitor:
  histograms: log2
args: [y, [a, b], x]
outputs:
  u: "sin(x) * y"
  mask: "Heaviside(x - 0.5, 0)"
  pair: "[a, b]"
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.CacheKeyStructural, cfg.CacheKey)
	assert.False(t, cfg.Native)
	assert.Equal(t, 256, cfg.Chunk)
	assert.Equal(t, domain.LogJSON, cfg.LogFormat)
	assert.Equal(t, domain.LevelDebug, cfg.LogLevel)
	assert.Equal(t, domain.HistogramsLog2, cfg.Histograms)
	assert.Equal(t, []string{"y", "a", "b", "x"}, domain.ResolveArgs(cfg.Args))

	require.Len(t, cfg.Outputs, 3)
	assert.Equal(t, "u", cfg.Outputs[0].Name)
	assert.Equal(t, "(sin(x)*y)", cfg.Outputs[0].Expr.String())
	assert.Equal(t, "mask", cfg.Outputs[1].Name)
	assert.Equal(t, "Heaviside((x + (-1*0.5)), 0)", cfg.Outputs[1].Expr.String())
	assert.Equal(t, "pair", cfg.Outputs[2].Name)
	assert.Equal(t, "[a, b]", cfg.Outputs[2].Expr.String())
}

func TestLoader_Load_Defaults(t *testing.T) {
	path := writeConfig(t, `
outputs:
  z: "y + x"
  w: "x * t"
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.CacheKeyIdentity, cfg.CacheKey)
	assert.True(t, cfg.Native)
	assert.Equal(t, domain.LogPretty, cfg.LogFormat)
	assert.Equal(t, domain.LevelInfo, cfg.LogLevel)
	assert.Equal(t, domain.HistogramsOff, cfg.Histograms)
	assert.Equal(t, []string{"t", "x", "y"}, domain.ResolveArgs(cfg.Args))
	assert.Equal(t, "z", cfg.Outputs[0].Name)
	assert.Equal(t, "w", cfg.Outputs[1].Name)
}

func TestLoader_Load_WarnsOnUnknownVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("unknown configuration version", "version", "2", "supported", "1")

	path := writeConfig(t, `
version: "2"
outputs:
  u: "x"
`)
	_, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		option  string
	}{
		{
			name:    "invalid yaml",
			content: "outputs: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "outputs is not a mapping",
			content: "outputs: [x]",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "duplicate output",
			content: "outputs:\n  u: x\n  u: y\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "bad expression",
			content: "outputs:\n  u: \"x +\"\n",
			wantErr: domain.ErrExpressionParseFailed,
		},
		{
			name:    "no outputs",
			content: "version: \"1\"\n",
			wantErr: domain.ErrNoOutputs,
		},
		{
			name:    "unknown histogram mode",
			content: "monitor:\n  histograms: cubic\noutputs:\n  u: x\n",
			wantErr: domain.ErrUnsupportedOption,
			option:  "monitor.histograms",
		},
		{
			name:    "unknown cache key",
			content: "cache:\n  key: pointer\noutputs:\n  u: x\n",
			wantErr: domain.ErrUnsupportedOption,
			option:  "cache.key",
		},
		{
			name:    "bad args entry",
			content: "args:\n  - {a: b}\noutputs:\n  u: x\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			if tt.option != "" {
				var zErr *zerr.Error
				require.ErrorAs(t, err, &zErr)
				assert.Equal(t, tt.option, zErr.Metadata()["option"])
			}
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
