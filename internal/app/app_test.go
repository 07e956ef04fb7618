package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/adapters/interp"
	"github.com/j3din00b/modulus-sym/internal/adapters/logger"
	"github.com/j3din00b/modulus-sym/internal/adapters/table"
	"github.com/j3din00b/modulus-sym/internal/adapters/telemetry"
	"github.com/j3din00b/modulus-sym/internal/app"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"github.com/j3din00b/modulus-sym/internal/core/ports/mocks"
	"github.com/j3din00b/modulus-sym/internal/engine/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *domain.Config {
	x, y := domain.Sym("x"), domain.Sym("y")
	cfg := domain.DefaultConfig()
	cfg.Args = domain.Names("x", "y")
	cfg.Outputs = []domain.Output{
		{Name: "u", Expr: domain.Mul(domain.Num(2), x)},
		{Name: "mask", Expr: domain.Fn("Heaviside", domain.Sub(x, domain.Num(0.5)), domain.Num(0))},
		{Name: "pair", Expr: domain.List(x, y)},
	}
	return cfg
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func newApp(loader ports.ConfigLoader, log ports.Logger) *app.App {
	return app.New(loader, log, compiler.NewFactory(interp.New(), log, telemetry.NewNoOpTracer()), table.New())
}

func TestApp_Eval(t *testing.T) {
	tests := []struct {
		name   string
		native bool
	}{
		{name: "native", native: true},
		{name: "interpreted only", native: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := mocks.NewMockConfigLoader(ctrl)

			cfg := testConfig()
			cfg.Native = tt.native
			loader.EXPECT().Load("lambdify.yaml").Return(cfg, nil)

			var out bytes.Buffer
			err := newApp(loader, quietLogger(ctrl)).Eval(context.Background(), app.EvalOptions{
				ConfigPath: "lambdify.yaml",
				Input:      strings.NewReader("x,y\n0,1\n1,2\n"),
				Output:     &out,
			})
			require.NoError(t, err)
			assert.Equal(t, "u,mask,pair[0],pair[1]\n0,0,0,1\n2,1,1,2\n", out.String())
		})
	}
}

func TestApp_EvalWritesMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	cfg := testConfig()
	cfg.Histograms = domain.HistogramsLinear
	loader.EXPECT().Load("lambdify.yaml").Return(cfg, nil)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	err := newApp(loader, quietLogger(ctrl)).Eval(context.Background(), app.EvalOptions{
		ConfigPath:  "lambdify.yaml",
		Input:       strings.NewReader("x,y\n0,1\n"),
		Output:      new(bytes.Buffer),
		MetricsPath: path,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `lambdify_cache_misses_total{kind="symbolic"} 3`)
	assert.Contains(t, text, `lambdify_fallbacks_total{reason="Heaviside"} 1`)
	assert.Contains(t, text, `lambdify_input_values_count{input="x",scale="linear"} 1`)
}

func TestApp_EvalConfiguresLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	cfg := testConfig()
	cfg.LogFormat = domain.LogJSON
	cfg.LogLevel = domain.LevelDebug
	loader.EXPECT().Load("lambdify.yaml").Return(cfg, nil)

	log, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	var logs bytes.Buffer
	log.SetOutput(&logs)

	err := newApp(loader, log).Eval(context.Background(), app.EvalOptions{
		ConfigPath: "lambdify.yaml",
		Input:      strings.NewReader("x,y\n0,1\n"),
		Output:     new(bytes.Buffer),
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"native compile failed, using interpreter"`)
	assert.Contains(t, logs.String(), `"msg":"evaluated outputs"`)
}

func TestApp_EvalNumbersUnexpectedColumns(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := quietLogger(ctrl)
	log.EXPECT().Warn("output width does not match configured outputs", "columns", 2, "outputs", 1)

	twice := domain.Func("twice", []string{"x"}, func(in domain.Inputs) (domain.Array, error) {
		return domain.Concat([]domain.Array{in["x"], in["x"]})
	})
	cfg := domain.DefaultConfig()
	cfg.Args = domain.Names("x")
	cfg.Outputs = []domain.Output{{Name: "w", Expr: twice}}
	loader.EXPECT().Load("lambdify.yaml").Return(cfg, nil)

	var out bytes.Buffer
	err := newApp(loader, log).Eval(context.Background(), app.EvalOptions{
		ConfigPath: "lambdify.yaml",
		Input:      strings.NewReader("x\n3\n"),
		Output:     &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "c0,c1\n3,3\n", out.String())
}

func TestApp_EvalErrors(t *testing.T) {
	tests := []struct {
		name    string
		load    func(*mocks.MockConfigLoader)
		input   string
		wantErr string
	}{
		{
			name: "config load fails",
			load: func(l *mocks.MockConfigLoader) {
				l.EXPECT().Load("lambdify.yaml").Return(nil, errors.New("load failed"))
			},
			wantErr: "failed to load configuration",
		},
		{
			name: "unreadable input",
			load: func(l *mocks.MockConfigLoader) {
				l.EXPECT().Load("lambdify.yaml").Return(testConfig(), nil)
			},
			input:   "x,y\n1,abc\n",
			wantErr: domain.ErrInputReadFailed.Error(),
		},
		{
			name: "missing input column",
			load: func(l *mocks.MockConfigLoader) {
				l.EXPECT().Load("lambdify.yaml").Return(testConfig(), nil)
			},
			input:   "x\n1\n",
			wantErr: domain.ErrMissingInput.Error(),
		},
		{
			name: "unsupported cache key",
			load: func(l *mocks.MockConfigLoader) {
				cfg := testConfig()
				cfg.CacheKey = "pointer"
				l.EXPECT().Load("lambdify.yaml").Return(cfg, nil)
			},
			input:   "x,y\n1,2\n",
			wantErr: domain.ErrUnsupportedOption.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := mocks.NewMockConfigLoader(ctrl)
			tt.load(loader)

			err := newApp(loader, quietLogger(ctrl)).Eval(context.Background(), app.EvalOptions{
				ConfigPath: "lambdify.yaml",
				Input:      strings.NewReader(tt.input),
				Output:     new(bytes.Buffer),
			})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
