// Package app implements the application layer for lambdify.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/j3din00b/modulus-sym/internal/adapters/telemetry"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"github.com/j3din00b/modulus-sym/internal/engine/compiler"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/zerr"
)

// configurable is implemented by loggers whose format and level follow the config file.
type configurable interface {
	Configure(format domain.LogFormat, level domain.LogLevel)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	compilers    *compiler.Factory
	table        ports.Table
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	compilers *compiler.Factory,
	table ports.Table,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		compilers:    compilers,
		table:        table,
	}
}

// EvalOptions configuration for the Eval method.
type EvalOptions struct {
	ConfigPath  string
	Input       io.Reader
	Output      io.Writer
	MetricsPath string
}

// Eval compiles the configured outputs once, evaluates them over the input
// table and writes one column per output component.
func (a *App) Eval(ctx context.Context, opts EvalOptions) error {
	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if c, ok := a.logger.(configurable); ok {
		c.Configure(cfg.LogFormat, cfg.LogLevel)
	}

	// 2. Initialize telemetry
	tp := telemetry.Install(telemetry.NewBridge(a.logger))
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	registry := prometheus.NewRegistry()
	metrics, err := telemetry.NewPromMetrics(registry, cfg.Histograms)
	if err != nil {
		return err
	}

	// 3. Build the compiler
	comp, err := a.compilers.Build(cfg, metrics)
	if err != nil {
		return err
	}

	// 4. Read inputs
	inputs, err := a.table.Read(opts.Input)
	if err != nil {
		return err
	}
	for _, name := range inputs.Names() {
		metrics.ObserveInput(name, inputs[name].Floats())
	}

	// 5. Compile and evaluate
	ev, err := comp.CompileGroup(ctx, cfg.Exprs(), cfg.Args)
	if err != nil {
		return err
	}
	out, err := ev.Eval(inputs)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEvaluationFailed.Error())
	}

	// 6. Write outputs
	header := a.header(cfg.Outputs, out)
	if err := a.table.Write(opts.Output, header, out); err != nil {
		return err
	}
	a.logger.Info("evaluated outputs", "outputs", len(cfg.Outputs), "columns", len(header))

	if opts.MetricsPath != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsPath, registry); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", opts.MetricsPath)
		}
	}
	return nil
}

// header names the output columns. List outputs contribute one column per
// item. When the widths disagree with the evaluated array, columns are
// numbered instead.
func (a *App) header(outputs []domain.Output, out domain.Array) []string {
	var header []string
	for _, o := range outputs {
		t, ok := o.Expr.(*domain.Tuple)
		if !ok {
			header = append(header, o.Name)
			continue
		}
		for i := range t.Args() {
			header = append(header, fmt.Sprintf("%s[%d]", o.Name, i))
		}
	}

	width := 1
	if shape := out.Shape(); len(shape) > 1 {
		width = shape[len(shape)-1]
	}
	if width == len(header) {
		return header
	}

	a.logger.Warn("output width does not match configured outputs", "columns", width, "outputs", len(header))
	header = make([]string, width)
	for i := range header {
		header[i] = fmt.Sprintf("c%d", i)
	}
	return header
}
