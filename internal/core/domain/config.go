package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// CacheKeyMode selects how compiled evaluators are keyed.
type CacheKeyMode string

const (
	// CacheKeyIdentity keys on expression identity: separately built trees never share an entry.
	CacheKeyIdentity CacheKeyMode = "identity"
	// CacheKeyStructural keys on the structural fingerprint of the tree.
	CacheKeyStructural CacheKeyMode = "structural"
)

// LogFormat selects the log renderer.
type LogFormat string

// Log renderers.
const (
	LogPretty LogFormat = "pretty"
	LogJSON   LogFormat = "json"
)

// LogLevel is the minimum severity that is logged.
type LogLevel string

// Log levels.
const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// HistogramMode selects how input distributions are recorded.
type HistogramMode string

// Histogram modes.
const (
	HistogramsOff    HistogramMode = "off"
	HistogramsLinear HistogramMode = "linear"
	HistogramsLog2   HistogramMode = "log2"
)

// Output is one named expression to compile.
type Output struct {
	Name string
	Expr Expr
}

// Config is the validated run configuration.
type Config struct {
	Version    string
	CacheKey   CacheKeyMode
	Native     bool
	Chunk      int
	LogFormat  LogFormat
	LogLevel   LogLevel
	Histograms HistogramMode
	Args       ArgList
	Outputs    []Output
}

// DefaultConfig returns the configuration used when a field is not set.
func DefaultConfig() *Config {
	return &Config{
		Version:    "1",
		CacheKey:   CacheKeyIdentity,
		Native:     true,
		LogFormat:  LogPretty,
		LogLevel:   LevelInfo,
		Histograms: HistogramsOff,
	}
}

// Exprs returns the output expressions in declaration order.
func (c *Config) Exprs() []Expr {
	out := make([]Expr, len(c.Outputs))
	for i, o := range c.Outputs {
		out[i] = o.Expr
	}
	return out
}

// Validate checks every option against its allowed values.
func (c *Config) Validate() error {
	if err := checkOption("cache.key", c.CacheKey, CacheKeyIdentity, CacheKeyStructural); err != nil {
		return err
	}
	if err := checkOption("log.format", c.LogFormat, LogPretty, LogJSON); err != nil {
		return err
	}
	if err := checkOption("log.level", c.LogLevel, LevelDebug, LevelInfo, LevelWarn, LevelError); err != nil {
		return err
	}
	if err := checkOption("monitor.histograms", c.Histograms, HistogramsOff, HistogramsLinear, HistogramsLog2); err != nil {
		return err
	}
	if c.Chunk < 0 {
		err := zerr.With(ErrUnsupportedOption, "option", "backend.chunk")
		return zerr.With(err, "value", c.Chunk)
	}
	if len(c.Outputs) == 0 {
		return ErrNoOutputs
	}
	return nil
}

func checkOption[T ~string](name string, value T, allowed ...T) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	err := zerr.With(ErrUnsupportedOption, "option", name)
	err = zerr.With(err, "value", string(value))
	return zerr.With(err, "allowed", allowed)
}
