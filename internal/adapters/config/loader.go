// Package config provides the configuration loader for lambdify.
package config

import (
	"os"
	"slices"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration version this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path, parses its expressions and validates it.
func (l *Loader) Load(path string) (*domain.Config, error) {
	var file Lambdafile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg, err := l.build(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) build(file *Lambdafile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Version != "" {
		cfg.Version = file.Version
	}
	if cfg.Version != SupportedVersion {
		l.Logger.Warn("unknown configuration version", "version", cfg.Version, "supported", SupportedVersion)
	}

	if file.Cache.Key != "" {
		cfg.CacheKey = domain.CacheKeyMode(file.Cache.Key)
	}
	if file.Backend.Native != nil {
		cfg.Native = *file.Backend.Native
	}
	cfg.Chunk = file.Backend.Chunk
	if file.Log.Format != "" {
		cfg.LogFormat = domain.LogFormat(file.Log.Format)
	}
	if file.Log.Level != "" {
		cfg.LogLevel = domain.LogLevel(file.Log.Level)
	}
	if file.Monitor.Histograms != "" {
		cfg.Histograms = domain.HistogramMode(file.Monitor.Histograms)
	}

	outputs, err := parseOutputs(&file.Outputs)
	if err != nil {
		return nil, err
	}
	cfg.Outputs = outputs

	cfg.Args = buildArgs(file.Args, outputs)
	return cfg, nil
}

// parseOutputs decodes the outputs mapping in declaration order.
func parseOutputs(node *yaml.Node) ([]domain.Output, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		err := zerr.With(domain.ErrConfigParseFailed, "field", "outputs")
		return nil, zerr.With(err, "line", node.Line)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	outputs := make([]domain.Output, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := key.Value
		if seen[name] {
			err := zerr.With(domain.ErrConfigParseFailed, "duplicate_output", name)
			return nil, zerr.With(err, "line", key.Line)
		}
		seen[name] = true

		if value.Kind != yaml.ScalarNode {
			err := zerr.With(domain.ErrConfigParseFailed, "output", name)
			return nil, zerr.With(err, "line", value.Line)
		}
		expr, err := ParseExpr(value.Value)
		if err != nil {
			return nil, zerr.With(err, "output", name)
		}
		outputs = append(outputs, domain.Output{Name: name, Expr: expr})
	}
	return outputs, nil
}

// buildArgs converts the args entries. Without entries, the arguments are the
// free symbols of every output in sorted order.
func buildArgs(entries []ArgDTO, outputs []domain.Output) domain.ArgList {
	if len(entries) == 0 {
		var names []string
		for _, o := range outputs {
			names = append(names, domain.FreeSymbols(o.Expr)...)
		}
		return domain.Names(slices.Compact(domain.SortedNames(names))...)
	}

	args := make(domain.ArgList, 0, len(entries))
	for _, e := range entries {
		if e.Tuple {
			args = append(args, domain.ArgTuple(e.Names))
			continue
		}
		args = append(args, domain.ArgName(e.Names[0]))
	}
	return args
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user on the command line
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
