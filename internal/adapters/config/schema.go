package config

import (
	"gopkg.in/yaml.v3"
)

// Lambdafile represents the structure of the lambdify.yaml configuration file.
type Lambdafile struct {
	Version string     `yaml:"version"`
	Cache   CacheDTO   `yaml:"cache"`
	Backend BackendDTO `yaml:"backend"`
	Log     LogDTO     `yaml:"log"`
	Monitor MonitorDTO `yaml:"monitor"`
	Args    []ArgDTO   `yaml:"args"`
	// Outputs is kept as a node so the declaration order survives decoding.
	Outputs yaml.Node `yaml:"outputs"`
}

// CacheDTO configures the evaluator cache.
type CacheDTO struct {
	Key string `yaml:"key"`
}

// BackendDTO configures the native backend.
type BackendDTO struct {
	Native *bool `yaml:"native"`
	Chunk  int   `yaml:"chunk"`
}

// LogDTO configures the logger.
type LogDTO struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// MonitorDTO configures input monitoring.
type MonitorDTO struct {
	Histograms string `yaml:"histograms"`
}

// ArgDTO is one argument entry: a name, or a list of names forming a tuple.
type ArgDTO struct {
	Names []string
	Tuple bool
}

// UnmarshalYAML accepts a scalar name or a sequence of names.
func (a *ArgDTO) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		a.Names = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		a.Tuple = true
		return value.Decode(&a.Names)
	}
	return &yaml.TypeError{Errors: []string{"args entries must be names or lists of names"}}
}
