package runner

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcluster/clustering"
	"github.com/katalvlaran/lvcluster/corpus"
	"github.com/katalvlaran/lvcluster/metric"
)

// ErrInvalidConfig indicates a configuration that cannot be run.
var ErrInvalidConfig = errors.New("runner: invalid config")

// Config describes a batch run.
type Config struct {
	DataGlob    string   `yaml:"data_glob"`
	ResultsDir  string   `yaml:"results_dir"`
	Clusters    int      `yaml:"clusters"`
	LowerBound  int      `yaml:"frequency_lower_bound"`
	UpperBound  int      `yaml:"frequency_upper_bound"`
	Seed        int64    `yaml:"seed"`
	Methods     []string `yaml:"methods"`
	Metrics     []string `yaml:"metrics"`
	Database    string   `yaml:"database"`
	Parallelism int      `yaml:"parallelism"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		DataGlob:   "data/test*",
		ResultsDir: "results",
		Clusters:   5,
		LowerBound: corpus.DefaultLowerBound,
		UpperBound: corpus.DefaultUpperBound,
		Seed:       clustering.DefaultSeed,
		Methods:    clustering.Methods(),
		Metrics:    []string{metric.NameEuclidean, metric.NameCityBlock, metric.NameCorrelation},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected. An empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Validate reports the first problem that would prevent a run.
func (c Config) Validate() error {
	switch {
	case c.DataGlob == "":
		return errors.Wrap(ErrInvalidConfig, "data_glob is empty")
	case c.ResultsDir == "":
		return errors.Wrap(ErrInvalidConfig, "results_dir is empty")
	case c.Clusters < 1:
		return errors.Wrapf(ErrInvalidConfig, "clusters=%d must be at least 1", c.Clusters)
	case c.LowerBound > c.UpperBound:
		return errors.Wrapf(ErrInvalidConfig, "frequency bounds [%d,%d] are inverted", c.LowerBound, c.UpperBound)
	case len(c.Methods) == 0:
		return errors.Wrap(ErrInvalidConfig, "no methods")
	case len(c.Metrics) == 0:
		return errors.Wrap(ErrInvalidConfig, "no metrics")
	case c.Parallelism < 0:
		return errors.Wrapf(ErrInvalidConfig, "parallelism=%d is negative", c.Parallelism)
	}
	for _, m := range c.Methods {
		if _, err := CanonicalMethod(m); err != nil {
			return err
		}
	}
	for _, m := range c.Metrics {
		if _, err := metric.Canonical(m); err != nil {
			return errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}

	return nil
}

// CanonicalMethod maps a method name, including the report spellings
// "Agglomerative" and "k-Means", onto a clustering method constant.
func CanonicalMethod(name string) (string, error) {
	switch strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name)) {
	case clustering.MethodAgglomerative:
		return clustering.MethodAgglomerative, nil
	case clustering.MethodCentroid, "kmeans":
		return clustering.MethodCentroid, nil
	default:
		return "", errors.Wrapf(ErrInvalidConfig, "unknown method %q", name)
	}
}
