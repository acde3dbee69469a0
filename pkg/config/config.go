package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"titanicprep/pkg/dataprep"
)

// EnvPrefix prefixes every environment override, e.g. TITANIC_LOGGING_LEVEL.
const EnvPrefix = "TITANIC"

// Config represents the complete application configuration.
type Config struct {
	Input    InputConfig   `yaml:"input"`
	Output   OutputConfig  `yaml:"output"`
	Features FeatureConfig `yaml:"features"`
	Logging  LoggingConfig `yaml:"logging"`
}

// InputConfig locates the raw passenger table.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls what the example command produces.
// Env names come from field names, e.g. TITANIC_OUTPUT_CHARTS_DIR.
type OutputConfig struct {
	Mode      string `yaml:"mode"`
	Path      string `yaml:"path"`
	Preview   int    `yaml:"preview"`
	ChartsDir string `yaml:"charts_dir" split_words:"true"`
}

// FeatureConfig tunes feature derivation.
type FeatureConfig struct {
	ChildMaxAge float64 `yaml:"child_max_age" split_words:"true"`

	// ExtraTitles adds raw titles to the normalization table, e.g. Dona: Mrs.
	ExtraTitles map[string]string `yaml:"extra_titles" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Input:    InputConfig{Path: "train.csv"},
		Output:   OutputConfig{Mode: "cli", Preview: 5},
		Features: FeatureConfig{ChildMaxAge: dataprep.DefaultChildMaxAge},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and TITANIC_* environment variables, in that order of
// precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// fields without a matching variable keep their current value
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for impossible values.
func (c *Config) Validate() error {
	var errs []error
	if c.Input.Path == "" {
		errs = append(errs, errors.New("input.path is required"))
	}
	if !slices.Contains([]string{"cli", "csv"}, c.Output.Mode) {
		errs = append(errs, fmt.Errorf("output.mode %q must be cli or csv", c.Output.Mode))
	}
	if c.Output.Preview < 0 {
		errs = append(errs, fmt.Errorf("output.preview %d must not be negative", c.Output.Preview))
	}
	if c.Features.ChildMaxAge < 0 {
		errs = append(errs, fmt.Errorf("features.child_max_age %v must not be negative", c.Features.ChildMaxAge))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("logging.level %q is not a known level", c.Logging.Level))
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(c.Logging.Format)) {
		errs = append(errs, fmt.Errorf("logging.format %q must be json or text", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// TitleMap returns the default title normalization table extended by
// Features.ExtraTitles.
func (c *Config) TitleMap(cm *dataprep.CategoricalMap) (*dataprep.TitleMap, error) {
	if len(c.Features.ExtraTitles) == 0 {
		return dataprep.DefaultTitleMap(), nil
	}
	return dataprep.DefaultTitleMap().With(c.Features.ExtraTitles, cm)
}
