// Package config loads the list timing harness configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pavanmanishd/arraylist/internal/logutil"
)

const (
	DefaultElements             = 10_000_000
	DefaultOperations           = 100
	DefaultIterationRemovalRate = 0.0001

	FormatText = "text"
	FormatTree = "tree"
)

// DefaultImplementations are measured when the configuration names none.
var DefaultImplementations = []string{"linkedlist", "arraylist"}

// Config drives one run of the timing harness.
type Config struct {
	// Seed initialises a fresh random source for every implementation.
	Seed int64 `toml:"seed" yaml:"seed"`
	// Elements is the number of random ints each list is filled with.
	Elements int `toml:"elements" yaml:"elements"`
	// Operations is the number of random accesses and random removals.
	Operations int `toml:"operations" yaml:"operations"`
	// IterationRemovalRate is the probability of removing each element
	// while iterating.
	IterationRemovalRate float64 `toml:"iteration-removal-rate" yaml:"iteration-removal-rate"`

	Implementations []string `toml:"implementations" yaml:"implementations"`
	// Workers bounds how many implementations are measured at once.
	Workers int    `toml:"workers" yaml:"workers"`
	Format  string `toml:"format" yaml:"format"`

	Log logutil.LogConfig `toml:"log" yaml:"log"`
}

// Default returns the reference harness settings.
func Default() Config {
	return Config{
		Seed:                 0,
		Elements:             DefaultElements,
		Operations:           DefaultOperations,
		IterationRemovalRate: DefaultIterationRemovalRate,
		Implementations:      append([]string(nil), DefaultImplementations...),
		Workers:              1,
		Format:               FormatText,
		Log:                  logutil.DefaultLogConfig(),
	}
}

// Load reads the file at path on top of Default. The format follows the
// extension: .toml, or .yaml/.yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode toml config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode yaml config %s", path)
		}
	default:
		return cfg, errors.Errorf("unsupported config extension %q", ext)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration can be run.
func (c *Config) Validate() error {
	if c.Elements <= 0 {
		return errors.Errorf("elements must be positive, got %d", c.Elements)
	}
	if c.Operations < 0 {
		return errors.Errorf("operations must not be negative, got %d", c.Operations)
	}
	if c.Operations > c.Elements {
		return errors.Errorf("operations (%d) must not exceed elements (%d)", c.Operations, c.Elements)
	}
	if c.IterationRemovalRate < 0 || c.IterationRemovalRate > 1 {
		return errors.Errorf("iteration-removal-rate must be within [0, 1], got %g", c.IterationRemovalRate)
	}
	if len(c.Implementations) == 0 {
		return errors.New("no implementations configured")
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Format {
	case FormatText, FormatTree:
	default:
		return errors.Errorf("unsupported format %q", c.Format)
	}
	return nil
}
