// Package config loads dbzcalc settings from defaults and an optional YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/experiment"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/generator"
)

// ErrUnsupportedFormat is returned for a config file that is neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config is the full set of settings. Flags override it field by field.
type Config struct {
	Algebra    AlgebraConfig    `mapstructure:"algebra"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
	Bench      BenchConfig      `mapstructure:"bench"`
}

type AlgebraConfig struct {
	// Rule names the product rule for p-valued operands: absorbing or table16.
	Rule string `mapstructure:"rule"`
}

type GeneratorConfig struct {
	Count     int   `mapstructure:"count"`
	MinValue  int   `mapstructure:"min_value"`
	MaxValue  int   `mapstructure:"max_value"`
	MinLength int   `mapstructure:"min_length"`
	MaxLength int   `mapstructure:"max_length"`
	Seed      int64 `mapstructure:"seed"`
}

type ExperimentConfig struct {
	Simulations     int   `mapstructure:"simulations"`
	EquationsPerSim int   `mapstructure:"equations_per_sim"`
	BaseLength      int   `mapstructure:"base_length"`
	LengthIncrement int   `mapstructure:"length_increment"`
	MinValue        int   `mapstructure:"min_value"`
	MaxValue        int   `mapstructure:"max_value"`
	Seed            int64 `mapstructure:"seed"`
}

type BenchConfig struct {
	// Workers is the batch pool size; 0 means one per CPU.
	Workers int `mapstructure:"workers"`
}

// Default returns the built-in settings.
func Default() Config {
	g := generator.DefaultConfig()
	e := experiment.DefaultConfig()
	return Config{
		Algebra: AlgebraConfig{Rule: algebra.Absorbing.Name()},
		Generator: GeneratorConfig{
			Count:     1000,
			MinValue:  g.MinValue,
			MaxValue:  g.MaxValue,
			MinLength: g.MinLength,
			MaxLength: g.MaxLength,
			Seed:      g.Seed,
		},
		Experiment: ExperimentConfig{
			Simulations:     e.Simulations,
			EquationsPerSim: e.EquationsPerSim,
			BaseLength:      e.BaseLength,
			LengthIncrement: e.LengthIncrement,
			MinValue:        e.MinValue,
			MaxValue:        e.MaxValue,
			Seed:            e.Seed,
		},
	}
}

// Load returns Default overlaid with the file at path. An empty path returns Default.
// The format follows the extension: .yaml, .yml or .toml. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	raw, err := parse(data, filepath.Ext(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func parse(data []byte, ext string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return raw, nil
}

func decode(raw map[string]interface{}, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.ProductRule(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Generator.Count < 0 {
		return fmt.Errorf("config: %w: %d", generator.ErrInvalidCount, c.Generator.Count)
	}
	if err := c.GeneratorConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.ExperimentConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ProductRule resolves Algebra.Rule.
func (c Config) ProductRule() (algebra.ProductRule, error) {
	return algebra.RuleByName(c.Algebra.Rule)
}

// GeneratorConfig converts the generator section.
func (c Config) GeneratorConfig() generator.Config {
	return generator.Config{
		MinValue:  c.Generator.MinValue,
		MaxValue:  c.Generator.MaxValue,
		MinLength: c.Generator.MinLength,
		MaxLength: c.Generator.MaxLength,
		Seed:      c.Generator.Seed,
	}
}

// ExperimentConfig converts the experiment section, taking workers from the bench section.
func (c Config) ExperimentConfig() experiment.Config {
	return experiment.Config{
		Simulations:     c.Experiment.Simulations,
		EquationsPerSim: c.Experiment.EquationsPerSim,
		BaseLength:      c.Experiment.BaseLength,
		LengthIncrement: c.Experiment.LengthIncrement,
		MinValue:        c.Experiment.MinValue,
		MaxValue:        c.Experiment.MaxValue,
		Seed:            c.Experiment.Seed,
		Workers:         c.Bench.Workers,
	}
}
