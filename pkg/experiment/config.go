package experiment

import (
	"errors"
	"fmt"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/generator"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Config describes an experiment. Simulation s (1-based) uses equations of
// BaseLength + (s-1)*LengthIncrement tokens generated with seed Seed+s.
type Config struct {
	Simulations     int
	EquationsPerSim int
	BaseLength      int
	LengthIncrement int
	MinValue        int
	MaxValue        int
	Seed            int64
	// Workers is passed to the batch runner; 0 means one per CPU.
	Workers int
}

// DefaultConfig returns the published setup: 20 simulations of 1000 equations,
// L = 5, 25, ..., 385, components in [-1, 1], seed 42.
func DefaultConfig() Config {
	return Config{
		Simulations:     20,
		EquationsPerSim: 1000,
		BaseLength:      5,
		LengthIncrement: 20,
		MinValue:        -1,
		MaxValue:        1,
		Seed:            generator.DefaultSeed,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Simulations < 1:
		return fmt.Errorf("%w: simulations must be positive, got %d", ErrInvalidConfig, c.Simulations)
	case c.EquationsPerSim < 1:
		return fmt.Errorf("%w: equations per simulation must be positive, got %d", ErrInvalidConfig, c.EquationsPerSim)
	case c.BaseLength < generator.MinEquationLength:
		return fmt.Errorf("%w: base length must be at least %d, got %d", ErrInvalidConfig, generator.MinEquationLength, c.BaseLength)
	case c.LengthIncrement < 0:
		return fmt.Errorf("%w: negative length increment %d", ErrInvalidConfig, c.LengthIncrement)
	case c.MinValue > c.MaxValue:
		return fmt.Errorf("%w: min value %d > max value %d", ErrInvalidConfig, c.MinValue, c.MaxValue)
	}
	return nil
}

// Length returns the equation length of simulation sim.
func (c Config) Length(sim int) int {
	return c.BaseLength + (sim-1)*c.LengthIncrement
}

func (c Config) generatorConfig(sim int) generator.Config {
	l := c.Length(sim)
	return generator.Config{
		MinValue:  c.MinValue,
		MaxValue:  c.MaxValue,
		MinLength: l,
		MaxLength: l,
		Seed:      c.Seed + int64(sim),
	}
}
