package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// DefaultSeed is used when Config.Seed is 0.
const DefaultSeed int64 = 42

// MinEquationLength is the shortest equation: operand operator operand.
const MinEquationLength = 3

// Config controls equation shape. Lengths count tokens (operands plus operators).
type Config struct {
	MinValue  int
	MaxValue  int
	MinLength int
	MaxLength int
	Seed      int64
}

// DefaultConfig matches the published experiments: components in [-1, 1], which
// maximises the chance of a zero divisor, and lengths 3 to 203.
func DefaultConfig() Config {
	return Config{
		MinValue:  -1,
		MaxValue:  1,
		MinLength: MinEquationLength,
		MaxLength: 203,
		Seed:      DefaultSeed,
	}
}

// Validate checks the value and length ranges.
func (c Config) Validate() error {
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, c.MinValue, c.MaxValue)
	}
	if c.MaxLength < 1 || c.MinLength > c.MaxLength {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidLength, c.MinLength, c.MaxLength)
	}
	return nil
}

// Generator draws equations from a seeded source.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	lengths []int
}

// New validates cfg and seeds a generator.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	var lengths []int
	for l := cfg.MinLength; l <= cfg.MaxLength; l++ {
		if l%2 == 1 {
			lengths = append(lengths, l)
		}
	}
	if len(lengths) == 0 {
		lengths = []int{MinEquationLength}
	}

	return &Generator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		lengths: lengths,
	}, nil
}

// NormalizeLength raises length to at least MinEquationLength and makes it odd.
func NormalizeLength(length int) int {
	if length < MinEquationLength {
		length = MinEquationLength
	}
	if length%2 == 0 {
		length++
	}
	return length
}

// Equation returns one equation of NormalizeLength(length) tokens.
// Even positions (1-based) hold operators, odd positions hold operands.
func (g *Generator) Equation(length int) string {
	length = NormalizeLength(length)

	fields := make([]string, length)
	for i := range fields {
		if i%2 == 1 {
			fields[i] = domain.Operators[g.rng.Intn(len(domain.Operators))].String()
			continue
		}
		x, y, z := g.value(), g.value(), g.value()
		fields[i] = algebra.FromInts(x, y, z).String()
	}
	return strings.Join(fields, " ")
}

// Next returns an equation whose length is drawn uniformly from the odd lengths
// in [MinLength, MaxLength].
func (g *Generator) Next() string {
	return g.Equation(g.lengths[g.rng.Intn(len(g.lengths))])
}

// Generate returns the next n equations.
func (g *Generator) Generate(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Next())
	}
	return out
}

func (g *Generator) value() int64 {
	return int64(g.cfg.MinValue + g.rng.Intn(g.cfg.MaxValue-g.cfg.MinValue+1))
}

// Generate creates a generator from cfg and returns n equations.
func Generate(cfg Config, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(n), nil
}

// CountDivisions reports how many equations contain at least one division and the
// total number of division operators. A division operator is a zero-division
// candidate; whether the divisor evaluates to zero is only known after evaluation.
func CountDivisions(equations []string) (withDivision, total int) {
	for _, eq := range equations {
		n := 0
		for _, field := range strings.Fields(eq) {
			if field == domain.OpDiv.String() {
				n++
			}
		}
		if n > 0 {
			withDivision++
		}
		total += n
	}
	return withDivision, total
}
