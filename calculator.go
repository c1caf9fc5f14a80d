package calculator

import (
	"errors"
	"fmt"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/compiler"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/internal/runtime"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// Version is the library and CLI version.
const Version = "0.3.0"

// ResultError is the result text printed for an equation aborted by division by zero.
const ResultError = "ERR"

// Machine evaluates equations under a fixed division policy.
// Both *STD and *DBZ implement it.
type Machine interface {
	Policy() algebra.DivisionPolicy
	Evaluate(equation string) (algebra.Triple, error)
}

// Option defines a functional option for configuring a machine.
type Option func(*settings)

type settings struct {
	rule algebra.ProductRule
}

// WithProductRule sets the rule used when a p-valued operand is multiplied or
// divided. The default is algebra.Absorbing.
func WithProductRule(rule algebra.ProductRule) Option {
	return func(s *settings) {
		s.rule = rule
	}
}

func newEngine(policy algebra.DivisionPolicy, opts []Option) *runtime.Engine {
	s := settings{rule: algebra.Absorbing}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rule == nil {
		s.rule = algebra.Absorbing
	}
	return runtime.NewEngine(algebra.Algebra{Policy: policy, Rule: s.rule})
}

// Program is a compiled equation: a postfix token sequence that is known to be
// well formed. Programs are immutable and may be run by any machine, any number of times.
type Program struct {
	source  string
	postfix []domain.Token
}

// Compile tokenizes an infix equation and converts it to postfix order.
// It fails with domain.ErrMalformedOperand or domain.ErrIncompleteExpression.
func Compile(equation string) (*Program, error) {
	postfix, err := compiler.Compile(equation)
	if err != nil {
		return nil, err
	}
	return &Program{source: equation, postfix: postfix}, nil
}

// Source returns the equation the program was compiled from.
func (p *Program) Source() string { return p.source }

// Postfix returns a copy of the postfix token sequence.
func (p *Program) Postfix() []domain.Token {
	return append([]domain.Token(nil), p.postfix...)
}

// Operators returns the number of operators in the program.
func (p *Program) Operators() int {
	return len(p.postfix) / 2
}

// String renders the program in postfix notation.
func (p *Program) String() string {
	return compiler.Render(p.postfix)
}

func (p *Program) tokens() []domain.Token {
	if p == nil {
		return nil
	}
	return p.postfix
}

// STD is the partial machine: a zero divisor aborts the equation.
type STD struct {
	engine *runtime.Engine
}

// NewSTD creates a machine using the STD division policy.
func NewSTD(opts ...Option) *STD {
	return &STD{engine: newEngine(algebra.STD, opts)}
}

// Policy returns algebra.STD.
func (m *STD) Policy() algebra.DivisionPolicy { return algebra.STD }

// Run evaluates a compiled program. It fails with domain.ErrDivisionByZero when a
// zero divisor is reached; no partial result is returned.
func (m *STD) Run(p *Program) (algebra.Triple, error) {
	return m.engine.Evaluate(p.tokens())
}

// Evaluate compiles and runs an equation.
func (m *STD) Evaluate(equation string) (algebra.Triple, error) {
	p, err := Compile(equation)
	if err != nil {
		return algebra.Triple{}, err
	}
	return m.Run(p)
}

// DBZ is the total machine: a zero divisor yields algebra.P and evaluation continues.
type DBZ struct {
	engine *runtime.Engine
}

// NewDBZ creates a machine using the DBZ division policy.
func NewDBZ(opts ...Option) *DBZ {
	return &DBZ{engine: newEngine(algebra.DBZ, opts)}
}

// Policy returns algebra.DBZ.
func (m *DBZ) Policy() algebra.DivisionPolicy { return algebra.DBZ }

// Run evaluates a compiled program. It cannot fail: programs from Compile are well
// formed and division is total. A nil or hand-built malformed program panics.
func (m *DBZ) Run(p *Program) algebra.Triple {
	v, err := m.engine.Evaluate(p.tokens())
	if err != nil {
		panic(fmt.Sprintf("calculator: DBZ run of a malformed program: %v", err))
	}
	return v
}

// Evaluate compiles and runs an equation. Only malformed input produces an error.
func (m *DBZ) Evaluate(equation string) (algebra.Triple, error) {
	p, err := Compile(equation)
	if err != nil {
		return algebra.Triple{}, err
	}
	return m.Run(p), nil
}

// New returns the machine for policy.
func New(policy algebra.DivisionPolicy, opts ...Option) (Machine, error) {
	switch policy {
	case algebra.STD:
		return NewSTD(opts...), nil
	case algebra.DBZ:
		return NewDBZ(opts...), nil
	}
	return nil, fmt.Errorf("%w: %v", algebra.ErrUnknownPolicy, policy)
}

// FormatResult renders an evaluation outcome the way result files record it:
// the triple's display form, ResultError for a division by zero, or "ERR:<reason>"
// for any other failure.
func FormatResult(v algebra.Triple, err error) string {
	switch {
	case err == nil:
		return v.Format()
	case errors.Is(err, domain.ErrDivisionByZero):
		return ResultError
	default:
		return ResultError + ":" + err.Error()
	}
}
