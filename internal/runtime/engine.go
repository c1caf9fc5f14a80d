package runtime

import (
	"errors"
	"fmt"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// Engine is the postfix stack machine. It holds no state between calls and is
// safe for concurrent use.
type Engine struct {
	algebra algebra.Algebra
}

// NewEngine creates an engine that applies operators with al.
func NewEngine(al algebra.Algebra) *Engine {
	return &Engine{algebra: al}
}

// Policy returns the division policy threaded into every division.
func (e *Engine) Policy() algebra.DivisionPolicy {
	return e.algebra.Policy
}

// Evaluate runs a postfix token sequence and returns the single remaining value.
// Operands are pushed; an operator pops the right operand, then the left one, and
// pushes the result. A division by zero under STD aborts immediately.
func (e *Engine) Evaluate(postfix []domain.Token) (algebra.Triple, error) {
	stack := make([]algebra.Triple, 0, len(postfix)/2+1)

	for i, tok := range postfix {
		if tok.IsOperand() {
			stack = append(stack, tok.Operand)
			continue
		}
		if !tok.IsOperator() {
			return algebra.Triple{}, fmt.Errorf("%w: token %d has no kind", domain.ErrMalformedPostfix, i)
		}
		if len(stack) < 2 {
			return algebra.Triple{}, fmt.Errorf("%w: operator %q at token %d needs 2 operands, stack holds %d",
				domain.ErrMalformedPostfix, tok, i, len(stack))
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		v, err := e.apply(tok.Operator, a, b)
		if err != nil {
			return algebra.Triple{}, err
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return algebra.Triple{}, fmt.Errorf("%w: %d values left on the stack, want 1", domain.ErrMalformedPostfix, len(stack))
	}
	return stack[0], nil
}

func (e *Engine) apply(op domain.Operator, a, b algebra.Triple) (algebra.Triple, error) {
	v, err := e.algebra.Apply(rune(op), a, b)
	if errors.Is(err, algebra.ErrUnknownOperator) {
		return algebra.Triple{}, fmt.Errorf("%w: %v", domain.ErrMalformedPostfix, err)
	}
	return v, err
}
