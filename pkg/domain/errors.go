package domain

import (
	"errors"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
)

// ErrMalformedOperand is returned when a field is neither an operator nor a valid x,y,z operand.
var ErrMalformedOperand = errors.New("malformed operand")

// ErrIncompleteExpression is returned when operators and operands do not alternate
// operand/operator/.../operand (leading, trailing or adjacent operators, adjacent operands, empty input).
var ErrIncompleteExpression = errors.New("incomplete expression")

// ErrMalformedPostfix is returned when the evaluator underflows its stack or finishes
// with other than exactly one value. Compiled programs never trigger it.
var ErrMalformedPostfix = errors.New("malformed postfix")

// ErrDivisionByZero is returned under the STD policy when a zero divisor is evaluated.
var ErrDivisionByZero = algebra.ErrDivisionByZero

// IsInputError reports whether err was caused by the equation text itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedOperand) || errors.Is(err, ErrIncompleteExpression)
}
