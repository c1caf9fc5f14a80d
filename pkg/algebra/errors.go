package algebra

import "errors"

var (
	// ErrDivisionByZero is returned by Div under the STD policy when the divisor is (0, 0, 0).
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrInvalidTriple is returned when a literal does not describe exactly three finite numbers.
	ErrInvalidTriple = errors.New("algebra: invalid triple")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised policy name.
	ErrUnknownPolicy = errors.New("algebra: unknown division policy")

	// ErrUnknownOperator is returned by Apply for a symbol other than + - * /.
	ErrUnknownOperator = errors.New("algebra: unknown operator")

	// ErrUnknownRule is returned by RuleByName for an unrecognised product rule name.
	ErrUnknownRule = errors.New("algebra: unknown product rule")
)
