package bench

import (
	calculator "github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
)

// Outcome classifies how one equation ended.
type Outcome int

const (
	// OutcomeCancelled is the zero value: the equation was never evaluated.
	OutcomeCancelled Outcome = iota
	// OutcomeCompleted means the machine produced a value.
	OutcomeCompleted
	// OutcomeDivisionByZero means STD aborted on a zero divisor.
	OutcomeDivisionByZero
	// OutcomeFailed covers malformed input and any other error.
	OutcomeFailed
)

var outcomeNames = [...]string{
	OutcomeCancelled:      "cancelled",
	OutcomeCompleted:      "completed",
	OutcomeDivisionByZero: "division_by_zero",
	OutcomeFailed:         "failed",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Result is the outcome of one equation of a batch.
type Result struct {
	Index    int
	Equation string
	Value    algebra.Triple
	Err      error
	Outcome  Outcome
	// Operators is the operator count of a completed equation, 0 otherwise.
	Operators int
}

// Text renders the result line: the value, ERR, or ERR:<reason>.
func (r Result) Text() string {
	return calculator.FormatResult(r.Value, r.Err)
}
