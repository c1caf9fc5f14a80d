package compiler

import (
	"fmt"
	"strings"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// Tokenize splits a space-separated infix equation into tokens.
// Every field must be a single operator symbol or an x,y,z operand.
func Tokenize(equation string) ([]domain.Token, error) {
	fields := strings.Fields(equation)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty equation", domain.ErrIncompleteExpression)
	}

	tokens := make([]domain.Token, 0, len(fields))
	for pos, field := range fields {
		if op, ok := domain.ParseOperator(field); ok {
			tokens = append(tokens, domain.NewOperator(op, pos))
			continue
		}
		t, err := algebra.Parse(field)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q: %v", domain.ErrMalformedOperand, pos, field, err)
		}
		tokens = append(tokens, domain.NewOperand(t, pos))
	}
	return tokens, nil
}

// Render joins the canonical text of tokens with single spaces.
// Tokenize(Render(tokens)) yields a sequence equal to tokens.
func Render(tokens []domain.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
