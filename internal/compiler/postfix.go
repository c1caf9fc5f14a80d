package compiler

import (
	"fmt"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/domain"
)

// ToPostfix reorders an infix token sequence into postfix (reverse Polish) order.
// Parentheses are not supported; * and / bind tighter than + and -, and operators of
// equal precedence associate to the left. The result always holds one more operand
// than operators.
func ToPostfix(infix []domain.Token) ([]domain.Token, error) {
	if err := checkAlternation(infix); err != nil {
		return nil, err
	}

	output := make([]domain.Token, 0, len(infix))
	stack := make([]domain.Token, 0, len(infix)/2)

	for _, tok := range infix {
		if tok.IsOperand() {
			output = append(output, tok)
			continue
		}
		// Pop while the top binds at least as tightly (left associativity).
		for len(stack) > 0 && stack[len(stack)-1].Operator.Precedence() >= tok.Operator.Precedence() {
			output = append(output, stack[len(stack)-1])
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, tok)
	}

	for len(stack) > 0 {
		output = append(output, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return output, nil
}

// checkAlternation enforces operand (operator operand)*.
func checkAlternation(infix []domain.Token) error {
	if len(infix) == 0 {
		return fmt.Errorf("%w: no tokens", domain.ErrIncompleteExpression)
	}

	wantOperand := true
	for i, tok := range infix {
		switch {
		case tok.IsOperand() && !wantOperand:
			return fmt.Errorf("%w: operand %q at field %d follows another operand", domain.ErrIncompleteExpression, tok, tok.Pos)
		case tok.IsOperator() && wantOperand:
			if i == 0 {
				return fmt.Errorf("%w: equation starts with operator %q", domain.ErrIncompleteExpression, tok)
			}
			return fmt.Errorf("%w: operator %q at field %d has no left operand", domain.ErrIncompleteExpression, tok, tok.Pos)
		case !tok.IsOperand() && !tok.IsOperator():
			return fmt.Errorf("%w: field %d has no kind", domain.ErrIncompleteExpression, tok.Pos)
		}
		wantOperand = !wantOperand
	}

	if wantOperand {
		last := infix[len(infix)-1]
		return fmt.Errorf("%w: equation ends with operator %q", domain.ErrIncompleteExpression, last)
	}
	return nil
}

// Compile tokenizes an equation and converts it to postfix order.
func Compile(equation string) ([]domain.Token, error) {
	infix, err := Tokenize(equation)
	if err != nil {
		return nil, err
	}
	return ToPostfix(infix)
}
