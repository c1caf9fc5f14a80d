package domain

import (
	"fmt"
	"testing"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
	"github.com/stretchr/testify/assert"
)

func TestParseOperator(t *testing.T) {
	for _, op := range Operators {
		got, ok := ParseOperator(op.String())
		assert.True(t, ok, op.String())
		assert.Equal(t, op, got)
	}
	for _, s := range []string{"", "x", "**", "%", "^", "1"} {
		_, ok := ParseOperator(s)
		assert.False(t, ok, "%q should not parse", s)
	}
}

func TestOperator_Precedence(t *testing.T) {
	assert.Greater(t, OpMul.Precedence(), OpAdd.Precedence())
	assert.Equal(t, OpMul.Precedence(), OpDiv.Precedence())
	assert.Equal(t, OpAdd.Precedence(), OpSub.Precedence())
	assert.Zero(t, Operator('%').Precedence())
}

func TestToken(t *testing.T) {
	operand := NewOperand(algebra.FromInts(1, -2, 3), 0)
	operator := NewOperator(OpDiv, 1)

	assert.True(t, operand.IsOperand())
	assert.True(t, operator.IsOperator())
	assert.Equal(t, "1,-2,3", operand.String())
	assert.Equal(t, "/", operator.String())
	assert.Equal(t, "OPERAND", operand.Kind.String())

	assert.True(t, operand.Equal(NewOperand(algebra.FromInts(1, -2, 3), 7)), "positions are ignored")
	assert.False(t, operand.Equal(operator))
	assert.False(t, operator.Equal(NewOperator(OpMul, 1)))
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(fmt.Errorf("field 2: %w", ErrMalformedOperand)))
	assert.True(t, IsInputError(ErrIncompleteExpression))
	assert.False(t, IsInputError(ErrMalformedPostfix))
	assert.False(t, IsInputError(ErrDivisionByZero))
	assert.ErrorIs(t, ErrDivisionByZero, algebra.ErrDivisionByZero)
}
