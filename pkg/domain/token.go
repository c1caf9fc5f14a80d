package domain

import (
	"fmt"

	"github.com/peterjnpaulnz/dbz-calculator-semi-structured-complex-numbers/pkg/algebra"
)

// Operator is a binary arithmetic operator symbol.
type Operator rune

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

// Operators lists every supported operator.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// Precedence levels. Higher binds tighter.
const (
	PrecedenceAdditive       = 1
	PrecedenceMultiplicative = 2
)

// ParseOperator returns the operator spelled by s, which must be a single symbol.
func ParseOperator(s string) (Operator, bool) {
	if len(s) != 1 {
		return 0, false
	}
	op := Operator(s[0])
	return op, op.Valid()
}

// Valid reports whether o is one of + - * /.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Precedence returns the binding strength of o, or 0 for an invalid operator.
func (o Operator) Precedence() int {
	switch o {
	case OpMul, OpDiv:
		return PrecedenceMultiplicative
	case OpAdd, OpSub:
		return PrecedenceAdditive
	}
	return 0
}

func (o Operator) String() string {
	return string(rune(o))
}

// TokenKind tags a Token.
type TokenKind int

const (
	TokenOperand TokenKind = iota + 1
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case TokenOperand:
		return "OPERAND"
	case TokenOperator:
		return "OPERATOR"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one field of an equation.
type Token struct {
	Kind     TokenKind
	Operand  algebra.Triple // set when Kind == TokenOperand
	Operator Operator       // set when Kind == TokenOperator
	Pos      int            // 0-based field index in the source equation
}

// NewOperand returns an operand token at field position pos.
func NewOperand(t algebra.Triple, pos int) Token {
	return Token{Kind: TokenOperand, Operand: t, Pos: pos}
}

// NewOperator returns an operator token at field position pos.
func NewOperator(op Operator, pos int) Token {
	return Token{Kind: TokenOperator, Operator: op, Pos: pos}
}

func (t Token) IsOperand() bool  { return t.Kind == TokenOperand }
func (t Token) IsOperator() bool { return t.Kind == TokenOperator }

// String returns the canonical source text of the token.
func (t Token) String() string {
	if t.IsOperand() {
		return t.Operand.String()
	}
	return t.Operator.String()
}

// Equal compares kind and value; positions are ignored.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.IsOperand() {
		return t.Operand.Equal(o.Operand)
	}
	return t.Operator == o.Operator
}
