/*
Package domain contains the token model and error taxonomy shared by every stage of
the evaluation pipeline.

It is kept free of I/O. The tokenizer produces Tokens, the postfix converter reorders
them, and the evaluator consumes them; all three report failures with the sentinel
errors defined here so callers can classify an outcome with errors.Is.

# Key Entities

  - Token: either an operand wrapping an algebra.Triple, or an Operator.
  - Operator: one of + - * /, with precedence (* and / bind tighter) and left associativity.
  - Errors: ErrMalformedOperand and ErrIncompleteExpression describe bad input;
    ErrMalformedPostfix is a contract violation inside the evaluator;
    ErrDivisionByZero is the STD policy's abort signal.
*/
package domain
