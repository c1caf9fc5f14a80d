/*
Package algebra implements arithmetic over semi-structured complex numbers.

A semi-structured complex number h = x + y·i + z·p is stored as a Triple of exact
rationals (x, y, z). The element p = (0, 0, 1) is the absorbing result of a division
by zero. A triple with z != 0 is p-valued; a triple with z == 0 is ordinary and
behaves exactly like the complex number x + y·i.

# Operations

  - Add and Sub work component-wise.
  - Mul reduces to complex multiplication when both operands are ordinary. When a
    p-valued operand is involved the product is delegated to a ProductRule.
  - Div multiplies by the inverse of the divisor. A zero divisor is handled by the
    DivisionPolicy: STD fails with ErrDivisionByZero, DBZ returns P.

# Product rules

Two rules ship with the package:

  - Absorbing (default): the complex parts multiply as complex numbers and the
    p-coefficients multiply as weights, where the weight of an ordinary operand is
    its squared modulus. Any product with a p-valued operand and a non-zero operand
    stays p-valued, and Div(Mul(a, b), b) == a for every ordinary non-zero b.
  - Table16: the polar formula of Jean-Paul and Wahid (2024), evaluated in float64.
    It treats p² as -1 and is provided for parity with their published experiments.
*/
package algebra
