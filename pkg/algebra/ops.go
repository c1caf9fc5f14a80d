package algebra

import (
	"fmt"
	"math/big"
)

// Algebra bundles a division policy with the product rule used for p-valued
// operands. The zero value is the STD policy with the Absorbing rule.
// Algebra values are immutable and safe for concurrent use.
type Algebra struct {
	Policy DivisionPolicy
	Rule   ProductRule
}

func (al Algebra) rule() ProductRule {
	if al.Rule == nil {
		return Absorbing
	}
	return al.Rule
}

// Add returns the component-wise sum a + b.
func (al Algebra) Add(a, b Triple) Triple {
	return Triple{
		x: new(big.Rat).Add(val(a.x), val(b.x)),
		y: new(big.Rat).Add(val(a.y), val(b.y)),
		z: new(big.Rat).Add(val(a.z), val(b.z)),
	}
}

// Sub returns the component-wise difference a - b.
func (al Algebra) Sub(a, b Triple) Triple {
	return Triple{
		x: new(big.Rat).Sub(val(a.x), val(b.x)),
		y: new(big.Rat).Sub(val(a.y), val(b.y)),
		z: new(big.Rat).Sub(val(a.z), val(b.z)),
	}
}

// Mul returns a × b. Two ordinary operands multiply as complex numbers;
// otherwise the configured ProductRule decides.
func (al Algebra) Mul(a, b Triple) Triple {
	if a.IsOrdinary() && b.IsOrdinary() {
		re, im := complexMul(val(a.x), val(a.y), val(b.x), val(b.y))
		return Triple{x: re, y: im, z: new(big.Rat)}
	}
	return al.rule().Product(a, b)
}

// Div returns a ÷ b. For b == Zero the policy decides: STD fails with
// ErrDivisionByZero, DBZ returns P regardless of a.
func (al Algebra) Div(a, b Triple) (Triple, error) {
	if b.IsZero() {
		if al.Policy == DBZ {
			return P, nil
		}
		return Triple{}, ErrDivisionByZero
	}
	return al.Mul(a, al.Inverse(b)), nil
}

// Inverse returns the multiplicative inverse of a non-zero triple.
// Ordinary triples invert as complex numbers; p-valued ones defer to the rule.
// The inverse of Zero is Zero.
func (al Algebra) Inverse(b Triple) Triple {
	if b.IsZero() {
		return Zero
	}
	if b.IsOrdinary() {
		re, im := complexInverse(val(b.x), val(b.y))
		return Triple{x: re, y: im, z: new(big.Rat)}
	}
	return al.rule().Inverse(b)
}

// Apply dispatches the binary operator spelled by op: '+', '-', '*' or '/'.
func (al Algebra) Apply(op rune, a, b Triple) (Triple, error) {
	switch op {
	case '+':
		return al.Add(a, b), nil
	case '-':
		return al.Sub(a, b), nil
	case '*':
		return al.Mul(a, b), nil
	case '/':
		return al.Div(a, b)
	}
	return Triple{}, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
}

// Add is Algebra{}.Add.
func Add(a, b Triple) Triple { return Algebra{}.Add(a, b) }

// Sub is Algebra{}.Sub.
func Sub(a, b Triple) Triple { return Algebra{}.Sub(a, b) }

// Mul multiplies with the default Absorbing rule.
func Mul(a, b Triple) Triple { return Algebra{}.Mul(a, b) }

// Div divides with the default Absorbing rule under the given policy.
func Div(a, b Triple, policy DivisionPolicy) (Triple, error) {
	return Algebra{Policy: policy}.Div(a, b)
}

// complexMul returns (a + bi)(c + di).
func complexMul(a, b, c, d *big.Rat) (re, im *big.Rat) {
	re = new(big.Rat).Sub(new(big.Rat).Mul(a, c), new(big.Rat).Mul(b, d))
	im = new(big.Rat).Add(new(big.Rat).Mul(a, d), new(big.Rat).Mul(b, c))
	return re, im
}

// complexInverse returns 1 / (a + bi), or 0 when a = b = 0.
func complexInverse(a, b *big.Rat) (re, im *big.Rat) {
	n := norm(a, b)
	if n.Sign() == 0 {
		return new(big.Rat), new(big.Rat)
	}
	re = new(big.Rat).Quo(a, n)
	im = new(big.Rat).Neg(new(big.Rat).Quo(b, n))
	return re, im
}

// norm returns a² + b².
func norm(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(new(big.Rat).Mul(a, a), new(big.Rat).Mul(b, b))
}
