package algebra

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// ProductRule defines multiplication when at least one operand is p-valued,
// together with the inverse of a p-valued divisor. Implementations must be pure.
type ProductRule interface {
	// Name identifies the rule in configuration and reports.
	Name() string
	// Product returns a × b where a or b has a non-zero p component.
	Product(a, b Triple) Triple
	// Inverse returns 1 / b for a p-valued b.
	Inverse(b Triple) Triple
}

var (
	// Absorbing is the default rule. The complex parts multiply as complex numbers
	// and the p component is weight(a)·weight(b), where weight is z for a p-valued
	// operand and x²+y² for an ordinary one.
	Absorbing ProductRule = absorbingRule{}

	// Table16 is the polar multiplication rule from Table 16 of the DBZ paper, with p² = -1.
	Table16 ProductRule = table16Rule{}
)

var rules = map[string]ProductRule{
	Absorbing.Name(): Absorbing,
	Table16.Name():   Table16,
}

// RuleByName returns the registered rule with the given name (case-insensitive).
// An empty name selects Absorbing.
func RuleByName(name string) (ProductRule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Absorbing, nil
	}
	r, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownRule, name, strings.Join(RuleNames(), ", "))
	}
	return r, nil
}

// RuleNames lists the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type absorbingRule struct{}

func (absorbingRule) Name() string { return "absorbing" }

func (absorbingRule) Product(a, b Triple) Triple {
	re, im := complexMul(val(a.x), val(a.y), val(b.x), val(b.y))
	return Triple{x: re, y: im, z: new(big.Rat).Mul(weight(a), weight(b))}
}

func (absorbingRule) Inverse(b Triple) Triple {
	re, im := complexInverse(val(b.x), val(b.y))
	return Triple{x: re, y: im, z: new(big.Rat).Inv(val(b.z))}
}

// weight is the multiplicative magnitude carried into the p component.
func weight(t Triple) *big.Rat {
	if t.IsAbsorbing() {
		return val(t.z)
	}
	return norm(val(t.x), val(t.y))
}

type table16Rule struct{}

func (table16Rule) Name() string { return "table16" }

func (table16Rule) Product(a, b Triple) Triple {
	x, y, z := a.Float64s()
	p, q, r := b.Float64s()

	re := x*p - y*q - z*r
	im := x*q + y*p
	pRe := x*r + z*p
	pIm := y*r + z*q

	f := polarAngle(re, im)
	g := polarAngle(pRe, pIm)
	mod := math.Hypot(re, im)

	return Triple{
		x: saturate(mod * math.Cos(f-g)),
		y: saturate(mod * math.Sin(f-g)),
		z: saturate(math.Hypot(pRe, pIm)),
	}
}

// saturate converts v to an exact rational, clamping infinities to the largest
// finite float64 and mapping NaN to 0.
func saturate(v float64) *big.Rat {
	switch {
	case math.IsNaN(v):
		return new(big.Rat)
	case math.IsInf(v, 1):
		v = math.MaxFloat64
	case math.IsInf(v, -1):
		v = -math.MaxFloat64
	}
	return new(big.Rat).SetFloat64(v)
}

// Inverse follows the paper: R = 1/(a²+b²+c²), inverse = (Ra, -Rb, -Rc).
func (table16Rule) Inverse(b Triple) Triple {
	sum := new(big.Rat).Add(norm(val(b.x), val(b.y)), new(big.Rat).Mul(val(b.z), val(b.z)))
	inv := new(big.Rat).Inv(sum)
	return Triple{
		x: new(big.Rat).Mul(inv, val(b.x)),
		y: new(big.Rat).Neg(new(big.Rat).Mul(inv, val(b.y))),
		z: new(big.Rat).Neg(new(big.Rat).Mul(inv, val(b.z))),
	}
}

// polarAngle mirrors the paper's special cases: π for the origin and π/2 on the
// imaginary axis regardless of sign.
func polarAngle(re, im float64) float64 {
	switch {
	case re == 0 && im == 0:
		return math.Pi
	case re == 0:
		return math.Pi / 2
	default:
		return math.Atan2(im, re)
	}
}
