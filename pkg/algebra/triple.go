package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// DisplayPrecision is the number of decimal places used by Triple.Format for
// components that are not whole numbers.
const DisplayPrecision = 6

// Triple is an immutable semi-structured complex number x + y·i + z·p.
// The zero value is the additive identity (0, 0, 0).
type Triple struct {
	x, y, z *big.Rat
}

var (
	// Zero is the additive identity (0, 0, 0).
	Zero = Triple{}

	// P is the absorbing element (0, 0, 1) produced by division by zero.
	P = FromInts(0, 0, 1)
)

// New returns a triple holding copies of x, y and z. Nil components are read as 0.
func New(x, y, z *big.Rat) Triple {
	return Triple{x: clone(x), y: clone(y), z: clone(z)}
}

// FromInts returns the triple (x, y, z).
func FromInts(x, y, z int64) Triple {
	return Triple{x: big.NewRat(x, 1), y: big.NewRat(y, 1), z: big.NewRat(z, 1)}
}

// FromFloats returns the exact rational triple for three finite floats.
func FromFloats(x, y, z float64) (Triple, error) {
	rx, ry, rz := new(big.Rat).SetFloat64(x), new(big.Rat).SetFloat64(y), new(big.Rat).SetFloat64(z)
	if rx == nil || ry == nil || rz == nil {
		return Triple{}, fmt.Errorf("%w: non-finite component in (%v, %v, %v)", ErrInvalidTriple, x, y, z)
	}
	return Triple{x: rx, y: ry, z: rz}, nil
}

// X returns a copy of the real component.
func (t Triple) X() *big.Rat { return clone(t.x) }

// Y returns a copy of the imaginary component.
func (t Triple) Y() *big.Rat { return clone(t.y) }

// Z returns a copy of the p component.
func (t Triple) Z() *big.Rat { return clone(t.z) }

// Float64s returns the components rounded to the nearest float64.
func (t Triple) Float64s() (x, y, z float64) {
	x, _ = val(t.x).Float64()
	y, _ = val(t.y).Float64()
	z, _ = val(t.z).Float64()
	return x, y, z
}

// IsZero reports whether t is the additive identity.
func (t Triple) IsZero() bool {
	return val(t.x).Sign() == 0 && val(t.y).Sign() == 0 && val(t.z).Sign() == 0
}

// IsAbsorbing reports whether t carries a p component (z != 0).
func (t Triple) IsAbsorbing() bool {
	return val(t.z).Sign() != 0
}

// IsOrdinary reports whether t is a plain complex number (z == 0).
func (t Triple) IsOrdinary() bool {
	return !t.IsAbsorbing()
}

// Equal reports component-wise equality.
func (t Triple) Equal(o Triple) bool {
	return val(t.x).Cmp(val(o.x)) == 0 &&
		val(t.y).Cmp(val(o.y)) == 0 &&
		val(t.z).Cmp(val(o.z)) == 0
}

// String returns the canonical "x,y,z" form. Components are printed exactly,
// as integers or reduced fractions, so Parse(t.String()) equals t.
func (t Triple) String() string {
	return val(t.x).RatString() + "," + val(t.y).RatString() + "," + val(t.z).RatString()
}

// Format returns the display form "x,y,z": whole numbers print as integers,
// anything else is rounded to DisplayPrecision decimal places.
func (t Triple) Format() string {
	return formatComponent(val(t.x)) + "," + formatComponent(val(t.y)) + "," + formatComponent(val(t.z))
}

func formatComponent(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(DisplayPrecision)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// Parse reads the literal form "x,y,z": exactly three comma-separated signed
// numbers without spaces. Components may be integers, decimals or fractions.
func Parse(s string) (Triple, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Triple{}, fmt.Errorf("%w: %q has %d components, want 3", ErrInvalidTriple, s, len(parts))
	}
	var comps [3]*big.Rat
	for i, p := range parts {
		if p == "" || strings.ContainsAny(p, " \t") {
			return Triple{}, fmt.Errorf("%w: %q component %d is not a number", ErrInvalidTriple, s, i+1)
		}
		r, ok := new(big.Rat).SetString(p)
		if !ok {
			return Triple{}, fmt.Errorf("%w: %q component %d is not a number", ErrInvalidTriple, s, i+1)
		}
		comps[i] = r
	}
	return Triple{x: comps[0], y: comps[1], z: comps[2]}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Triple {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

var ratZero = new(big.Rat)

func val(r *big.Rat) *big.Rat {
	if r == nil {
		return ratZero
	}
	return r
}

func clone(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r)
}
