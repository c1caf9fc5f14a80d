package algebra

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples covers ordinary, p-valued, fractional and zero-component triples.
var samples = []Triple{
	Zero,
	P,
	FromInts(1, 0, 0),
	FromInts(-1, 1, 0),
	FromInts(0, -1, 1),
	FromInts(2, 3, -1),
	FromInts(-1, -1, -1),
	New(big.NewRat(1, 2), big.NewRat(-3, 4), big.NewRat(5, 3)),
}

func ordinaryDivisors() []Triple {
	return []Triple{
		FromInts(1, 0, 0),
		FromInts(0, 1, 0),
		FromInts(-1, 1, 0),
		FromInts(3, -4, 0),
		New(big.NewRat(2, 7), big.NewRat(1, 3), nil),
	}
}

func TestAddSub(t *testing.T) {
	a, b := FromInts(1, -2, 3), FromInts(4, 5, -6)
	assert.Equal(t, "5,3,-3", Add(a, b).String())
	assert.Equal(t, "-3,-7,9", Sub(a, b).String())
	for _, s := range samples {
		assert.True(t, Add(s, Zero).Equal(s))
		assert.True(t, Sub(s, s).IsZero())
	}
}

func TestMul_Ordinary(t *testing.T) {
	// (1 + 2i)(3 - i) = 5 + 5i
	got := Mul(FromInts(1, 2, 0), FromInts(3, -1, 0))
	assert.Equal(t, "5,5,0", got.String())
	assert.Equal(t, "6,0,0", Mul(FromInts(2, 0, 0), FromInts(3, 0, 0)).String())
}

func TestMul_Absorbing(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			got := Mul(a, b)
			switch {
			case a.IsZero() || b.IsZero():
				assert.True(t, got.IsZero(), "%s × %s = %s, want zero", a, b, got)
			case a.IsAbsorbing() || b.IsAbsorbing():
				assert.True(t, got.IsAbsorbing(), "%s × %s = %s, want p-valued", a, b, got)
			default:
				assert.True(t, got.IsOrdinary(), "%s × %s = %s, want ordinary", a, b, got)
			}
			assert.True(t, got.Equal(Mul(b, a)), "product of %s and %s is not commutative", a, b)
		}
	}
}

func TestMul_Associative(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left := Mul(Mul(a, b), c)
				right := Mul(a, Mul(b, c))
				assert.True(t, left.Equal(right), "(%s·%s)·%s = %s, %s·(%s·%s) = %s", a, b, c, left, a, b, c, right)
			}
		}
	}
}

func TestMul_AbsorbingWeights(t *testing.T) {
	// weight(1+i) = 2, so (1+i)·p = (0, 0, 2)
	assert.Equal(t, "0,0,2", Mul(FromInts(1, 1, 0), P).String())
	assert.Equal(t, "0,0,1", Mul(P, P).String())
	assert.Equal(t, "2,0,-6", Mul(FromInts(1, 0, 2), FromInts(2, 0, -3)).String())
}

func TestDiv_RoundTrip(t *testing.T) {
	for _, policy := range []DivisionPolicy{STD, DBZ} {
		for _, a := range samples {
			for _, b := range ordinaryDivisors() {
				t.Run(fmt.Sprintf("%s/%s/%s", policy, a, b), func(t *testing.T) {
					got, err := Div(Mul(a, b), b, policy)
					require.NoError(t, err)
					assert.True(t, got.Equal(a), "got %s, want %s", got, a)
				})
			}
		}
	}
}

func TestDiv_RoundTrip_AbsorbingDivisor(t *testing.T) {
	// Holds for p-valued numerators when the divisor has a complex part.
	b := FromInts(1, -1, 2)
	for _, a := range []Triple{P, FromInts(2, 3, -1), FromInts(0, -1, 1)} {
		got, err := Div(Mul(a, b), b, STD)
		require.NoError(t, err)
		assert.True(t, got.Equal(a), "got %s, want %s", got, a)
	}
}

func TestDiv_ByZero(t *testing.T) {
	for _, a := range samples {
		got, err := Div(a, Zero, DBZ)
		require.NoError(t, err)
		assert.True(t, got.Equal(P), "DBZ %s / 0 = %s", a, got)

		_, err = Div(a, Zero, STD)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}
}

func TestDiv_Ordinary(t *testing.T) {
	got, err := Div(FromInts(5, 5, 0), FromInts(3, -1, 0), STD)
	require.NoError(t, err)
	assert.Equal(t, "1,2,0", got.String())

	got, err = Div(FromInts(1, 0, 0), FromInts(3, 0, 0), STD)
	require.NoError(t, err)
	assert.Equal(t, "1/3,0,0", got.String())
}

func TestInverse(t *testing.T) {
	al := Algebra{}
	assert.True(t, al.Inverse(Zero).IsZero())
	assert.Equal(t, "1/2,-1/2,0", al.Inverse(FromInts(1, 1, 0)).String())
	assert.Equal(t, "0,0,1/4", al.Inverse(FromInts(0, 0, 4)).String())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("DBZ")
	require.NoError(t, err)
	assert.Equal(t, DBZ, p)
	assert.Equal(t, "std", STD.String())

	_, err = ParsePolicy("lenient")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestApply(t *testing.T) {
	al := Algebra{Policy: DBZ}
	a, b := FromInts(3, 1, 0), FromInts(1, 1, 0)

	cases := map[rune]string{'+': "4,2,0", '-': "2,0,0", '*': "2,4,0", '/': "2,-1,0"}
	for op, want := range cases {
		v, err := al.Apply(op, a, b)
		require.NoError(t, err, string(op))
		assert.Equal(t, want, v.String(), string(op))
	}

	v, err := al.Apply('/', a, Zero)
	require.NoError(t, err)
	assert.True(t, v.Equal(P))

	_, err = al.Apply('%', a, b)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
