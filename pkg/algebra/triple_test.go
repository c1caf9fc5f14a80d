package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Triple
	}{
		{"Integers", "1,2,3", FromInts(1, 2, 3)},
		{"Negatives", "-1,0,-7", FromInts(-1, 0, -7)},
		{"Explicit Plus", "+4,+0,+1", FromInts(4, 0, 1)},
		{"Decimal And Fraction", "0.5,1/4,0", New(big.NewRat(1, 2), big.NewRat(1, 4), nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1,,3", "1, 2,3", "1,2,1/0", "+"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidTriple)
		})
	}
}

func TestTriple_String_RoundTrip(t *testing.T) {
	for _, s := range []string{"0,0,0", "1,-2,3", "1/3,-5/7,2", "0,0,1"} {
		tr := MustParse(s)
		assert.Equal(t, s, tr.String())
		back, err := Parse(tr.String())
		require.NoError(t, err)
		assert.True(t, tr.Equal(back))
	}
}

func TestTriple_Format(t *testing.T) {
	tests := []struct {
		in   Triple
		want string
	}{
		{FromInts(7, 0, 0), "7,0,0"},
		{P, "0,0,1"},
		{New(big.NewRat(1, 3), big.NewRat(-5, 2), nil), "0.333333,-2.5,0"},
		{New(big.NewRat(-1, 10000000), nil, big.NewRat(99999999, 10000000)), "0,0,10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Format())
	}
}

func TestTriple_Predicates(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.True(t, Zero.IsOrdinary())
	assert.True(t, P.IsAbsorbing())
	assert.False(t, P.IsZero())
	assert.True(t, FromInts(0, 0, 0).Equal(Zero))
	assert.False(t, FromInts(1, 0, 0).Equal(FromInts(0, 1, 0)))
}

func TestTriple_AccessorsReturnCopies(t *testing.T) {
	tr := FromInts(1, 2, 3)
	x := tr.X()
	x.SetInt64(99)
	assert.Equal(t, "1,2,3", tr.String())
}

func TestFromFloats(t *testing.T) {
	tr, err := FromFloats(0.5, -2, 0)
	require.NoError(t, err)
	assert.Equal(t, "1/2,-2,0", tr.String())
}
