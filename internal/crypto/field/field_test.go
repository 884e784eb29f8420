package field

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	cases := []struct {
		a, m, want int64
	}{
		{0, 11, 0},
		{10, 11, 10},
		{11, 11, 0},
		{-1, 11, 10},
		{-11, 11, 0},
		{-12, 11, 10},
		{-264, 313, 49},
		{-8093, 313, 45},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Mod(c.a, c.m), "Mod(%d, %d)", c.a, c.m)
	}
}

func TestArithmetic(t *testing.T) {
	const m = 11

	assert.Equal(t, int64(2), Add(8, 5, m))
	assert.Equal(t, int64(9), Sub(3, 5, m))
	assert.Equal(t, int64(7), Mul(6, 3, m))
	assert.Equal(t, int64(0), Neg(0, m))
	assert.Equal(t, int64(8), Neg(3, m))

	// 3 / 5 = 3 * 9 = 27 = 5 mod 11
	q, err := Div(3, 5, m)
	require.NoError(t, err)
	assert.Equal(t, int64(5), q)

	_, err = Div(3, 0, m)
	assert.True(t, errors.Is(err, ErrNotInvertible))
}

func TestMulNoOverflow(t *testing.T) {
	a := MaxModulus - 1
	// (m-1)^2 = 1 mod m
	assert.Equal(t, int64(1), Mul(a, a, MaxModulus))
}

func TestCheckModulus(t *testing.T) {
	assert.NoError(t, CheckModulus(2))
	assert.NoError(t, CheckModulus(313))
	assert.NoError(t, CheckModulus(MaxModulus))

	for _, m := range []int64{-1, 0, 1, MaxModulus + 1} {
		err := CheckModulus(m)
		assert.True(t, errors.Is(err, ErrInvalidModulus), "m=%d", m)
	}
}
