package qmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModPowCrossCheck(t *testing.T) {
	// Against direct exponentiation for every small (base, exp, mod) where
	// the direct route is feasible.
	for base := int64(-5); base <= 20; base++ {
		for exp := uint(0); exp <= 10; exp++ {
			for mod := int64(1); mod <= 15; mod++ {
				got, err := ModPow(FromInt64(base), FromInt64(int64(exp)), FromInt64(mod))
				require.NoError(t, err)

				_, want, err := FromInt64(base).Pow(exp).DivMod(FromInt64(mod))
				require.NoError(t, err)

				require.Zerof(t, got.Cmp(want),
					"%d^%d mod %d: got %s, want %s", base, exp, mod, got, want)
			}
		}
	}
}

func TestModPowLargeExponent(t *testing.T) {
	// 2^100 = 1267650600228229401496703205376, so 2^100 mod 1000 = 376.
	got, err := ModPow(FromInt64(2), FromInt64(100), FromInt64(1000))
	require.NoError(t, err)
	assert.Equal(t, "376", got.String())
}

func TestModPowNegativeBase(t *testing.T) {
	// The base is reduced Euclidean-style first: -2 ≡ 3 (mod 5), 3³ = 27 ≡ 2.
	got, err := ModPow(FromInt64(-2), FromInt64(3), FromInt64(5))
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())
}

func TestModPowModulusOne(t *testing.T) {
	got, err := ModPow(FromInt64(7), FromInt64(3), FromInt64(1))
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())
}

func TestModPowInvalidInputs(t *testing.T) {
	_, err := ModPow(FromInt64(2), FromInt64(3), FromInt64(0))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = ModPow(FromInt64(2), FromInt64(3), FromInt64(-7))
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = ModPow(FromInt64(2), FromInt64(-1), FromInt64(7))
	assert.ErrorIs(t, err, ErrInvalidExponent)
}
