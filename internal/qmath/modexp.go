package qmath

import "math/big"

// ModPow computes base^exp mod modulus by square-and-multiply, processing the
// exponent's bits from most to least significant and reducing after every
// multiplication, so intermediates never exceed modulus² before reduction.
// The result is in [0, modulus).
//
// It fails with ErrInvalidModulus when modulus ≤ 0 and ErrInvalidExponent
// when exp < 0. It deliberately does not delegate to big.Int.Exp: the
// explicit reduction schedule is part of the contract.
func ModPow(base, exp, modulus Int) (Int, error) {
	if modulus.Sign() <= 0 {
		return Int{}, ErrInvalidModulus
	}
	if exp.Sign() < 0 {
		return Int{}, ErrInvalidExponent
	}

	m := modulus.big()

	// Reduce the base first so the working value starts below the modulus.
	// big.Int.Mod is Euclidean: the result is non-negative for positive m.
	b := new(big.Int).Mod(base.big(), m)

	result := big.NewInt(1)
	result.Mod(result, m) // modulus 1 maps everything to 0

	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, m)
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
	}
	return Int{v: result}, nil
}
