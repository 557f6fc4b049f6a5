// Package poly evaluates the polynomial family under study,
// Q(n) = n^47 - (n-1)^47.
package poly

import (
	"q47/internal/qmath"
)

// Exponent is the fixed exponent of the family. Q has degree 46 with leading
// coefficient 47.
const Exponent = 47

// Q computes n^47 - (n-1)^47 exactly. For n near 2×10⁹ the result runs past
// 400 decimal digits; no floating point is involved at any step.
func Q(n qmath.Int) qmath.Int {
	prev := n.Sub(qmath.FromInt64(1))
	return n.Pow(Exponent).Sub(prev.Pow(Exponent))
}

// QMod computes Q(n) mod m without materializing Q(n), using two modular
// exponentiations. The result is in [0, m). It fails with
// qmath.ErrInvalidModulus when m ≤ 0.
//
// The exclusion scan calls this once per n; evaluating the full 400-digit
// value just to reduce it mod 3 would dominate the run.
func QMod(n qmath.Int, m int64) (int64, error) {
	modulus := qmath.FromInt64(m)
	exp := qmath.FromInt64(Exponent)

	a, err := qmath.ModPow(n, exp, modulus)
	if err != nil {
		return 0, err
	}
	b, err := qmath.ModPow(n.Sub(qmath.FromInt64(1)), exp, modulus)
	if err != nil {
		return 0, err
	}

	// a, b ∈ [0, m) so a - b + m ∈ (0, 2m); one more reduction normalizes.
	_, r, err := a.Sub(b).Add(modulus).DivMod(modulus)
	if err != nil {
		return 0, err
	}
	v, _ := r.Int64()
	return v, nil
}
