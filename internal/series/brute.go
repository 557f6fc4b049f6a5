package series

// BruteForceOmega counts the roots of Q(n) ≡ 0 (mod p) directly, for
// cross-checking the classification rule against small primes. p must be
// below 2^31 so products of residues fit a uint64; the rule verification
// only ever runs it on primes below a few hundred.
func BruteForceOmega(p uint64) uint64 {
	if p < 2 {
		return 0
	}
	var count uint64
	for n := uint64(0); n < p; n++ {
		a := powMod(n, exponent, p)
		b := powMod((n+p-1)%p, exponent, p)
		if a == b {
			count++
		}
	}
	return count
}

// powMod is word-sized square-and-multiply; base and modulus must be < 2^31.
func powMod(base, exp, mod uint64) uint64 {
	result := uint64(1) % mod
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}
	return result
}
