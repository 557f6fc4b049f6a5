package qmath

import (
	"fmt"
	"math/bits"
)

// maxSieveLimit caps the marking table at 2 GiB of booleans. Beyond this the
// sieve would exhaust memory on most hosts; the limit is rejected up front
// instead of letting the allocator abort.
const maxSieveLimit = 1 << 31

// Sieve returns every prime ≤ limit in ascending order, each exactly once,
// by the classical sieve of Eratosthenes. A limit below 2 yields an empty
// slice. Negative or oversized limits fail with ErrSieveLimit.
func Sieve(limit int) ([]uint64, error) {
	if limit < 0 || limit > maxSieveLimit {
		return nil, fmt.Errorf("%w: %d", ErrSieveLimit, limit)
	}
	if limit < 2 {
		return []uint64{}, nil
	}

	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	primes := make([]uint64, 0, primeCountUpperBound(limit))
	for i := 2; i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, uint64(i))
		}
	}
	return primes, nil
}

// primeCountUpperBound sizes the result slice: π(n) < 1.3 n / ln n for n ≥ 17.
func primeCountUpperBound(limit int) int {
	if limit < 17 {
		return 8
	}
	// Approximate ln(limit) via bit length (ln 2 ≈ 0.693).
	lnApprox := float64(bits.Len(uint(limit))) * 0.693
	return int(1.3*float64(limit)/lnApprox) + 8
}
