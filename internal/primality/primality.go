// Package primality implements randomized Miller-Rabin compositeness
// testing over qmath.Int values.
//
// A composite input passes all rounds with probability at most 4^-rounds.
// That bound is a property of the algorithm, not an error condition: a true
// verdict at the default 25 rounds means "prime, up to one chance in 4^25",
// never certainty.
package primality

import (
	"math"
	"math/rand"
	"time"

	"q47/internal/qmath"
)

// DefaultRounds matches the round count the quadruplet survey was run with.
const DefaultRounds = 25

// smallPrimes drive the trial-division pre-filter. Dividing out candidates
// with a factor below 100 skips the witness loop for most composites without
// changing the verdict for any input.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Tester runs Miller-Rabin trials with a fixed round count and an owned
// randomness source. A Tester is not safe for concurrent use; give each
// goroutine its own.
type Tester struct {
	rounds int
	rnd    *rand.Rand
}

// New returns a Tester performing rounds independent witness trials per
// call, drawing witnesses from src. A nil src gets a time-based seed; tests
// pass a fixed-seed source for reproducibility.
func New(rounds int, src rand.Source) *Tester {
	if rounds < 1 {
		rounds = 1
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Tester{rounds: rounds, rnd: rand.New(src)}
}

// Rounds reports the configured trial count.
func (t *Tester) Rounds() int {
	return t.rounds
}

// ErrorBound returns the probability that a composite survives the given
// number of rounds: 4^-rounds.
func ErrorBound(rounds int) float64 {
	return math.Pow(0.25, float64(rounds))
}

// IsProbablePrime reports whether n is prime, with false positives bounded
// by ErrorBound(t.Rounds()). Composite verdicts are exact.
func (t *Tester) IsProbablePrime(n qmath.Int) bool {
	two := qmath.FromInt64(2)
	if n.Cmp(two) < 0 {
		return false
	}
	for _, p := range smallPrimes {
		sp := qmath.FromInt64(p)
		switch n.Cmp(sp) {
		case 0:
			return true
		case -1:
			continue
		}
		if _, r, err := n.DivMod(sp); err == nil && r.Sign() == 0 {
			return false
		}
	}

	one := qmath.FromInt64(1)
	nMinusOne := n.Sub(one)

	// Write n-1 = 2^r · d with d odd.
	d := nMinusOne
	r := 0
	for d.Bit(0) == 0 {
		d = d.Rsh(1)
		r++
	}

	// Witnesses are uniform in [2, n-2], i.e. 2 + [0, n-3).
	witnessSpan := n.Sub(qmath.FromInt64(3))

	for round := 0; round < t.rounds; round++ {
		a := qmath.RandBelow(t.rnd, witnessSpan).Add(two)
		if !t.witnessPasses(a, d, r, n, nMinusOne) {
			return false
		}
	}
	return true
}

// witnessPasses runs one Miller-Rabin trial: x = a^d mod n, then up to r-1
// squarings looking for n-1. A false return certifies n composite.
func (t *Tester) witnessPasses(a, d qmath.Int, r int, n, nMinusOne qmath.Int) bool {
	one := qmath.FromInt64(1)

	x, err := qmath.ModPow(a, d, n)
	if err != nil {
		// n ≥ 5 and d ≥ 1 at every call site; ModPow cannot reject them.
		return false
	}
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x, err = qmath.ModPow(x, qmath.FromInt64(2), n)
		if err != nil {
			return false
		}
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
	}
	return false
}
