package series

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q47/internal/qmath"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, Ramified, Classify(47))
	assert.Equal(t, Splitting, Classify(283)) // 283 = 6·47 + 1
	assert.Equal(t, Shielding, Classify(2))
	assert.Equal(t, Shielding, Classify(3))
	assert.Equal(t, Shielding, Classify(281))
}

func TestOmega(t *testing.T) {
	assert.Equal(t, uint64(0), Omega(47))
	assert.Equal(t, uint64(46), Omega(283))
	assert.Equal(t, uint64(0), Omega(5))
}

func TestOmegaMatchesBruteForceBelow300(t *testing.T) {
	primes, err := qmath.Sieve(300)
	require.NoError(t, err)
	for _, p := range primes {
		require.Equalf(t, BruteForceOmega(p), Omega(p), "p = %d", p)
	}
}

func TestLocalFactorRatio(t *testing.T) {
	num, den := (LocalFactor{P: 283, Omega: 46}).Ratio()
	assert.Equal(t, uint64(237), num)
	assert.Equal(t, uint64(282), den)

	num, den = (LocalFactor{P: 2}).Ratio()
	assert.Equal(t, uint64(2), num)
	assert.Equal(t, uint64(1), den)
}

func TestAccumulateOver300(t *testing.T) {
	primes, err := qmath.Sieve(300)
	require.NoError(t, err)
	require.Len(t, primes, 62) // π(300)

	st := Accumulate(primes)

	assert.Equal(t, 1, st.NRamified)
	assert.Equal(t, 1, st.NSplitting) // 283 is the only splitting prime below 300
	assert.Equal(t, 60, st.NShielding)
	assert.Equal(t, uint64(293), st.PMax)

	// The full product is the shielding sub-product times 283's factor.
	want := new(big.Float).SetPrec(st.Prec).Quo(big.NewFloat(237), big.NewFloat(282))
	want.Mul(want, st.ShieldingProduct)
	cq, _ := st.CQ.Float64()
	w, _ := want.Float64()
	assert.InDelta(t, w, cq, 1e-12)
	assert.Greater(t, cq, 1.0)
}

func TestAccumulateObserver(t *testing.T) {
	primes, err := qmath.Sieve(100)
	require.NoError(t, err)

	var seen []uint64
	st := Accumulate(primes, WithObserver(func(lf LocalFactor, st *State) {
		seen = append(seen, lf.P)
	}))

	require.Len(t, seen, len(primes))
	for i, p := range primes {
		assert.Equal(t, p, seen[i], "observer must see primes in ascending order")
	}
	assert.Equal(t, uint64(97), st.PMax)
}

func TestAccumulatePrecisionOption(t *testing.T) {
	primes, err := qmath.Sieve(1000)
	require.NoError(t, err)

	lo := Accumulate(primes, WithPrecision(64))
	hi := Accumulate(primes, WithPrecision(256))
	assert.Equal(t, uint(64), lo.Prec)

	a, _ := lo.CQ.Float64()
	b, _ := hi.CQ.Float64()
	assert.InDelta(t, b, a, 1e-9, "precision choice must not move the value materially")
}

func TestAccumulateEmpty(t *testing.T) {
	st := Accumulate(nil)
	cq, _ := st.CQ.Float64()
	assert.Equal(t, 1.0, cq)
	assert.Zero(t, st.NShielding+st.NSplitting+st.NRamified)
}

func TestPredictionScalesLinearly(t *testing.T) {
	one := Prediction(1.0, 2e9)
	two := Prediction(2.0, 2e9)
	assert.InDelta(t, 2*one, two, 1e-6)
	assert.Greater(t, one, 0.0)
}
