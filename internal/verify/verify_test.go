package verify

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"q47/internal/primality"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seededFactory(rounds int) func() *primality.Tester {
	seed := int64(0)
	return func() *primality.Tester {
		seed++
		return primality.New(rounds, rand.NewSource(seed))
	}
}

func TestQuadrupletCompositeStart(t *testing.T) {
	// Q(2) = 2^47 - 1 is composite, so the case must fail.
	qc, err := Quadruplet(context.Background(), 2, seededFactory(10)())
	require.NoError(t, err)

	assert.False(t, qc.AllPrime)
	assert.False(t, qc.Members[0].ProbablePrime)
	assert.Equal(t, int64(2), qc.Start)
	for i, m := range qc.Members {
		assert.Equal(t, int64(2+i), m.N)
		assert.Greater(t, m.Digits, 0)
	}
}

func TestQuadrupletCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Quadruplet(ctx, 2, seededFactory(10)())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQuadrupletsPreserveInputOrder(t *testing.T) {
	starts := []int64{2, 5, 3, 11}
	cases, err := Quadruplets(context.Background(), starts, 4, seededFactory(5))
	require.NoError(t, err)
	require.Len(t, cases, len(starts))
	for i, qc := range cases {
		assert.Equal(t, starts[i], qc.Start)
	}
}

func TestQuadrupletsWorkerFloor(t *testing.T) {
	cases, err := Quadruplets(context.Background(), []int64{2}, 0, seededFactory(5))
	require.NoError(t, err)
	require.Len(t, cases, 1)
}

func TestKnownQuadrupletStartsList(t *testing.T) {
	require.Len(t, KnownQuadrupletStarts, 14)
	assert.Equal(t, int64(117309848), KnownQuadrupletStarts[0])
	assert.Equal(t, int64(1996430175), KnownQuadrupletStarts[13])
}

func TestFirstKnownQuadruplet(t *testing.T) {
	if testing.Short() {
		t.Skip("four ~370-digit Miller-Rabin runs; skipped in -short")
	}

	tester := primality.New(primality.DefaultRounds, rand.NewSource(1))
	qc, err := Quadruplet(context.Background(), KnownQuadrupletStarts[0], tester)
	require.NoError(t, err)

	assert.True(t, qc.AllPrime)
	for _, m := range qc.Members {
		assert.True(t, m.ProbablePrime, "Q(%d) must be a probable prime", m.N)
		assert.Equal(t, 373, m.Digits)
	}
}
