// Package verify orchestrates the evaluator, the primality tester, and the
// classification rule into the three checks the suite reports on: the known
// prime quadruplets, the mod-3 exclusion identity, and the ω_Q rule. All
// functions return structured results and leave formatting to the caller.
package verify

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"q47/internal/poly"
	"q47/internal/primality"
	"q47/internal/qmath"
)

// KnownQuadrupletStarts are the 14 starting indices n for which Q(n)..Q(n+3)
// were found simultaneously (probably) prime in the 2×10⁹ survey.
var KnownQuadrupletStarts = []int64{
	117309848, 136584738, 218787064, 411784485, 423600750,
	523331634, 640399031, 987980498, 1163461515, 1370439187,
	1643105964, 1691581855, 1975860550, 1996430175,
}

// Member is one of the four values of a quadruplet case.
type Member struct {
	N             int64
	Digits        int
	ProbablePrime bool
}

// QuadrupletCase records the verdict for one starting index. Immutable once
// returned.
type QuadrupletCase struct {
	Start    int64
	Members  [4]Member
	AllPrime bool
}

// Quadruplet evaluates Q(n)..Q(n+3) and tests each with t. The context is
// consulted between members; a cancelled run returns ctx.Err.
func Quadruplet(ctx context.Context, n int64, t *primality.Tester) (QuadrupletCase, error) {
	qc := QuadrupletCase{Start: n, AllPrime: true}
	for i := int64(0); i < 4; i++ {
		if err := ctx.Err(); err != nil {
			return QuadrupletCase{}, err
		}
		q := poly.Q(qmath.FromInt64(n + i))
		m := Member{
			N:             n + i,
			Digits:        q.DigitCount(),
			ProbablePrime: t.IsProbablePrime(q),
		}
		qc.Members[i] = m
		if !m.ProbablePrime {
			qc.AllPrime = false
		}
	}
	return qc, nil
}

// Quadruplets verifies every start with up to workers cases in flight,
// results in input order. newTester supplies one Tester per worker; Testers
// own their randomness source and are not goroutine-safe.
func Quadruplets(ctx context.Context, starts []int64, workers int, newTester func() *primality.Tester) ([]QuadrupletCase, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]QuadrupletCase, len(starts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, start := range starts {
		eg.Go(func() error {
			qc, err := Quadruplet(egCtx, start, newTester())
			if err != nil {
				return fmt.Errorf("quadruplet at n=%d: %w", start, err)
			}
			results[i] = qc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
