package verify

import (
	"context"
	"fmt"

	"q47/internal/poly"
	"q47/internal/qmath"
)

// ExclusionReport is the outcome of scanning the structural exclusion
// identity Q(n) ≡ 1 (mod 3) over [From, To]. The identity implies
// Q(n)+2 ≡ 0 (mod 3), so (Q(n), Q(n)+2) is never a twin prime pair.
type ExclusionReport struct {
	From, To int64
	Checked  int64
	Holds    bool

	// Counterexample fields are meaningful only when Holds is false.
	CounterexampleN int64
	Residue         int64
}

// ctxCheckStride bounds how stale a cancellation can go unnoticed.
const ctxCheckStride = 4096

// Exclusion scans n from lo through hi and stops at the first n with
// Q(n) mod 3 ≠ 1. The identity only holds from n = 2, so lo below that is
// rejected.
func Exclusion(ctx context.Context, lo, hi int64) (ExclusionReport, error) {
	if lo < 2 {
		return ExclusionReport{}, fmt.Errorf("exclusion range must start at n >= 2, got %d", lo)
	}
	if hi < lo {
		return ExclusionReport{}, fmt.Errorf("exclusion range [%d, %d] is empty", lo, hi)
	}

	report := ExclusionReport{From: lo, To: hi, Holds: true}
	for n := lo; n <= hi; n++ {
		if (n-lo)%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return ExclusionReport{}, err
			}
		}
		r, err := poly.QMod(qmath.FromInt64(n), 3)
		if err != nil {
			return ExclusionReport{}, err
		}
		report.Checked++
		if r != 1 {
			report.Holds = false
			report.CounterexampleN = n
			report.Residue = r
			return report, nil
		}
	}
	return report, nil
}
