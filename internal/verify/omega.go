package verify

import (
	"context"

	"q47/internal/qmath"
	"q47/internal/series"
)

// OmegaMismatch records a prime where the classification rule and the brute
// force root count disagree. An empty mismatch list is the expected outcome.
type OmegaMismatch struct {
	P     uint64
	Rule  uint64
	Brute uint64
}

// OmegaReport summarizes a rule-vs-brute-force comparison up to PMax.
type OmegaReport struct {
	PMax       int
	Checked    int
	Mismatches []OmegaMismatch
}

// OmegaRule sieves primes ≤ pMax and compares series.Omega against a direct
// root count for each.
func OmegaRule(ctx context.Context, pMax int) (OmegaReport, error) {
	primes, err := qmath.Sieve(pMax)
	if err != nil {
		return OmegaReport{}, err
	}

	report := OmegaReport{PMax: pMax}
	for _, p := range primes {
		if err := ctx.Err(); err != nil {
			return OmegaReport{}, err
		}
		rule := series.Omega(p)
		brute := series.BruteForceOmega(p)
		report.Checked++
		if rule != brute {
			report.Mismatches = append(report.Mismatches, OmegaMismatch{P: p, Rule: rule, Brute: brute})
		}
	}
	return report, nil
}
