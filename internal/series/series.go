// Package series computes the truncated singular series for the family
// Q(n) = n^47 - (n-1)^47: the Euler product over primes of
//
//	L(p) = (1 - ω_Q(p)/p) / (1 - 1/p) = (p - ω_Q(p)) / (p - 1)
//
// where ω_Q(p) counts the roots of Q modulo p. The root count follows from
// p mod 47 alone: the congruence n^47 ≡ (n-1)^47 (mod p) reduces to
// z^47 ≡ 1 for z = n/(n-1), so p contributes 46 finite roots when
// 47 | p-1, none otherwise, and the prime 47 itself is ramified with none.
package series

import (
	"math"
	"math/big"
)

// exponent mirrors poly.Exponent; the classification rule is arithmetic in
// this constant only.
const exponent = 47

// Classification sorts a prime by its root count modulo it.
type Classification int

const (
	// Shielding primes contribute no roots and push the product up by
	// p/(p-1); they are the generic case.
	Shielding Classification = iota
	// Splitting primes (p ≡ 1 mod 47) contribute 46 roots and pull the
	// product down by (p-46)/(p-1).
	Splitting
	// Ramified marks the single prime 47, where Q(n) ≡ 1 identically.
	Ramified
)

func (c Classification) String() string {
	switch c {
	case Shielding:
		return "shielding"
	case Splitting:
		return "splitting"
	case Ramified:
		return "ramified"
	default:
		return "unknown"
	}
}

// Classify applies the p mod 47 rule.
func Classify(p uint64) Classification {
	switch {
	case p == exponent:
		return Ramified
	case (p-1)%exponent == 0:
		return Splitting
	default:
		return Shielding
	}
}

// Omega returns ω_Q(p), the number of n in [0, p) with Q(n) ≡ 0 (mod p).
func Omega(p uint64) uint64 {
	if Classify(p) == Splitting {
		return exponent - 1
	}
	return 0
}

// LocalFactor is the per-prime term of the Euler product.
type LocalFactor struct {
	P     uint64
	Omega uint64
	Class Classification
}

// Ratio returns the exact value of the local factor as an integer fraction
// (p - ω)/(p - 1).
func (lf LocalFactor) Ratio() (num, den uint64) {
	return lf.P - lf.Omega, lf.P - 1
}

// State is the running accumulation. Fields grow monotonically as primes are
// folded in ascending order.
type State struct {
	// CQ is the truncated singular series over all primes seen so far.
	CQ *big.Float
	// ShieldingProduct is the sub-product over ω = 0 primes (the ramified
	// prime included, since its local factor is also 47/46).
	ShieldingProduct *big.Float

	NRamified  int
	NShielding int
	NSplitting int

	// PMax is the largest prime folded in.
	PMax uint64
	// Prec is the working big.Float precision in bits.
	Prec uint
}

// DefaultPrecision bounds accumulated rounding: each fold performs two
// correctly-rounded operations, so after n primes the relative error of the
// product is below 2n·2^(1-prec), under 10^-24 for a million primes at 96
// bits and far inside reporting precision.
const DefaultPrecision = 96

// Option adjusts an accumulation run.
type Option func(*accumulator)

// WithPrecision overrides the big.Float working precision.
func WithPrecision(bits uint) Option {
	return func(a *accumulator) { a.prec = bits }
}

// WithObserver registers a callback invoked after each prime is folded, with
// that prime's local factor and the state so far. Milestone selection and
// progress printing live entirely in the caller.
func WithObserver(fn func(LocalFactor, *State)) Option {
	return func(a *accumulator) { a.observe = fn }
}

type accumulator struct {
	prec    uint
	observe func(LocalFactor, *State)
}

// Accumulate folds primes, which must be ascending, into a fresh State.
// Multiplication is commutative so the mathematical value would not care
// about order, but observers rely on ascending delivery.
func Accumulate(primes []uint64, opts ...Option) *State {
	acc := accumulator{prec: DefaultPrecision}
	for _, opt := range opts {
		opt(&acc)
	}

	st := &State{
		CQ:               big.NewFloat(1).SetPrec(acc.prec),
		ShieldingProduct: big.NewFloat(1).SetPrec(acc.prec),
		Prec:             acc.prec,
	}

	num := new(big.Float).SetPrec(acc.prec)
	den := new(big.Float).SetPrec(acc.prec)
	factor := new(big.Float).SetPrec(acc.prec)

	for _, p := range primes {
		lf := LocalFactor{P: p, Omega: Omega(p), Class: Classify(p)}
		n, d := lf.Ratio()
		num.SetUint64(n)
		den.SetUint64(d)
		factor.Quo(num, den)

		st.CQ.Mul(st.CQ, factor)
		if lf.Omega == 0 {
			st.ShieldingProduct.Mul(st.ShieldingProduct, factor)
		}

		switch lf.Class {
		case Ramified:
			st.NRamified++
		case Shielding:
			st.NShielding++
		case Splitting:
			st.NSplitting++
		}
		st.PMax = p

		if acc.observe != nil {
			acc.observe(lf, st)
		}
	}
	return st
}

// Prediction returns the Bateman–Horn-style predicted count
// cq·N/ln(Q(N)) with ln(Q(N)) ≈ ln 47 + 46·ln N. Reporting helper only;
// the accumulator itself never touches it.
func Prediction(cq float64, n float64) float64 {
	lnQN := math.Log(exponent) + float64(exponent-1)*math.Log(n)
	return cq * n / lnQN
}
