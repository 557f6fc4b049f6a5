package qmath

import "errors"

// Sentinel errors for the arithmetic core. Callers match with errors.Is.
var (
	// ErrDivisionByZero is returned by DivMod when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidModulus is returned by ModPow when the modulus is not positive.
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrInvalidExponent is returned by ModPow when the exponent is negative.
	ErrInvalidExponent = errors.New("exponent must be non-negative")

	// ErrSieveLimit is returned by Sieve when the limit is negative or too
	// large to allocate a marking table for.
	ErrSieveLimit = errors.New("sieve limit out of range")
)
