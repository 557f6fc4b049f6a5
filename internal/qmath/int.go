// Package qmath implements the exact arithmetic core of the Q47 verification
// suite: an immutable arbitrary-precision integer value type, modular
// exponentiation, and a prime sieve.
//
// Int wraps math/big.Int behind value semantics: every operation returns a
// fresh value and no method mutates its receiver or arguments. The underlying
// representation is big's normalized little-endian word-limb nat (no leading
// zero limbs; zero is the empty limb slice), which is exactly the invariant
// the rest of the suite relies on.
package qmath

import (
	"fmt"
	"math/big"
	"math/rand"
)

// Int is an exact signed integer of unbounded magnitude. The zero value is
// usable and represents 0.
type Int struct {
	v *big.Int
}

// FromInt64 constructs an Int from a native integer.
func FromInt64(x int64) Int {
	return Int{v: big.NewInt(x)}
}

// FromUint64 constructs an Int from a native unsigned integer.
func FromUint64(x uint64) Int {
	return Int{v: new(big.Int).SetUint64(x)}
}

// FromString parses a base-10 integer, with an optional leading sign.
func FromString(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("invalid decimal integer %q", s)
	}
	return Int{v: v}, nil
}

// big returns the receiver's value as a *big.Int that callers within the
// package may read but must never mutate.
func (x Int) big() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	return Int{v: new(big.Int).Add(x.big(), y.big())}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return Int{v: new(big.Int).Sub(x.big(), y.big())}
}

// Mul returns x · y.
func (x Int) Mul(y Int) Int {
	return Int{v: new(big.Int).Mul(x.big(), y.big())}
}

// DivMod returns the Euclidean quotient and remainder of x / y, with the
// remainder in [0, |y|). It fails with ErrDivisionByZero when y is zero.
func (x Int) DivMod(y Int) (q, r Int, err error) {
	if y.Sign() == 0 {
		return Int{}, Int{}, ErrDivisionByZero
	}
	qv, rv := new(big.Int), new(big.Int)
	qv.DivMod(x.big(), y.big(), rv)
	return Int{v: qv}, Int{v: rv}, nil
}

// Pow returns x^e by binary exponentiation. The result is exact; there is no
// modular reduction. The exponent is a native non-negative integer, which is
// all the polynomial family requires.
func (x Int) Pow(e uint) Int {
	result := big.NewInt(1)
	sq := new(big.Int).Set(x.big())
	for e > 0 {
		if e&1 == 1 {
			result.Mul(result, sq)
		}
		e >>= 1
		if e > 0 {
			sq.Mul(sq, sq)
		}
	}
	return Int{v: result}
}

// Cmp returns -1, 0, or +1 according to whether x < y, x == y, or x > y.
func (x Int) Cmp(y Int) int {
	return x.big().Cmp(y.big())
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Int) Sign() int {
	return x.big().Sign()
}

// BitLen returns the length of the absolute value of x in bits.
func (x Int) BitLen() int {
	return x.big().BitLen()
}

// Bit returns bit i of |x|.
func (x Int) Bit(i int) uint {
	return x.big().Bit(i)
}

// Rsh returns x >> k.
func (x Int) Rsh(k uint) Int {
	return Int{v: new(big.Int).Rsh(x.big(), k)}
}

// Int64 reports the value as a native integer when it fits.
func (x Int) Int64() (int64, bool) {
	if !x.big().IsInt64() {
		return 0, false
	}
	return x.big().Int64(), true
}

// String renders x in base 10.
func (x Int) String() string {
	return x.big().String()
}

// DigitCount returns the number of decimal digits in |x|. Zero has one digit.
func (x Int) DigitCount() int {
	if x.Sign() == 0 {
		return 1
	}
	s := x.big().Text(10)
	if s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// RandBelow draws a uniformly random value in [0, upper) from rnd.
// upper must be positive.
func RandBelow(rnd *rand.Rand, upper Int) Int {
	return Int{v: new(big.Int).Rand(rnd, upper.big())}
}
