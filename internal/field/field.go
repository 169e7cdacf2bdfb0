// Package field implements modular arithmetic over Z_q for a caller-supplied
// modulus q, shared by every ring built on top of it (Kyber's q=3329 and
// Dilithium's q=8380417 alike).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package field

import (
	"fmt"
	"math/bits"
)

// Element is a value in [0, Modulus) together with the modulus it belongs
// to. Every arithmetic method panics if its operands don't share a modulus;
// that is a programmer error, not a runtime condition callers should expect
// to recover from.
type Element struct {
	Value   int64
	Modulus int64
}

// New normalizes v into [0, q) and returns the resulting Element. v may be
// negative or exceed q; New reduces it via ((v mod q) + q) mod q.
func New(v int64, q int64) Element {
	return Element{Value: normalize(v, q), Modulus: q}
}

// Zero returns the additive identity of Z_q.
func Zero(q int64) Element {
	return Element{Value: 0, Modulus: q}
}

func normalize(v, q int64) int64 {
	v %= q
	if v < 0 {
		v += q
	}
	return v
}

func (e Element) sameModulus(o Element) {
	if e.Modulus != o.Modulus {
		panic(fmt.Sprintf("field: modulus mismatch %d != %d", e.Modulus, o.Modulus))
	}
}

// Add returns e+o mod q.
func (e Element) Add(o Element) Element {
	e.sameModulus(o)
	return New(e.Value+o.Value, e.Modulus)
}

// Sub returns e-o mod q.
func (e Element) Sub(o Element) Element {
	e.sameModulus(o)
	return New(e.Value-o.Value, e.Modulus)
}

// Mul returns e*o mod q. The product is accumulated in 64 bits before
// reduction so it doesn't overflow for Dilithium's 23-bit modulus.
func (e Element) Mul(o Element) Element {
	e.sameModulus(o)
	return New(e.Value*o.Value, e.Modulus)
}

// Neg returns -e mod q.
func (e Element) Neg() Element {
	return New(-e.Value, e.Modulus)
}

// Centered returns the signed representative in (-q/2, q/2].
func (e Element) Centered() int64 {
	if e.Value > e.Modulus/2 {
		return e.Value - e.Modulus
	}
	return e.Value
}

// Inverse returns the multiplicative inverse of e via the extended
// Euclidean algorithm, and ok=false when e is zero.
func (e Element) Inverse() (inv Element, ok bool) {
	if e.Value == 0 {
		return Element{}, false
	}
	g, x, _ := extendedGCD(e.Value, e.Modulus)
	if g != 1 {
		return Element{}, false
	}
	return New(x, e.Modulus), true
}

func extendedGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extendedGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// BarrettParams precomputes the factor and shift used by Reduce and
// Reduce2x for a fixed modulus q: factor = floor(2^shift / q).
type BarrettParams struct {
	Modulus int64
	Shift   uint
	Factor  int64
}

// NewBarrettParams builds reduction constants for modulus q using a shift
// wide enough that, for any product of two representatives below q, the
// quotient estimate is at most one below the true quotient.
func NewBarrettParams(q int64) BarrettParams {
	shift := uint(2 * bitLen(q))
	factor := (int64(1) << shift) / q
	return BarrettParams{Modulus: q, Shift: shift, Factor: factor}
}

func bitLen(x int64) uint {
	n := uint(0)
	for x > 0 {
		x >>= 1
		n++
	}
	return n
}

// Reduce performs Barrett reduction of a (which may be as large as q^2, and
// may be negative) down to the canonical representative in [0, q), via a
// final conditional subtraction/addition pass over Reduce2x's approximate
// result.
func (b BarrettParams) Reduce(a int64) int64 {
	r := b.Reduce2x(a)
	for r >= b.Modulus {
		r -= b.Modulus
	}
	for r < 0 {
		r += b.Modulus
	}
	return r
}

// Reduce2x computes an approximate reduction that may still be off from
// the canonical representative by a small multiple of the modulus in
// either direction; callers that need a canonical [0,q) representative
// should use Reduce instead.
//
// The quotient estimate a*factor>>shift is computed via a 128-bit
// intermediate product (math/bits.Mul64) rather than a plain int64
// multiply, since a*factor can exceed the range of int64 well before a
// itself approaches q^2 for moduli like Dilithium's q=8380417.
func (b BarrettParams) Reduce2x(a int64) int64 {
	if a < 0 {
		return -b.Reduce2x(-a)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b.Factor))
	var t uint64
	switch {
	case b.Shift == 0:
		t = lo
	case b.Shift < 64:
		t = (hi << (64 - b.Shift)) | (lo >> b.Shift)
	default:
		t = hi >> (b.Shift - 64)
	}
	return a - int64(t)*b.Modulus
}
