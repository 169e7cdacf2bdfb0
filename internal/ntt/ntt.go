// Package ntt implements the Number-Theoretic Transform used to multiply
// polynomials in R_q in O(n log n) instead of O(n^2). It is parameterized
// by (q, n, psi) so the same engine serves Kyber's q=3329 and any other
// ring sharing the X^n+1 negacyclic structure.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package ntt

import "github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/field"

// Params holds the precomputed tables for a fixed (q, n, psi): psi is a
// 2n-th primitive root of unity mod q, the bit-reversed forward and
// inverse twiddle tables, n^-1 mod q, and the Barrett reduction constants
// used by every butterfly step in Forward/Inverse/PointwiseMul.
type Params struct {
	Q        int64
	N        int
	Psi      int64
	Roots    []int64 // roots[i] = psi^(brv(i) * n/2 mod n) mod q
	InvRoots []int64
	NInv     int64
	Barrett  field.BarrettParams
}

// New builds the twiddle tables for modulus q, degree n (a power of two)
// and primitive root psi.
func New(q int64, n int, psi int64) *Params {
	p := &Params{Q: q, N: n, Psi: psi, Barrett: field.NewBarrettParams(q)}
	psiInv := modInverse(psi, q)

	// Forward/Inverse read entry half+i for every stage up to length n, so
	// the tables hold n entries.
	p.Roots = make([]int64, n)
	p.InvRoots = make([]int64, n)
	bits := bitLen(n) - 1
	for i := 0; i < n; i++ {
		br := bitReverse(i, bits)
		exp := (br * n / 2) % n
		p.Roots[i] = powMod(psi, int64(exp), q)
		p.InvRoots[i] = powMod(psiInv, int64(exp), q)
	}
	p.NInv = modInverse(int64(n), q)
	return p
}

func bitLen(x int) int {
	n := 0
	for x > 1 {
		x >>= 1
		n++
	}
	return n + 1
}

func bitReverse(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func powMod(base, exp, mod int64) int64 {
	base %= mod
	if base < 0 {
		base += mod
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % mod
		}
		base = (base * base) % mod
		exp >>= 1
	}
	return result
}

func modInverse(a, mod int64) int64 {
	g, x, _ := extendedGCD(a%mod, mod)
	if g != 1 {
		panic("ntt: modulus is not invertible against a (not coprime)")
	}
	x %= mod
	if x < 0 {
		x += mod
	}
	return x
}

func extendedGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extendedGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

func bitReverseInPlace(a []int64) {
	n := len(a)
	bits := bitLen(n) - 1
	for i := 0; i < n; i++ {
		j := bitReverse(i, bits)
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// Forward computes the in-place Cooley-Tukey NTT of a (in standard
// coefficient order), leaving a in bit-reversed NTT-domain order.
func (p *Params) Forward(a []int64) {
	bitReverseInPlace(a)

	for length := 2; length <= p.N; length <<= 1 {
		half := length / 2
		for start := 0; start < p.N; start += length {
			for i := 0; i < half; i++ {
				w := p.Roots[half+i]
				t := p.Barrett.Reduce(w * a[start+i+half])
				u := a[start+i]
				a[start+i] = p.Barrett.Reduce(u + t)
				a[start+i+half] = p.Barrett.Reduce(u - t)
			}
		}
	}
}

// Inverse computes the in-place Gentleman-Sande inverse NTT of a (in
// bit-reversed NTT-domain order), leaving a in standard coefficient order.
func (p *Params) Inverse(a []int64) {
	for length := p.N; length >= 2; length >>= 1 {
		half := length / 2
		for start := 0; start < p.N; start += length {
			for i := 0; i < half; i++ {
				w := p.InvRoots[half+i]
				u := a[start+i]
				v := a[start+i+half]
				a[start+i] = p.Barrett.Reduce(u + v)
				a[start+i+half] = p.Barrett.Reduce(w * p.Barrett.Reduce(u-v))
			}
		}
	}

	bitReverseInPlace(a)

	for i := range a {
		a[i] = p.Barrett.Reduce(a[i] * p.NInv)
	}
}

// PointwiseMul returns the coefficient-wise product of two NTT-domain
// coefficient vectors.
func (p *Params) PointwiseMul(a, b []int64) []int64 {
	out := make([]int64, p.N)
	for i := range out {
		out[i] = p.Barrett.Reduce(a[i] * b[i])
	}
	return out
}
