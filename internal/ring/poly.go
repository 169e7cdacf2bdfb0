// Package ring implements the polynomial ring R_q = Z_q[X]/(X^n+1) and the
// vectors and matrices built from it, used by Kyber's CPA-PKE.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package ring

import (
	"fmt"

	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/field"
)

// Poly is a fixed-degree polynomial over Z_q with an NTT-domain tag. The
// tag is a phantom marker: it flips on every call to a transform and gates
// which multiplication routine is legal.
type Poly struct {
	Coeffs []int64
	N      int
	Q      int64
	NTT    bool
}

// NewPoly zero-pads coeffs to degree n and returns a standard-domain
// polynomial over Z_q.
func NewPoly(coeffs []int64, n int, q int64) Poly {
	c := make([]int64, n)
	for i, v := range coeffs {
		if i >= n {
			break
		}
		c[i] = normalize(v, q)
	}
	return Poly{Coeffs: c, N: n, Q: q}
}

// Zero returns the zero polynomial over Z_q of degree n.
func Zero(n int, q int64) Poly {
	return Poly{Coeffs: make([]int64, n), N: n, Q: q}
}

// Constant returns the degree-n polynomial equal to the scalar v.
func Constant(v int64, n int, q int64) Poly {
	p := Zero(n, q)
	p.Coeffs[0] = normalize(v, q)
	return p
}

func normalize(v int64, q int64) int64 {
	v %= q
	if v < 0 {
		v += q
	}
	return v
}

func (p Poly) checkCompatible(o Poly) {
	if p.N != o.N || p.Q != o.Q {
		panic(fmt.Sprintf("ring: shape mismatch n=%d/%d q=%d/%d", p.N, o.N, p.Q, o.Q))
	}
	if p.NTT != o.NTT {
		panic("ring: NTT-domain mismatch between operands")
	}
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	c := make([]int64, len(p.Coeffs))
	copy(c, p.Coeffs)
	return Poly{Coeffs: c, N: p.N, Q: p.Q, NTT: p.NTT}
}

// Add returns p+o, coefficient-wise mod q. Each coefficient pair is added
// as a field.Element, since a polynomial in R_q is exactly n field
// elements sharing a modulus.
func (p Poly) Add(o Poly) Poly {
	p.checkCompatible(o)
	r := Zero(p.N, p.Q)
	r.NTT = p.NTT
	for i := range r.Coeffs {
		sum := field.New(p.Coeffs[i], p.Q).Add(field.New(o.Coeffs[i], p.Q))
		r.Coeffs[i] = sum.Value
	}
	return r
}

// Sub returns p-o, coefficient-wise mod q.
func (p Poly) Sub(o Poly) Poly {
	p.checkCompatible(o)
	r := Zero(p.N, p.Q)
	r.NTT = p.NTT
	for i := range r.Coeffs {
		diff := field.New(p.Coeffs[i], p.Q).Sub(field.New(o.Coeffs[i], p.Q))
		r.Coeffs[i] = diff.Value
	}
	return r
}

// Neg returns -p, coefficient-wise mod q.
func (p Poly) Neg() Poly {
	r := Zero(p.N, p.Q)
	r.NTT = p.NTT
	for i := range r.Coeffs {
		r.Coeffs[i] = field.New(p.Coeffs[i], p.Q).Neg().Value
	}
	return r
}

// ScalarMul multiplies every coefficient of p by the scalar s mod q.
func (p Poly) ScalarMul(s int64) Poly {
	r := Zero(p.N, p.Q)
	r.NTT = p.NTT
	scalar := field.New(s, p.Q)
	for i := range r.Coeffs {
		r.Coeffs[i] = field.New(p.Coeffs[i], p.Q).Mul(scalar).Value
	}
	return r
}

// PointwiseMul returns the coefficient-wise product of p and o. Both must
// be tagged NTT-domain; this is the multiplication routine legal there.
func (p Poly) PointwiseMul(o Poly) Poly {
	p.checkCompatible(o)
	if !p.NTT {
		panic("ring: PointwiseMul requires NTT-domain operands")
	}
	r := Zero(p.N, p.Q)
	r.NTT = true
	for i := range r.Coeffs {
		r.Coeffs[i] = normalize(p.Coeffs[i]*o.Coeffs[i], p.Q)
	}
	return r
}

// SchoolbookMul returns the product of p and o in R_q = Z_q[X]/(X^n+1)
// computed by direct convolution with negacyclic wraparound: a
// contribution landing at index i+j >= n is folded back in with its sign
// flipped, since X^n = -1 in this ring. Both operands must be in the
// standard domain.
func (p Poly) SchoolbookMul(o Poly) Poly {
	p.checkCompatible(o)
	if p.NTT {
		panic("ring: SchoolbookMul requires standard-domain operands")
	}
	r := Zero(p.N, p.Q)
	n := p.N
	for i := 0; i < n; i++ {
		if p.Coeffs[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if o.Coeffs[j] == 0 {
				continue
			}
			product := p.Coeffs[i] * o.Coeffs[j]
			idx := i + j
			if idx >= n {
				idx -= n
				product = -product
			}
			r.Coeffs[idx] = normalize(r.Coeffs[idx]+product, p.Q)
		}
	}
	return r
}

// Eval evaluates p at x mod q using Horner-like accumulation of the
// running power of x.
func (p Poly) Eval(x int64) int64 {
	x = normalize(x, p.Q)
	acc := int64(0)
	pow := int64(1)
	for _, c := range p.Coeffs {
		acc = normalize(acc+c*pow, p.Q)
		pow = normalize(pow*x, p.Q)
	}
	return acc
}

// Compress quantizes every coefficient of p down to a d-bit representative:
// compress(x) = floor((2^d*x + q/2) / q) mod 2^d. The returned polynomial's
// modulus is set to 2^d to reflect the new coefficient range.
func (p Poly) Compress(d int) Poly {
	r := Zero(p.N, int64(1)<<uint(d))
	two := int64(1) << uint(d)
	for i, x := range p.Coeffs {
		v := (two*x + p.Q/2) / p.Q
		r.Coeffs[i] = v % two
	}
	return r
}

// Decompress reconstructs an approximate Z_q coefficient from a d-bit
// compressed representative: decompress(y) = floor((q*y + 2^(d-1)) / 2^d).
func (p Poly) Decompress(d int, q int64) Poly {
	r := Zero(p.N, q)
	two := int64(1) << uint(d)
	half := int64(1) << uint(d-1)
	for i, y := range p.Coeffs {
		r.Coeffs[i] = (q*y + half) / two
	}
	return r
}

// Centered returns the signed representative of x in (-q/2, q/2].
func Centered(x, q int64) int64 {
	if x > q/2 {
		return x - q
	}
	return x
}

// HighBits returns floor(x/gamma2) per coefficient, used by Dilithium's
// signature-compression decomposition.
func (p Poly) HighBits(gamma2 int64) []int64 {
	out := make([]int64, p.N)
	for i, x := range p.Coeffs {
		out[i] = x / gamma2
	}
	return out
}

// LowBits returns x mod gamma2 per coefficient, recentered to
// (-gamma2/2, gamma2/2].
func (p Poly) LowBits(gamma2 int64) []int64 {
	out := make([]int64, p.N)
	for i, x := range p.Coeffs {
		low := x % gamma2
		if low > gamma2/2 {
			low -= gamma2
		}
		out[i] = low
	}
	return out
}

// InfinityNorm returns the maximum absolute value of p's coefficients
// under the centered representative.
func (p Poly) InfinityNorm() int64 {
	var max int64
	for _, x := range p.Coeffs {
		c := Centered(x, p.Q)
		if c < 0 {
			c = -c
		}
		if c > max {
			max = c
		}
	}
	return max
}

// ToBytes packs every coefficient into ceil(d/8) little-endian bytes,
// masked to d bits. This is a simple but bit-inefficient layout when d is
// not a byte multiple.
func (p Poly) ToBytes(d int) []byte {
	width := (d + 7) / 8
	out := make([]byte, p.N*width)
	mask := (uint64(1) << uint(d)) - 1
	for i, c := range p.Coeffs {
		v := uint64(c) & mask
		for b := 0; b < width; b++ {
			out[i*width+b] = byte(v >> uint(8*b))
		}
	}
	return out
}

// FromBytes unpacks n coefficients of d bits each from data, per the
// layout written by ToBytes. Short input is treated as implicitly
// zero-padded, yielding zero coefficients for the missing tail rather than
// an error.
func FromBytes(data []byte, n, d int, q int64) Poly {
	width := (d + 7) / 8
	mask := (uint64(1) << uint(d)) - 1
	p := Zero(n, q)
	for i := 0; i < n; i++ {
		var v uint64
		for b := 0; b < width; b++ {
			off := i*width + b
			if off >= len(data) {
				continue
			}
			v |= uint64(data[off]) << uint(8*b)
		}
		p.Coeffs[i] = int64(v & mask)
	}
	return p
}
