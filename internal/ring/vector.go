package ring

import (
	"fmt"

	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/ntt"
)

// Vector is a sequence of polynomials sharing a common modulus descriptor.
type Vector struct {
	Polys []Poly
}

// NewVector wraps the given polynomials into a Vector.
func NewVector(polys ...Poly) Vector {
	return Vector{Polys: polys}
}

// Len returns the number of polynomial entries.
func (v Vector) Len() int { return len(v.Polys) }

func (v Vector) checkCompatible(o Vector) {
	if v.Len() != o.Len() {
		panic(fmt.Sprintf("ring: vector length mismatch %d != %d", v.Len(), o.Len()))
	}
}

// Add returns the element-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	v.checkCompatible(o)
	r := make([]Poly, v.Len())
	for i := range r {
		r[i] = v.Polys[i].Add(o.Polys[i])
	}
	return Vector{Polys: r}
}

// Sub returns the element-wise difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	v.checkCompatible(o)
	r := make([]Poly, v.Len())
	for i := range r {
		r[i] = v.Polys[i].Sub(o.Polys[i])
	}
	return Vector{Polys: r}
}

// ToNTTDomain applies the forward transform to every entry.
func (v Vector) ToNTTDomain(params *ntt.Params) Vector {
	r := make([]Poly, v.Len())
	for i, p := range v.Polys {
		r[i] = transformPoly(p, params, true)
	}
	return Vector{Polys: r}
}

// FromNTTDomain applies the inverse transform to every entry.
func (v Vector) FromNTTDomain(params *ntt.Params) Vector {
	r := make([]Poly, v.Len())
	for i, p := range v.Polys {
		r[i] = transformPoly(p, params, false)
	}
	return Vector{Polys: r}
}

func transformPoly(p Poly, params *ntt.Params, forward bool) Poly {
	out := p.Clone()
	if forward {
		if p.NTT {
			panic("ring: Forward requires a standard-domain polynomial")
		}
		params.Forward(out.Coeffs)
		out.NTT = true
	} else {
		if !p.NTT {
			panic("ring: Inverse requires an NTT-domain polynomial")
		}
		params.Inverse(out.Coeffs)
		out.NTT = false
	}
	return out
}

// InnerProduct computes sum_i v[i]*o[i] in R_q. When params is non-nil and
// the operands aren't already NTT-tagged, each pair is transformed,
// multiplied pointwise and inverted before accumulating; otherwise each pair
// is multiplied directly: pointwise when the operands are already NTT-tagged
// (the accumulation then stays in NTT domain), schoolbook when they are not.
func (v Vector) InnerProduct(o Vector, params *ntt.Params) Poly {
	v.checkCompatible(o)
	if v.Len() == 0 {
		panic("ring: InnerProduct of empty vectors")
	}

	if params != nil && !v.Polys[0].NTT && !o.Polys[0].NTT {
		acc := Zero(v.Polys[0].N, v.Polys[0].Q)
		for i := range v.Polys {
			a := transformPoly(v.Polys[i], params, true)
			b := transformPoly(o.Polys[i], params, true)
			prod := a.PointwiseMul(b)
			prod = transformPoly(prod, params, false)
			acc = acc.Add(prod)
		}
		return acc
	}

	acc := Zero(v.Polys[0].N, v.Polys[0].Q)
	acc.NTT = v.Polys[0].NTT
	for i := range v.Polys {
		var term Poly
		if v.Polys[i].NTT {
			term = v.Polys[i].PointwiseMul(o.Polys[i])
		} else {
			term = v.Polys[i].SchoolbookMul(o.Polys[i])
		}
		acc = acc.Add(term)
	}
	return acc
}
