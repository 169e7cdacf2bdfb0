package ring

import (
	"fmt"

	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/ntt"
)

// Matrix is a rectangular arrangement of polynomials with a shared modulus
// descriptor; rows are indexable as Vectors.
type Matrix struct {
	Rows [][]Poly
	NR   int
	NC   int
}

// NewMatrix builds a Matrix from nr rows of nc polynomials each.
func NewMatrix(rows [][]Poly) Matrix {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	return Matrix{Rows: rows, NR: nr, NC: nc}
}

// Row returns row i as a Vector.
func (m Matrix) Row(i int) Vector {
	return Vector{Polys: m.Rows[i]}
}

// Col returns column j as a Vector.
func (m Matrix) Col(j int) Vector {
	c := make([]Poly, m.NR)
	for i := 0; i < m.NR; i++ {
		c[i] = m.Rows[i][j]
	}
	return Vector{Polys: c}
}

// MulVec computes A*v as the per-row inner product of A with v.
func (m Matrix) MulVec(v Vector, params *ntt.Params) Vector {
	if m.NC != v.Len() {
		panic(fmt.Sprintf("ring: matrix-vector shape mismatch %d != %d", m.NC, v.Len()))
	}
	out := make([]Poly, m.NR)
	for i := 0; i < m.NR; i++ {
		out[i] = m.Row(i).InnerProduct(v, params)
	}
	return Vector{Polys: out}
}

// MulMat computes A*B; entry (i,j) is the inner product of row i of A with
// column j of B.
func (m Matrix) MulMat(o Matrix, params *ntt.Params) Matrix {
	if m.NC != o.NR {
		panic(fmt.Sprintf("ring: matrix-matrix shape mismatch %d != %d", m.NC, o.NR))
	}
	rows := make([][]Poly, m.NR)
	for i := 0; i < m.NR; i++ {
		row := make([]Poly, o.NC)
		for j := 0; j < o.NC; j++ {
			row[j] = m.Row(i).InnerProduct(o.Col(j), params)
		}
		rows[i] = row
	}
	return NewMatrix(rows)
}

// Transpose returns the NC x NR transpose of m.
func (m Matrix) Transpose() Matrix {
	rows := make([][]Poly, m.NC)
	for j := 0; j < m.NC; j++ {
		rows[j] = make([]Poly, m.NR)
		for i := 0; i < m.NR; i++ {
			rows[j][i] = m.Rows[i][j]
		}
	}
	return NewMatrix(rows)
}

// ToNTTDomain applies the forward transform to every entry.
func (m Matrix) ToNTTDomain(params *ntt.Params) Matrix {
	rows := make([][]Poly, m.NR)
	for i := 0; i < m.NR; i++ {
		rows[i] = m.Row(i).ToNTTDomain(params).Polys
	}
	return NewMatrix(rows)
}

// FromNTTDomain applies the inverse transform to every entry.
func (m Matrix) FromNTTDomain(params *ntt.Params) Matrix {
	rows := make([][]Poly, m.NR)
	for i := 0; i < m.NR; i++ {
		rows[i] = m.Row(i).FromNTTDomain(params).Polys
	}
	return NewMatrix(rows)
}
