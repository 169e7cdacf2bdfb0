// params.go - Dilithium parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package dilithium

import "github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/ntt"

const (
	// Q is Dilithium's coefficient modulus, 2^23 - 2^13 + 1.
	Q int64 = 8380417

	// N is the polynomial degree shared by every Dilithium level.
	N = 256

	// Psi is a 512th primitive root of unity mod Q, the base for this
	// ring's NTT twiddle factors.
	Psi int64 = 1753

	// SeedBytes is the size in bytes of the seeds used to derive A, the
	// secret vectors and the public key hash.
	SeedBytes = 32
)

// NTTParams are the shared twiddle tables for Dilithium's ring, built once
// and reused by every security level.
var NTTParams = ntt.New(Q, N, Psi)

// SecurityLevel selects one of the three standardized parameter sets.
type SecurityLevel int

const (
	// Dilithium2 targets NIST security category 2 (ML-DSA-44).
	Dilithium2 SecurityLevel = iota
	// Dilithium3 targets NIST security category 3 (ML-DSA-65).
	Dilithium3
	// Dilithium5 targets NIST security category 5 (ML-DSA-87).
	Dilithium5
)

// Params is the full parameter tuple for a Dilithium security level: the
// module dimensions (k, l), the secret noise bound eta, the challenge
// weight tau, the rejection bound beta = tau*eta, and the compression
// bounds gamma1/gamma2 with the number of hint bits omega.
type Params struct {
	Name   string
	K      int
	L      int
	Eta    int64
	Tau    int
	Beta   int64
	Gamma1 int64
	Gamma2 int64
	Omega  int
}

var paramTable = map[SecurityLevel]Params{
	Dilithium2: {
		Name: "Dilithium2", K: 4, L: 4, Eta: 2, Tau: 39, Beta: 78,
		Gamma1: 1 << 17, Gamma2: 95, Omega: 80,
	},
	Dilithium3: {
		Name: "Dilithium3", K: 6, L: 5, Eta: 4, Tau: 49, Beta: 196,
		Gamma1: 1 << 19, Gamma2: 261, Omega: 55,
	},
	Dilithium5: {
		Name: "Dilithium5", K: 8, L: 7, Eta: 2, Tau: 60, Beta: 120,
		Gamma1: 1 << 19, Gamma2: 147, Omega: 75,
	},
}

// Params returns the parameter tuple for the security level.
func (lvl SecurityLevel) Params() Params {
	p, ok := paramTable[lvl]
	if !ok {
		panic("dilithium: unknown security level")
	}
	return p
}

// String returns the level's canonical name.
func (lvl SecurityLevel) String() string {
	return lvl.Params().Name
}

func byteWidth(bits int) int {
	return (bits + 7) / 8
}

// coeffBits is the whole-byte packing width used for a standard-domain
// Z_q coefficient: ceil(log2(q)) bits, little-endian, matching the
// simple packing convention used throughout this module rather than
// NIST's bit-exact layout.
const coeffBits = 23 // 2^23 > Q > 2^22

// PublicKeyBytes returns the size in bytes of a serialized public key:
// a SeedBytes-byte rho plus k packed polynomials for t1.
func (p Params) PublicKeyBytes() int {
	return SeedBytes + p.K*N*byteWidth(coeffBits)
}

// SecretKeyBytes returns the size in bytes of a serialized secret key: its
// s1 (l polys) and s2 (k polys) components, packed at a width wide enough
// for coefficients bounded by eta, plus two SeedBytes-byte seeds.
func (p Params) SecretKeyBytes() int {
	etaWidth := byteWidth(bitLen(2*p.Eta + 1))
	return (p.L+p.K)*N*etaWidth + 2*SeedBytes
}

// SignatureBytes returns the size in bytes of a serialized signature: the
// SeedBytes-byte challenge seed plus its z (l polys, gamma1-bounded) and
// hint (omega 1-bits plus k length bytes) components.
func (p Params) SignatureBytes() int {
	zWidth := byteWidth(bitLen(2*p.Gamma1 + 1))
	return SeedBytes + p.L*N*zWidth + p.Omega + p.K
}

func bitLen(x int64) int {
	n := 0
	for x > 0 {
		x >>= 1
		n++
	}
	return n
}
