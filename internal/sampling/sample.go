// Package sampling derives polynomials from seeds: uniform matrix
// expansion, centered-binomial noise, and Dilithium's sparse challenge
// polynomial.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package sampling

import (
	"encoding/binary"
	"io"

	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/ring"
	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/xof"
)

// UniformZq draws n coefficients uniformly from [0, q) using entropy read
// from rng.
func UniformZq(rng io.Reader, n int, q int64) ring.Poly {
	p := ring.Zero(n, q)
	buf := make([]byte, 4)
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			panic(err)
		}
		v := int64(binary.LittleEndian.Uint32(buf)) % q
		if v < 0 {
			v += q
		}
		p.Coeffs[i] = v
	}
	return p
}

// UniformBounded draws n coefficients uniformly from [-beta, beta] using
// entropy read from rng, represented as elements of Z_q.
func UniformBounded(rng io.Reader, n int, q int64, beta int64) ring.Poly {
	p := ring.Zero(n, q)
	span := uint32(2*beta + 1)
	buf := make([]byte, 4)
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			panic(err)
		}
		v := int64(binary.LittleEndian.Uint32(buf)%span) - beta
		if v < 0 {
			v += q
		}
		p.Coeffs[i] = v
	}
	return p
}

func loadLittleEndian(x []byte) uint64 {
	var r uint64
	for i, b := range x {
		r |= uint64(b) << uint(8*i)
	}
	return r
}

// CBD draws n coefficients from the centered binomial distribution with
// parameter eta: for each coefficient, 2*eta independent bits are drawn
// and the coefficient is popcount(first eta) - popcount(last eta), so its
// support is [-eta, eta]. buf must hold at least n*eta/4 bytes (the
// standard PRF(seed, nonce, 64*eta) output size for n=256).
func CBD(buf []byte, eta int, n int, q int64) ring.Poly {
	p := ring.Zero(n, q)

	switch eta {
	case 2:
		for i := 0; i < n/8; i++ {
			t := loadLittleEndian(buf[4*i : 4*i+4])
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555
			for j := 0; j < 8; j++ {
				a := int64((d >> uint(4*j)) & 0x3)
				b := int64((d >> uint(4*j+2)) & 0x3)
				p.Coeffs[8*i+j] = normalize(a-b, q)
			}
		}
	case 3:
		for i := 0; i < n/4; i++ {
			t := loadLittleEndian(buf[3*i : 3*i+3])
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249
			for j := 0; j < 4; j++ {
				a := int64((d >> uint(6*j)) & 0x7)
				b := int64((d >> uint(6*j+3)) & 0x7)
				p.Coeffs[4*i+j] = normalize(a-b, q)
			}
		}
	default:
		// General fallback for any eta: read 2*eta bits per coefficient
		// from the bitstream one at a time.
		bitIdx := 0
		readBit := func() int64 {
			byteIdx := bitIdx / 8
			off := uint(bitIdx % 8)
			bitIdx++
			return int64((buf[byteIdx] >> off) & 1)
		}
		for i := 0; i < n; i++ {
			var a, b int64
			for j := 0; j < eta; j++ {
				a += readBit()
			}
			for j := 0; j < eta; j++ {
				b += readBit()
			}
			p.Coeffs[i] = normalize(a-b, q)
		}
	}
	return p
}

func normalize(v, q int64) int64 {
	v %= q
	if v < 0 {
		v += q
	}
	return v
}

// SamplePolyFromSeed derives deterministic noise for (seed, nonce) via
// PRF(seed, nonce, n*eta/4) followed by CBD sampling, the pattern used by
// Kyber's CPA-PKE keygen and encrypt to turn a short seed into an error
// polynomial.
func SamplePolyFromSeed(seed []byte, nonce uint16, eta, n int, q int64) ring.Poly {
	buf := xof.PRF(seed, nonce, n*eta/4)
	return CBD(buf, eta, n, q)
}

// ExpandA deterministically expands a 32-byte seed rho into the (i,j)
// entry of Kyber's public matrix A, by feeding SHAKE-128 with rho||i||j
// and reading two bytes per coefficient, interpreted as a little-endian
// u16 reduced mod q. NIST's rejection sampling is simplified here to a
// direct modular reduction.
func ExpandA(rho []byte, i, j byte, n int, q int64) ring.Poly {
	seed := make([]byte, len(rho)+2)
	copy(seed, rho)
	seed[len(rho)] = i
	seed[len(rho)+1] = j

	stream := xof.Shake128(seed, 2*n)
	p := ring.Zero(n, q)
	for k := 0; k < n; k++ {
		v := int64(binary.LittleEndian.Uint16(stream[2*k : 2*k+2]))
		p.Coeffs[k] = v % q
	}
	return p
}

// SampleInBall produces a polynomial with exactly tau nonzero coefficients
// from {-1,+1}, at positions chosen by a partial Fisher-Yates shuffle of
// [0,n) driven by a SHAKE-256 stream over seed. It is Dilithium's
// challenge-polynomial sampler, exposed here as part of the shared
// sampling surface.
func SampleInBall(seed []byte, tau, n int, q int64) ring.Poly {
	p := ring.Zero(n, q)

	// First ceil(tau/8) bytes of the stream supply one sign bit per
	// nonzero position; the remainder supplies shuffle indices, drawn
	// generously since each is rejected whenever it lands past i.
	signBytes := (tau + 7) / 8
	stream := xof.Shake256(seed, signBytes+8*n)
	signs := stream[:signBytes]
	idxStream := stream[signBytes:]
	streamPos := 0

	nextByte := func(limit int) int {
		for {
			if streamPos >= len(idxStream) {
				idxStream = xof.Shake256(append(idxStream, seed...), len(idxStream)+8*n)
			}
			b := int(idxStream[streamPos])
			streamPos++
			if b <= limit {
				return b
			}
		}
	}

	for i := n - tau; i < n; i++ {
		pos := nextByte(i)
		p.Coeffs[i], p.Coeffs[pos] = p.Coeffs[pos], p.Coeffs[i]

		bitIdx := i - (n - tau)
		sign := (signs[bitIdx/8] >> uint(bitIdx%8)) & 1
		if sign == 1 {
			p.Coeffs[pos] = normalize(-1, q)
		} else {
			p.Coeffs[pos] = normalize(1, q)
		}
	}
	return p
}
