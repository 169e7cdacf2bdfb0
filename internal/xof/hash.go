// Package xof collects the hash and extendable-output primitives shared by
// Kyber's sampling and FO-transform layers: SHA3-256/512 for fixed-length
// digests, SHAKE-128/256 for arbitrary-length streams, and the derived
// PRF/G/H combinators used throughout keygen, encrypt and decaps.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
package xof

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// SHA3_256 returns the 32-byte SHA3-256 digest of data.
func SHA3_256(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// SHA3_512 returns the 64-byte SHA3-512 digest of data.
func SHA3_512(data []byte) [64]byte {
	return sha3.Sum512(data)
}

// Shake128 returns n bytes of SHAKE-128 output over data.
func Shake128(data []byte, n int) []byte {
	h := sha3.NewShake128()
	h.Write(data)
	out := make([]byte, n)
	h.Read(out)
	return out
}

// Shake256 returns n bytes of SHAKE-256 output over data.
func Shake256(data []byte, n int) []byte {
	h := sha3.NewShake256()
	h.Write(data)
	out := make([]byte, n)
	h.Read(out)
	return out
}

// PRF derives len bytes of pseudorandom output from seed and a 16-bit
// nonce: SHAKE256(seed || nonce_le, len).
func PRF(seed []byte, nonce uint16, length int) []byte {
	buf := make([]byte, len(seed)+2)
	copy(buf, seed)
	binary.LittleEndian.PutUint16(buf[len(seed):], nonce)
	return Shake256(buf, length)
}

// G computes SHAKE256(m || h, 64) and splits the output into K and r, each
// 32 bytes.
func G(m, h []byte) (k, r [32]byte) {
	buf := make([]byte, len(m)+len(h))
	copy(buf, m)
	copy(buf[len(m):], h)
	out := Shake256(buf, 64)
	copy(k[:], out[:32])
	copy(r[:], out[32:])
	return k, r
}

// H computes SHA3-256 over the concatenation of every chunk in data.
func H(data ...[]byte) [32]byte {
	total := 0
	for _, d := range data {
		total += len(d)
	}
	buf := make([]byte, 0, total)
	for _, d := range data {
		buf = append(buf, d...)
	}
	return SHA3_256(buf)
}
