// kem.go - Kyber key encapsulation mechanism.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/subtle"
	"io"

	"github.com/pkg/errors"

	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/xof"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("kyber: invalid private key")
)

// PublicKey is a Kyber public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
	h  [32]byte
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.publicKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "%s: got %d bytes, want %d", p.Name(), len(b), p.publicKeySize)
	}
	inner := indcpaPublicKeyFromBytes(b, p)
	return &PublicKey{pk: inner, p: p, h: xof.SHA3_256(b)}, nil
}

// PrivateKey is a Kyber private key, bundling the CPA secret key with the
// cached CPA public key, H(pk) and the implicit-rejection seed z.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey, laid out as
// CPA_sk || CPA_pk || H(pk) || z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.toBytes()...)
	b = append(b, sk.PublicKey.pk.toBytes()...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, errors.Wrapf(ErrInvalidKeySize, "%s: got %d bytes, want %d", p.Name(), len(b), p.secretKeySize)
	}

	sk := new(PrivateKey)
	sk.PublicKey.p = p
	sk.z = make([]byte, SymSize)

	off := p.indcpaSecretKeySize
	pkBytes := b[off : off+p.publicKeySize]
	sk.PublicKey.pk = indcpaPublicKeyFromBytes(pkBytes, p)
	sk.PublicKey.h = xof.SHA3_256(pkBytes)
	off += p.publicKeySize

	if !bytes.Equal(sk.PublicKey.h[:], b[off:off+SymSize]) {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "stored H(pk) does not match recomputed hash")
	}
	off += SymSize
	copy(sk.z, b[off:])

	sk.sk = indcpaSecretKeyFromBytes(b[:p.indcpaSecretKeySize], p)

	return sk, nil
}

// GenerateKeyPair implements KEM.Keygen: it wraps CPA.Keygen, caches
// H(pk), and draws the implicit-rejection seed z.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, err
	}
	kp.PublicKey.p = p
	kp.PublicKey.h = xof.SHA3_256(kp.PublicKey.pk.toBytes())

	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// KEMEncrypt implements KEM.Encaps: draw a random message m, derive
// (K, r) = G(m, H(pk)), and encrypt m under coins r to obtain the
// ciphertext paired with the shared secret K.
func (pk *PublicKey) KEMEncrypt(rng io.Reader) (cipherText []byte, sharedSecret []byte, err error) {
	m := make([]byte, SymSize)
	if _, err = io.ReadFull(rng, m); err != nil {
		return nil, nil, err
	}

	k, r := xof.G(m, pk.h[:])
	cipherText = pk.p.indcpaEncrypt(pk.pk, m, r[:])
	sharedSecret = append([]byte{}, k[:]...)

	return cipherText, sharedSecret, nil
}

// KEMDecrypt implements KEM.Decaps: recover m' via CPA.Decrypt, recompute
// (K', r'), re-encrypt to ct', and return K' when ct == ct' under a
// constant-time comparison, or the implicit-rejection fallback
// SHA3-256(z || ct) otherwise.
//
// A short or otherwise malformed ciphertext is not rejected: CPA.Decrypt
// treats its missing tail as all-zero (see splitCiphertext), so the
// re-encryption equality check below will fail and implicit rejection
// takes over, returning the pseudo-random fallback rather than an error.
func (sk *PrivateKey) KEMDecrypt(cipherText []byte) (sharedSecret []byte) {
	p := sk.PublicKey.p

	mPrime := p.indcpaDecrypt(sk.sk, cipherText)
	kPrime, rPrime := xof.G(mPrime, sk.PublicKey.h[:])
	ctPrime := p.indcpaEncrypt(sk.PublicKey.pk, mPrime, rPrime[:])

	fallback := xof.H(sk.z, cipherText)

	fail := subtle.ConstantTimeSelect(subtle.ConstantTimeCompare(cipherText, ctPrime), 0, 1)
	out := make([]byte, SymSize)
	subtle.ConstantTimeCopy(1-fail, out, kPrime[:])
	subtle.ConstantTimeCopy(fail, out, fallback[:])

	return out
}
