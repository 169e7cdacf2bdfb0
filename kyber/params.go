// params.go - Kyber parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/ntt"

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN   = 256
	kyberQ   = 3329
	kyberPsi = 17

	// du, dv are the compression widths for the ciphertext's u and v
	// components.
	kyberDu = 10
	kyberDv = 4

	// pkCoeffBits is the packing width used for public-key and secret-key
	// coefficients: a whole-byte little-endian layout at 12 bits per
	// coefficient, not FIPS 203's bit-packed layout.
	pkCoeffBits = 12
)

// nttParams is shared by every Kyber parameter set, since q, n and psi
// never vary across Kyber-512/768/1024.
var nttParams = ntt.New(kyberQ, kyberN, kyberPsi)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide security
	// equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2, 3, 2)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide security
	// equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3, 2, 2)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4, 2, 2)
)

// ParameterSet is a Kyber parameter set.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int

	polyBytes    int // bytes of one standard-domain poly, 12 bits/coeff
	polyVecBytes int // k * polyBytes

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	cipherTextSize      int

	publicKeySize int
	secretKeySize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank.
func (p *ParameterSet) K() int { return p.k }

// Eta1 returns the noise parameter used for the secret and the
// encryption-time error vector r.
func (p *ParameterSet) Eta1() int { return p.eta1 }

// Eta2 returns the noise parameter used for the ciphertext's e1/e2 terms.
func (p *ParameterSet) Eta2() int { return p.eta2 }

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func byteWidth(bits int) int {
	return (bits + 7) / 8
}

func newParameterSet(name string, k, eta1, eta2 int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2

	p.polyBytes = kyberN * byteWidth(pkCoeffBits)
	p.polyVecBytes = k * p.polyBytes

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecBytes + SymSize
	p.indcpaSecretKeySize = p.polyVecBytes

	uSize := k * kyberN * byteWidth(kyberDu)
	vSize := kyberN * byteWidth(kyberDv)
	p.cipherTextSize = uSize + vSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // H(pk) and z

	return &p
}
