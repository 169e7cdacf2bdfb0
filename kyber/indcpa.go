// indcpa.go - Kyber IND-CPA encryption.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/ring"
	"github.com/hkanpak21/Lyubashevsky-Lattice-Based-Crypto/internal/sampling"
)

// indcpaPublicKey is the CPA public key: a 32-byte seed rho used to
// regenerate the public matrix A, and t_hat = A*s + e in NTT domain.
type indcpaPublicKey struct {
	rho  []byte
	tHat ring.Vector
	p    *ParameterSet
}

// indcpaSecretKey is the CPA secret key: s_hat in NTT domain.
type indcpaSecretKey struct {
	sHat ring.Vector
	p    *ParameterSet
}

// expandMatrix deterministically regenerates the k x k public matrix A
// from the seed rho via sampling.ExpandA, one call per (i,j) entry.
func (p *ParameterSet) expandMatrix(rho []byte) ring.Matrix {
	rows := make([][]ring.Poly, p.k)
	for i := 0; i < p.k; i++ {
		row := make([]ring.Poly, p.k)
		for j := 0; j < p.k; j++ {
			row[j] = sampling.ExpandA(rho, byte(i), byte(j), kyberN, kyberQ)
		}
		rows[i] = row
	}
	return ring.NewMatrix(rows)
}

func invertVector(v ring.Vector) ring.Vector {
	return v.FromNTTDomain(nttParams)
}

func invertPoly(p ring.Poly) ring.Poly {
	coeffs := append([]int64{}, p.Coeffs...)
	nttParams.Inverse(coeffs)
	return ring.NewPoly(coeffs, p.N, p.Q)
}

// indcpaKeyPair implements Kyber's CPA-PKE Keygen: draw rho and sigma,
// expand the public matrix A from rho, sample the secret and error
// vectors from sigma via incrementing PRF nonces, and compute t_hat =
// A_hat*s_hat + e_hat entirely in NTT domain.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	rho := make([]byte, SymSize)
	sigma := make([]byte, SymSize)
	if _, err := io.ReadFull(rng, rho); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rng, sigma); err != nil {
		return nil, nil, err
	}

	aHat := p.expandMatrix(rho).ToNTTDomain(nttParams)

	sPolys := make([]ring.Poly, p.k)
	ePolys := make([]ring.Poly, p.k)
	for i := 0; i < p.k; i++ {
		sPolys[i] = sampling.SamplePolyFromSeed(sigma, uint16(i), p.eta1, kyberN, kyberQ)
		ePolys[i] = sampling.SamplePolyFromSeed(sigma, uint16(p.k+i), p.eta1, kyberN, kyberQ)
	}
	sHat := ring.NewVector(sPolys...).ToNTTDomain(nttParams)
	eHat := ring.NewVector(ePolys...).ToNTTDomain(nttParams)

	tHat := aHat.MulVec(sHat, nil).Add(eHat)

	pk := &indcpaPublicKey{rho: rho, tHat: tHat, p: p}
	sk := &indcpaSecretKey{sHat: sHat, p: p}
	return pk, sk, nil
}

// decodeMessage maps each bit of a 32-byte message to a coefficient,
// b*floor(q/2), as Kyber's Decode.
func decodeMessage(msg []byte, q int64) ring.Poly {
	poly := ring.Zero(kyberN, q)
	half := q / 2
	for i := 0; i < kyberN; i++ {
		byteIdx, bitIdx := i/8, uint(i%8)
		if byteIdx < len(msg) && (msg[byteIdx]>>bitIdx)&1 == 1 {
			poly.Coeffs[i] = half
		}
	}
	return poly
}

// encodeMessage is Kyber's Encode: a coefficient decodes to bit 1 when its
// representative lies strictly between q/4 and 3q/4.
func encodeMessage(p ring.Poly) []byte {
	out := make([]byte, SymSize)
	lo, hi := p.Q/4, 3*p.Q/4
	for i, x := range p.Coeffs {
		if x > lo && x < hi {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// indcpaEncrypt implements Kyber's CPA-PKE Encrypt: rebuild A from rho,
// sample r, e1 and e2 from coins via incrementing PRF nonces, and compute
// the compressed ciphertext (u, v).
func (p *ParameterSet) indcpaEncrypt(pk *indcpaPublicKey, msg, coins []byte) []byte {
	aHatT := p.expandMatrix(pk.rho).ToNTTDomain(nttParams).Transpose()

	rPolys := make([]ring.Poly, p.k)
	e1Polys := make([]ring.Poly, p.k)
	for i := 0; i < p.k; i++ {
		rPolys[i] = sampling.SamplePolyFromSeed(coins, uint16(i), p.eta1, kyberN, kyberQ)
		e1Polys[i] = sampling.SamplePolyFromSeed(coins, uint16(p.k+i), p.eta2, kyberN, kyberQ)
	}
	e2 := sampling.SamplePolyFromSeed(coins, uint16(2*p.k), p.eta2, kyberN, kyberQ)

	rHat := ring.NewVector(rPolys...).ToNTTDomain(nttParams)
	e1 := ring.NewVector(e1Polys...)

	uHat := aHatT.MulVec(rHat, nil)
	u := invertVector(uHat).Add(e1)

	vTermHat := pk.tHat.InnerProduct(rHat, nil)
	v := invertPoly(vTermHat).Add(e2).Add(decodeMessage(msg, kyberQ))

	packed := make([]byte, 0, p.cipherTextSize)
	for i := 0; i < p.k; i++ {
		packed = append(packed, u.Polys[i].Compress(kyberDu).ToBytes(kyberDu)...)
	}
	packed = append(packed, v.Compress(kyberDv).ToBytes(kyberDv)...)
	return packed
}

// indcpaDecrypt implements Kyber's CPA-PKE Decrypt: decompress (u, v),
// recompute the noisy message polynomial via the secret key, and decode
// it back to bytes. Short or malformed ciphertext bytes are not rejected;
// the missing tail is treated as all-zero, per splitCiphertext.
func (p *ParameterSet) indcpaDecrypt(sk *indcpaSecretKey, ct []byte) []byte {
	uBytes, vBytes := p.splitCiphertext(ct)
	uWidth := byteWidth(kyberDu)

	uPolys := make([]ring.Poly, p.k)
	for i := 0; i < p.k; i++ {
		chunk := uBytes[i*kyberN*uWidth : (i+1)*kyberN*uWidth]
		compressed := ring.FromBytes(chunk, kyberN, kyberDu, int64(1)<<uint(kyberDu))
		uPolys[i] = compressed.Decompress(kyberDu, kyberQ)
	}
	vCompressed := ring.FromBytes(vBytes, kyberN, kyberDv, int64(1)<<uint(kyberDv))
	v := vCompressed.Decompress(kyberDv, kyberQ)

	uHat := ring.NewVector(uPolys...).ToNTTDomain(nttParams)
	termHat := sk.sHat.InnerProduct(uHat, nil)
	term := invertPoly(termHat)

	return encodeMessage(v.Sub(term))
}

// splitCiphertext divides ct into its u and v byte regions, zero-filling
// whatever a short or malformed input is missing rather than rejecting it.
func (p *ParameterSet) splitCiphertext(ct []byte) (uBytes, vBytes []byte) {
	uSize := p.k * kyberN * byteWidth(kyberDu)
	vSize := kyberN * byteWidth(kyberDv)

	uBytes = make([]byte, uSize)
	vBytes = make([]byte, vSize)
	n := copy(uBytes, ct)
	if n < uSize {
		return uBytes, vBytes
	}
	copy(vBytes, ct[uSize:])
	return uBytes, vBytes
}

// toBytes serializes the CPA public key as rho || pack(t_hat, 12 bits).
func (pk *indcpaPublicKey) toBytes() []byte {
	out := make([]byte, 0, pk.p.indcpaPublicKeySize)
	out = append(out, pk.rho...)
	for _, poly := range pk.tHat.Polys {
		out = append(out, poly.ToBytes(pkCoeffBits)...)
	}
	return out
}

func indcpaPublicKeyFromBytes(data []byte, p *ParameterSet) *indcpaPublicKey {
	rho := make([]byte, SymSize)
	copy(rho, data[:minInt(SymSize, len(data))])

	rest := data[minInt(SymSize, len(data)):]
	width := byteWidth(pkCoeffBits)
	polys := make([]ring.Poly, p.k)
	for i := 0; i < p.k; i++ {
		start, end := i*kyberN*width, (i+1)*kyberN*width
		chunk := sliceOrEmpty(rest, start, end)
		poly := ring.FromBytes(chunk, kyberN, pkCoeffBits, kyberQ)
		poly.NTT = true
		polys[i] = poly
	}
	return &indcpaPublicKey{rho: rho, tHat: ring.NewVector(polys...), p: p}
}

// toBytes serializes the CPA secret key as pack(s_hat, 12 bits).
func (sk *indcpaSecretKey) toBytes() []byte {
	out := make([]byte, 0, sk.p.indcpaSecretKeySize)
	for _, poly := range sk.sHat.Polys {
		out = append(out, poly.ToBytes(pkCoeffBits)...)
	}
	return out
}

func indcpaSecretKeyFromBytes(data []byte, p *ParameterSet) *indcpaSecretKey {
	width := byteWidth(pkCoeffBits)
	polys := make([]ring.Poly, p.k)
	for i := 0; i < p.k; i++ {
		start, end := i*kyberN*width, (i+1)*kyberN*width
		chunk := sliceOrEmpty(data, start, end)
		poly := ring.FromBytes(chunk, kyberN, pkCoeffBits, kyberQ)
		poly.NTT = true
		polys[i] = poly
	}
	return &indcpaSecretKey{sHat: ring.NewVector(polys...), p: p}
}

func sliceOrEmpty(data []byte, start, end int) []byte {
	if start >= len(data) {
		return nil
	}
	if end > len(data) {
		end = len(data)
	}
	return data[start:end]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
