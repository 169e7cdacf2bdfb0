// doc.go - Kyber godoc extras.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the Kyber IND-CCA2-secure key encapsulation
// mechanism (KEM), based on the hardness of solving the learning-with-errors
// (LWE) problem over module lattices, plus the underlying IND-CPA public
// key encryption scheme it is built from via the Fujisaki-Okamoto
// transform.
//
// This is an educational implementation: coefficient packing uses a
// simple whole-byte little-endian layout rather than FIPS 203's bit-exact
// packing, and ExpandA uses direct modular reduction rather than rejection
// sampling. Neither choice targets interoperability with the NIST
// reference encodings. Constant-time behavior is guaranteed only for the
// ciphertext equality check inside KEMDecrypt; all other arithmetic is
// variable-time.
package kyber
