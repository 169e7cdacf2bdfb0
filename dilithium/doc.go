// doc.go - Dilithium parameter surface.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package dilithium exposes the ML-DSA style Dilithium parameter surface:
// the security levels Dilithium2/3/5, the per-level lattice dimensions
// and bounds, and the sizing helpers derived from them. Its NTT tables are
// built on the internal ntt package that package kyber also uses; it does
// not implement signing or verification.
package dilithium
