package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const kyberQ = 3329

func TestInverse(t *testing.T) {
	require := require.New(t)

	e := New(5, kyberQ)
	inv, ok := e.Inverse()
	require.True(ok)
	require.EqualValues(666, inv.Value, "5^-1 mod 3329 must be 666")

	one := e.Mul(inv)
	require.EqualValues(1, one.Value)
}

func TestInverseOfZero(t *testing.T) {
	require := require.New(t)

	_, ok := Zero(kyberQ).Inverse()
	require.False(ok)
}

func TestAddStaysInRange(t *testing.T) {
	require := require.New(t)

	for a := int64(0); a < kyberQ; a += 97 {
		for b := int64(0); b < kyberQ; b += 131 {
			sum := New(a, kyberQ).Add(New(b, kyberQ))
			require.GreaterOrEqual(sum.Value, int64(0))
			require.Less(sum.Value, int64(kyberQ))
		}
	}
}

func TestNegateAndSub(t *testing.T) {
	require := require.New(t)

	a := New(10, kyberQ)
	b := New(3, kyberQ)
	require.Equal(a.Sub(b), a.Add(b.Neg()))
}

func TestCentered(t *testing.T) {
	require := require.New(t)

	require.EqualValues(1, New(1, kyberQ).Centered())
	require.EqualValues(-1, New(kyberQ-1, kyberQ).Centered())
}

func TestMismatchedModulusPanics(t *testing.T) {
	require := require.New(t)

	require.Panics(func() {
		New(1, kyberQ).Add(New(1, 97))
	})
}

func TestBarrettReduceMatchesModulo(t *testing.T) {
	require := require.New(t)

	bp := NewBarrettParams(kyberQ)
	for a := int64(0); a < kyberQ*kyberQ; a += 104729 {
		require.Equal(a%kyberQ, bp.Reduce(a))
	}
}

// TestBarrettReduceDilithiumModulus exercises the 128-bit intermediate
// product path: for q=8380417, a near q^2 makes a*factor overflow a plain
// int64 multiply, which Reduce2x must avoid via math/bits.Mul64.
func TestBarrettReduceDilithiumModulus(t *testing.T) {
	require := require.New(t)

	const dilithiumQ = 8380417
	bp := NewBarrettParams(dilithiumQ)

	for a := int64(0); a < dilithiumQ*dilithiumQ; a += 3_000_000_019 {
		require.Equal(a%dilithiumQ, bp.Reduce(a), "a=%d", a)
	}

	// The exact top of the documented range, where the overflow manifests.
	top := int64(dilithiumQ)*int64(dilithiumQ) - 1
	require.Equal(top%dilithiumQ, bp.Reduce(top))
}

func TestBarrettReduceNegative(t *testing.T) {
	require := require.New(t)

	bp := NewBarrettParams(kyberQ)
	require.EqualValues(kyberQ-5, bp.Reduce(-5))
	require.EqualValues(0, bp.Reduce(0))
}
