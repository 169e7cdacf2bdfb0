package xof

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShakeDeterministic(t *testing.T) {
	require := require.New(t)

	a := Shake128([]byte("seed"), 64)
	b := Shake128([]byte("seed"), 64)
	require.Equal(a, b)

	c := Shake128([]byte("other"), 64)
	require.NotEqual(a, c)
}

func TestPRFVariesByNonce(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, 32)
	a := PRF(seed, 0, 32)
	b := PRF(seed, 1, 32)
	require.NotEqual(a, b)
}

func TestGSplitsOutput(t *testing.T) {
	require := require.New(t)

	m := make([]byte, 32)
	h := make([]byte, 32)
	k1, r1 := G(m, h)
	k2, r2 := G(m, h)

	require.Equal(k1, k2)
	require.Equal(r1, r2)
	require.NotEqual(k1, r1)
}

func TestHConcatenatesChunks(t *testing.T) {
	require := require.New(t)

	a := H([]byte("ab"), []byte("cd"))
	b := H([]byte("abcd"))
	require.Equal(a, b)
}
