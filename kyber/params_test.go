package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterSetSizes(t *testing.T) {
	require := require.New(t)

	require.Equal(2, Kyber512.K())
	require.Equal(3, Kyber512.Eta1())
	require.Equal(2, Kyber512.Eta2())

	require.Equal(3, Kyber768.K())
	require.Equal(2, Kyber768.Eta1())
	require.Equal(2, Kyber768.Eta2())

	require.Equal(4, Kyber1024.K())
	require.Equal(2, Kyber1024.Eta1())
	require.Equal(2, Kyber1024.Eta2())

	// Public key = 32-byte seed + k * n * 2 bytes (12-bit packing).
	require.Equal(32+2*256*2, Kyber512.PublicKeySize())
	require.Equal(32+3*256*2, Kyber768.PublicKeySize())
	require.Equal(32+4*256*2, Kyber1024.PublicKeySize())

	// Ciphertext = k*n*ceil(du/8) + n*ceil(dv/8) = k*256*2 + 256*1.
	require.Equal(2*256*2+256, Kyber512.CipherTextSize())
	require.Equal(3*256*2+256, Kyber768.CipherTextSize())
	require.Equal(4*256*2+256, Kyber1024.CipherTextSize())
}
