package oberon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("pk round trip"))
	pk := PublicKeyFrom(sk)

	decoded, ok := PublicKeyFromBytes(pk.Bytes())
	require.True(t, ok.IsTrue())
	require.Equal(t, pk.Bytes(), decoded.Bytes())
}

func TestPublicKeyFromBytesRejectsGarbage(t *testing.T) {
	var data [PublicKeyBytes]byte
	for i := range data {
		data[i] = 0xff
	}
	_, ok := PublicKeyFromBytes(data)
	require.False(t, ok.IsTrue())
}

func TestPublicKeyIsInvalidDetectsIdentity(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("identity check"))
	pk := PublicKeyFrom(sk)
	require.False(t, pk.IsInvalid().IsTrue())

	var zeroed PublicKey
	require.True(t, zeroed.IsInvalid().IsTrue())
}
