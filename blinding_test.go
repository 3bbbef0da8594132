package oberon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBlindingDeterministic(t *testing.T) {
	b1, err := NewBlinding([]byte("device-fingerprint-1"))
	require.NoError(t, err)
	b2, err := NewBlinding([]byte("device-fingerprint-1"))
	require.NoError(t, err)
	require.Equal(t, b1.Bytes(), b2.Bytes())

	b3, err := NewBlinding([]byte("device-fingerprint-2"))
	require.NoError(t, err)
	require.NotEqual(t, b1.Bytes(), b3.Bytes())
}

func TestBlindingRoundTrip(t *testing.T) {
	b, err := NewBlinding([]byte("pin:1234"))
	require.NoError(t, err)

	decoded, ok := BlindingFromBytes(b.Bytes())
	require.True(t, ok.IsTrue())
	require.Equal(t, b.Bytes(), decoded.Bytes())
}

func TestTokenBlindRoundTrip(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("blind seed"))
	pk := PublicKeyFrom(sk)
	id := []byte("alice@example.com")

	token, ok := sk.Sign(id)
	require.True(t, ok)

	pin, err := NewBlinding([]byte("pin:1234"))
	require.NoError(t, err)
	device, err := NewBlinding([]byte("device:abcd"))
	require.NoError(t, err)

	blinded := token.Sub(pin).Sub(device)
	require.False(t, blinded.Equal(token))
	require.False(t, blinded.Verify(pk, id))

	restored := blinded.Add(pin).Add(device)
	require.True(t, restored.Equal(token))
	require.True(t, restored.Verify(pk, id))
}

func TestAddRemoveBlindingFunctions(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("blind seed 2"))
	id := []byte("alice@example.com")

	token, ok := NewToken(sk, id)
	require.True(t, ok)

	blinded, err := AddBlinding(token, []byte("1234"))
	require.NoError(t, err)
	require.False(t, blinded.Equal(token))

	restored, err := RemoveBlinding(blinded, []byte("1234"))
	require.NoError(t, err)
	require.True(t, restored.Equal(token))
}
