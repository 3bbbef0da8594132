package oberon

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSecretKeyRandom(t *testing.T) {
	sk1, err := NewSecretKey(rand.Reader)
	require.NoError(t, err)
	sk2, err := NewSecretKey(rand.Reader)
	require.NoError(t, err)
	require.False(t, sk1.Equal(sk2))
}

func TestSecretKeyFromSeedDeterministic(t *testing.T) {
	seed := []byte("oberon test seed")
	sk1 := SecretKeyFromSeed(seed)
	sk2 := SecretKeyFromSeed(seed)
	require.True(t, sk1.Equal(sk2))

	other := SecretKeyFromSeed([]byte("different seed"))
	require.False(t, sk1.Equal(other))
}

func TestSecretKeyRoundTrip(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("round trip seed"))
	data := sk.Bytes()

	decoded, ok := SecretKeyFromBytes(data)
	require.True(t, ok.IsTrue())
	require.True(t, sk.Equal(decoded))
}

func TestSecretKeyFromBytesRejectsNonCanonical(t *testing.T) {
	var data [SecretKeyBytes]byte
	for i := range data {
		data[i] = 0xff
	}
	_, ok := SecretKeyFromBytes(data)
	require.False(t, ok.IsTrue())
}

func TestSecretKeyDestroy(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("destroy me"))
	sk.Destroy()
	var want SecretKey
	require.True(t, sk.Equal(want))
}

func TestSignProducesVerifiableToken(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("sign seed"))
	pk := PublicKeyFrom(sk)

	id := []byte("alice@example.com")
	token, ok := sk.Sign(id)
	require.True(t, ok)
	require.True(t, pk.VerifyToken(id, token))
	require.True(t, token.Verify(pk, id))
}

func TestTokenVerifyRejectsWrongID(t *testing.T) {
	sk := SecretKeyFromSeed([]byte("sign seed 2"))
	pk := PublicKeyFrom(sk)

	token, ok := sk.Sign([]byte("alice@example.com"))
	require.True(t, ok)
	require.False(t, token.Verify(pk, []byte("bob@example.com")))
}

func TestTokenVerifyRejectsWrongKey(t *testing.T) {
	sk1 := SecretKeyFromSeed([]byte("key one"))
	sk2 := SecretKeyFromSeed([]byte("key two"))
	pk2 := PublicKeyFrom(sk2)

	id := []byte("alice@example.com")
	token, ok := sk1.Sign(id)
	require.True(t, ok)
	require.False(t, token.Verify(pk2, id))
}
