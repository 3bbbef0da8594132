package curve

import (
	"crypto/rand"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestRandomScalarInRange(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	require.Less(t, ScalarToBigInt(&s).Cmp(ScalarOrder), 0)
}

func TestG1ScalarMulMatchesSumOfProducts(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	a := G1ScalarMul(g1, &s)
	b := G1SumOfProducts([]bls12381.G1Affine{g1}, []fr.Element{s})
	require.True(t, a.Equal(&b))
}

func TestG1AddSubRoundTrip(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	p := G1ScalarMul(g1, &s)

	added := G1Add(p, g1)
	back := G1Sub(added, g1)
	require.True(t, back.Equal(&p))
}

func TestPairingProductIsOneForMatchingExponents(t *testing.T) {
	_, _, g1, g2 := bls12381.Generators()
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)

	p := G1ScalarMul(g1, &s)
	q := G2ScalarMul(g2, &s)

	// e(p, g2) * e(-g1, q) == e(s*g1, g2) * e(-g1, s*g2) == 1
	require.True(t, PairingProductIsOne(p, G1Neg(g1), g2, q))
}
