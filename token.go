package oberon

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/oberonauth/oberon/internal/curve"
	"github.com/oberonauth/oberon/internal/xof"
)

// TokenBytes is the size of a Token's canonical encoding.
const TokenBytes = 48

// Token is the issuer's signature on an identifier: a single G1 point.
// Display is deliberately not implemented anywhere in this package to avoid
// an accidental log leak of token material.
type Token struct {
	sigma bls12381.G1Affine
}

// derivedScalars computes m, m' and u = hash_to_curve(m') from id, reporting
// ok == false if any of the three degenerate cases in spec.md §4.4 step
// 1-3 is hit.
func derivedScalars(id []byte) (m, mTick fr.Element, u bls12381.G1Affine, ok bool) {
	m = xof.HashToScalar(id)
	if m.IsZero() {
		return
	}
	mBytes := encodeScalarLE(&m)
	mTick = xof.HashToScalar(mBytes[:])
	if mTick.IsZero() {
		return
	}
	mTickBytes := encodeScalarLE(&mTick)
	point, err := xof.HashToCurve(mTickBytes[:])
	if err != nil || point.IsInfinity() {
		return
	}
	u = point
	ok = true
	return
}

// NewToken issues a Token binding id to sk, matching spec.md §6's
// new_token entry point. SecretKey.Sign is the same operation kept as a
// method for callers that already hold a key value in hand.
func NewToken(sk SecretKey, id []byte) (Token, bool) {
	return newToken(sk, id)
}

// newToken implements Token::new from spec.md §4.4.
func newToken(sk SecretKey, id []byte) (Token, bool) {
	m, mTick, u, ok := derivedScalars(id)
	if !ok {
		return Token{}, false
	}

	// exponent = x + w*m' + y*m
	var wm, ym, exponent fr.Element
	wm.Mul(&sk.w, &mTick)
	ym.Mul(&sk.y, &m)
	exponent.Add(&sk.x, &wm)
	exponent.Add(&exponent, &ym)

	sigma := curve.G1ScalarMul(u, &exponent)
	if sigma.IsInfinity() {
		return Token{}, false
	}
	return Token{sigma: sigma}, true
}

// computeR computes m'*W + X + m*Y in G2, the shared right-hand side of
// both Token.Verify and Proof.Open.
func computeR(pk PublicKey, m, mTick fr.Element) bls12381.G2Affine {
	one := oneScalar()
	return curve.G2SumOfProducts(
		[]bls12381.G2Affine{pk.w, pk.x, pk.y},
		[]fr.Element{mTick, one, m},
	)
}

func oneScalar() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

// Verify checks that the token is a valid Oberon signature on id under pk.
func (t Token) Verify(pk PublicKey, id []byte) bool {
	m, mTick, u, ok := derivedScalars(id)
	if !ok {
		return false
	}
	r := computeR(pk, m, mTick)
	negG2 := curve.G2NegGenerator()
	return curve.PairingProductIsOne(u, t.sigma, r, negG2)
}

// Add removes a previously applied blinding factor: (σ-B)+B == σ.
func (t Token) Add(b Blinding) Token {
	return Token{sigma: curve.G1Add(t.sigma, b.point)}
}

// Sub applies a blinding factor to the token: σ-B.
func (t Token) Sub(b Blinding) Token {
	return Token{sigma: curve.G1Sub(t.sigma, b.point)}
}

// Bytes encodes t as a compressed G1 point.
func (t Token) Bytes() [TokenBytes]byte {
	return t.sigma.Bytes()
}

// TokenFromBytes decodes a Token. It does not reject the identity point
// (PublicKeyFromBytes does not either), so that intermediate blinded
// tokens (which may transiently equal the identity) round-trip.
func TokenFromBytes(data [TokenBytes]byte) (Token, choice) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(data[:]); err != nil {
		return Token{}, 0
	}
	return Token{sigma: p}, 1
}

// Equal reports whether t and other hold the same point, in constant time.
func (t Token) Equal(other Token) bool {
	a := t.Bytes()
	b := other.Bytes()
	return ctEqual(a[:], b[:]).IsTrue()
}

// Destroy overwrites t's point with the identity of G1.
func (t *Token) Destroy() {
	t.sigma.SetInfinity()
}
