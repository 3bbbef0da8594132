package oberon

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/oberonauth/oberon/internal/curve"
)

// PublicKeyBytes is the size of a PublicKey's canonical encoding.
const PublicKeyBytes = 288

// PublicKey is the verifier-held public key: three G2 points (W, X, Y),
// the images of a SecretKey's (w, x, y) under the G2 generator.
type PublicKey struct {
	w, x, y bls12381.G2Affine
}

// PublicKeyFrom derives the PublicKey matching sk.
func PublicKeyFrom(sk SecretKey) PublicKey {
	g2 := curve.G2Generator()
	return PublicKey{
		w: curve.G2ScalarMul(g2, &sk.w),
		x: curve.G2ScalarMul(g2, &sk.x),
		y: curve.G2ScalarMul(g2, &sk.y),
	}
}

// Bytes encodes pk as W ∥ X ∥ Y, each a compressed G2 point.
func (pk PublicKey) Bytes() [PublicKeyBytes]byte {
	var out [PublicKeyBytes]byte
	wb := pk.w.Bytes()
	xb := pk.x.Bytes()
	yb := pk.y.Bytes()
	copy(out[0:96], wb[:])
	copy(out[96:192], xb[:])
	copy(out[192:288], yb[:])
	return out
}

// PublicKeyFromBytes decodes a PublicKey. The returned choice is 1 only if
// all three components decoded as valid, in-subgroup compressed G2 points.
func PublicKeyFromBytes(data [PublicKeyBytes]byte) (PublicKey, choice) {
	var w, x, y bls12381.G2Affine
	_, errW := w.SetBytes(data[0:96])
	_, errX := x.SetBytes(data[96:192])
	_, errY := y.SetBytes(data[192:288])
	if errW != nil || errX != nil || errY != nil {
		return PublicKey{}, 0
	}
	return PublicKey{w: w, x: x, y: y}, 1
}

// IsInvalid returns a constant-time choice that is true iff any of W, X, Y
// is the identity of G2.
func (pk PublicKey) IsInvalid() choice {
	wId := choiceFromBool(pk.w.IsInfinity())
	xId := choiceFromBool(pk.x.IsInfinity())
	yId := choiceFromBool(pk.y.IsInfinity())
	return ctOr(ctOr(wId, xId), yId)
}

// VerifyToken verifies that token is valid for id under pk. It is the
// receiver-flipped form of Token.Verify kept from the reference
// implementation's rust/src/public_key.rs.
func (pk PublicKey) VerifyToken(id []byte, token Token) bool {
	return token.Verify(pk, id)
}
