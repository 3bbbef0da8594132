package oberon

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/oberonauth/oberon/internal/curve"
	"github.com/oberonauth/oberon/internal/xof"
)

// SecretKeyBytes is the size of a SecretKey's canonical encoding.
const SecretKeyBytes = 96

// SecretKey is the issuer's long-lived signing key: three scalars (w, x, y).
// It is the only long-lived secret in the scheme; Destroy zeroes it.
type SecretKey struct {
	w, x, y fr.Element
}

// NewSecretKey draws three non-degenerate scalars from rng.
func NewSecretKey(rng io.Reader) (SecretKey, error) {
	w, err := randomNonZeroScalar(rng)
	if err != nil {
		return SecretKey{}, err
	}
	x, err := randomNonZeroScalar(rng)
	if err != nil {
		return SecretKey{}, err
	}
	y, err := randomNonZeroScalar(rng)
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{w: w, x: x, y: y}, nil
}

func randomNonZeroScalar(rng io.Reader) (fr.Element, error) {
	for {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return fr.Element{}, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// SecretKeyFromSeed deterministically derives a SecretKey from seed via
// SHAKE-256 (hash_to_scalars(seed, 3)).
func SecretKeyFromSeed(seed []byte) SecretKey {
	s := xof.HashToScalars(3, seed)
	return SecretKey{w: s[0], x: s[1], y: s[2]}
}

// Bytes encodes sk as w ∥ x ∥ y, each a canonical little-endian scalar.
func (sk SecretKey) Bytes() [SecretKeyBytes]byte {
	var out [SecretKeyBytes]byte
	w := encodeScalarLE(&sk.w)
	x := encodeScalarLE(&sk.x)
	y := encodeScalarLE(&sk.y)
	copy(out[0:32], w[:])
	copy(out[32:64], x[:])
	copy(out[64:96], y[:])
	return out
}

// SecretKeyFromBytes decodes a SecretKey. The returned choice is 1 only if
// all three scalars were canonical.
func SecretKeyFromBytes(data [SecretKeyBytes]byte) (SecretKey, choice) {
	w, okW := decodeScalarLE(data[0:32])
	x, okX := decodeScalarLE(data[32:64])
	y, okY := decodeScalarLE(data[64:96])
	ok := ctAnd(ctAnd(okW, okX), okY)
	if !ok.IsTrue() {
		return SecretKey{}, 0
	}
	return SecretKey{w: w, x: x, y: y}, 1
}

// Equal reports whether sk and other hold the same scalars, in constant
// time.
func (sk SecretKey) Equal(other SecretKey) bool {
	a := sk.Bytes()
	b := other.Bytes()
	return ctEqual(a[:], b[:]).IsTrue()
}

// Sign issues a Token binding id to sk. It fails only on the negligible-
// probability degenerate derivations described in spec.md §4.4/§7.
func (sk SecretKey) Sign(id []byte) (Token, bool) {
	return newToken(sk, id)
}

// Destroy overwrites sk's scalars with zero. Go has no destructors, so
// callers that hold a SecretKey past its useful life must call this
// explicitly — unlike the reference implementation's ZeroizeOnDrop, which
// runs automatically when the value goes out of scope.
func (sk *SecretKey) Destroy() {
	sk.w.SetZero()
	sk.x.SetZero()
	sk.y.SetZero()
}
