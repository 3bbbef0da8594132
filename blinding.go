package oberon

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/oberonauth/oberon/internal/xof"
)

// BlindingBytes is the size of a Blinding's canonical encoding.
const BlindingBytes = 48

// Blinding is a single masking factor applied additively to a Token: a G1
// point with no known discrete log, derived from arbitrary caller data via
// hash_to_curve rather than ever being generated from a secret scalar.
type Blinding struct {
	point bls12381.G1Affine
}

// NewBlinding derives a Blinding deterministically from data (e.g. a device
// fingerprint, a PIN, a recovery code). Two calls with the same data always
// produce the same Blinding.
func NewBlinding(data []byte) (Blinding, error) {
	p, err := xof.HashToCurve(data)
	if err != nil {
		return Blinding{}, err
	}
	return Blinding{point: p}, nil
}

// Bytes encodes b as a compressed G1 point.
func (b Blinding) Bytes() [BlindingBytes]byte {
	return b.point.Bytes()
}

// BlindingFromBytes decodes a Blinding. The returned choice is 1 only if the
// bytes decoded as a valid compressed G1 point.
func BlindingFromBytes(data [BlindingBytes]byte) (Blinding, choice) {
	var p bls12381.G1Affine
	if _, err := p.SetBytes(data[:]); err != nil {
		return Blinding{}, 0
	}
	return Blinding{point: p}, 1
}

// AddBlinding derives a Blinding from data and applies it to tk, matching
// spec.md §6's add_blinding entry point. Masking a token subtracts the
// blinding point; see Token.Sub.
func AddBlinding(tk Token, data []byte) (Token, error) {
	b, err := NewBlinding(data)
	if err != nil {
		return Token{}, err
	}
	return tk.Sub(b), nil
}

// RemoveBlinding derives a Blinding from data and lifts it off tk, matching
// spec.md §6's remove_blinding entry point. Unmasking a token adds the
// blinding point back; see Token.Add.
func RemoveBlinding(tk Token, data []byte) (Token, error) {
	b, err := NewBlinding(data)
	if err != nil {
		return Token{}, err
	}
	return tk.Add(b), nil
}
