package oberon

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/oberonauth/oberon/internal/curve"
)

// Every scalar on the wire is little-endian, canonical 32 bytes; gnark-crypto
// encodes Fr elements big-endian, so the two helpers below just flip the
// byte order around a canonicality check against the scalar order.

func encodeScalarLE(s *fr.Element) [32]byte {
	be := s.Bytes()
	var le [32]byte
	for i := range be {
		le[i] = be[len(be)-1-i]
	}
	return le
}

func decodeScalarLE(data []byte) (fr.Element, choice) {
	if len(data) != 32 {
		return fr.Element{}, 0
	}
	be := make([]byte, 32)
	for i := range data {
		be[i] = data[31-i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(curve.ScalarOrder) >= 0 {
		return fr.Element{}, 0
	}
	var s fr.Element
	s.SetBigInt(v)
	return s, 1
}
