// Package xof implements the hash primitives Oberon builds its scalars and
// curve points from: hash_to_scalar and hash_to_scalars (SHAKE-256), and
// hash_to_curve (gnark-crypto's HashToG1, which expands with
// expand_message_xmd/SHA-256, not SHAKE-256), each domain-separated by a
// fixed ASCII tag.
package xof

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"

	"github.com/oberonauth/oberon/internal/curve"
)

// Domain-separation tags. Casing and byte content must stay identical to the
// reference implementation to preserve interop of the scalar-derivation
// paths; see DESIGN.md for why hash-to-curve does not share the same
// expander as hash-to-scalar.
const (
	scalarDST = "OBERON_BLS12381FQ_XOF:SHAKE-256_"
	curveDST  = "OBERON_BLS12381G1_XOF:SHAKE-256_SSWU_RO_"
)

// HashToScalar absorbs the scalar domain tag followed by the concatenation
// of parts, squeezes 48 bytes, and reduces them into a single Fr element.
func HashToScalar(parts ...[]byte) fr.Element {
	out := make([]fr.Element, 1)
	squeezeScalars(parts, out)
	return out[0]
}

// HashToScalars absorbs the scalar domain tag followed by the concatenation
// of parts, squeezes 48*n bytes, and fills n consecutive scalar reductions.
func HashToScalars(n int, parts ...[]byte) []fr.Element {
	out := make([]fr.Element, n)
	squeezeScalars(parts, out)
	return out
}

func squeezeScalars(parts [][]byte, out []fr.Element) {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(scalarDST))
	for _, p := range parts {
		_, _ = h.Write(p)
	}

	buf := make([]byte, 48)
	for i := range out {
		_, _ = h.Read(buf)
		v := new(big.Int).SetBytes(buf)
		v.Mod(v, curve.ScalarOrder)
		out[i].SetBigInt(v)
	}
}

// HashToCurve maps data to a point on G1, domain-separated by curveDST.
//
// The reference crate performs this mapping with ExpandMsgXof<SHAKE-256>
// feeding a from-scratch SSWU + 11-isogeny map. gnark-crypto's HashToG1
// already implements a correct, audited RFC 9380 SSWU+isogeny+cofactor-clear
// map but always expands its message with expand_message_xmd/SHA-256; it has
// no pluggable expander. Reimplementing the isogeny map here would duplicate
// arithmetic-layer functionality the spec treats as a dependency (see
// DESIGN.md), so this delegates the point derivation to the arithmetic
// layer while keeping the domain tag byte-identical to the spec.
func HashToCurve(data []byte) (bls12381.G1Affine, error) {
	return bls12381.HashToG1(data, []byte(curveDST))
}
