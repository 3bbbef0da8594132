package oberon

import (
	"errors"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/oberonauth/oberon/internal/curve"
	"github.com/oberonauth/oberon/internal/xof"
)

// ProofBytes is the size of a Proof's canonical encoding.
const ProofBytes = 96

// maxBlindRetries bounds the reject-and-redraw loop used to pick the
// per-proof ephemeral scalar r. A draw landing on 0 or 1 happens with
// probability ~2/|Fr|; 100 attempts makes running out of draws less likely
// than a hardware fault.
const maxBlindRetries = 100

// Proof is a single-use, nonce-bound zero-knowledge proof that the prover
// holds a valid (possibly blinded) Token for some id, without revealing the
// token itself.
type Proof struct {
	u, z bls12381.G1Affine
}

// NewProof creates a proof that token (optionally masked by blindings) is a
// valid signature on id, freshly bound to nonce. rng supplies the ephemeral
// scalar r; it must never be reused across proofs for the same token.
func NewProof(token Token, blindings []Blinding, id, nonce []byte, rng io.Reader) (Proof, bool) {
	if !checkBlindingCount(len(blindings)) {
		return Proof{}, false
	}

	_, _, u, ok := derivedScalars(id)
	if !ok {
		return Proof{}, false
	}

	r, err := drawProofScalar(rng)
	if err != nil {
		return Proof{}, false
	}

	uPoint := curve.G1ScalarMul(u, &r)
	if uPoint.IsInfinity() {
		return Proof{}, false
	}
	uBytes := uPoint.Bytes()

	t := xof.HashToScalar(uBytes[:], nonce)

	p := token.sigma
	for _, b := range blindings {
		p = curve.G1Add(p, b.point)
	}

	var rPlusT fr.Element
	rPlusT.Add(&r, &t)
	z := curve.G1Neg(curve.G1ScalarMul(p, &rPlusT))
	if z.IsInfinity() {
		return Proof{}, false
	}

	return Proof{u: uPoint, z: z}, true
}

// drawProofScalar draws a scalar from Fr \ {0, 1}, retrying on the
// negligible-probability degenerate draws.
func drawProofScalar(rng io.Reader) (fr.Element, error) {
	for i := 0; i < maxBlindRetries; i++ {
		r, err := curve.RandomScalar(rng)
		if err != nil {
			return fr.Element{}, err
		}
		if r.IsZero() || r.IsOne() {
			continue
		}
		return r, nil
	}
	return fr.Element{}, errors.New("oberon: exhausted retries drawing proof scalar")
}

// VerifyProof checks pf against pk, id and nonce, matching spec.md §6's
// verify_proof entry point. Proof.Open is the same operation kept as a
// method for callers that already hold a proof value in hand.
func VerifyProof(pf Proof, pk PublicKey, id, nonce []byte) bool {
	return pf.Open(pk, id, nonce)
}

// Open verifies a Proof against pk, id and the nonce it was created with.
func (pf Proof) Open(pk PublicKey, id, nonce []byte) bool {
	if pk.IsInvalid().IsTrue() {
		return false
	}
	if pf.u.IsInfinity() || pf.z.IsInfinity() {
		return false
	}

	m, mTick, u, ok := derivedScalars(id)
	if !ok {
		return false
	}

	uBytes := pf.u.Bytes()
	t := xof.HashToScalar(uBytes[:], nonce)

	uTick := curve.G1Add(curve.G1ScalarMul(u, &t), pf.u)

	r := computeR(pk, m, mTick)
	g2 := curve.G2Generator()
	return curve.PairingProductIsOne(uTick, pf.z, r, g2)
}

// Bytes encodes pf as U ∥ Z, each a compressed G1 point.
func (pf Proof) Bytes() [ProofBytes]byte {
	var out [ProofBytes]byte
	u := pf.u.Bytes()
	z := pf.z.Bytes()
	copy(out[0:48], u[:])
	copy(out[48:96], z[:])
	return out
}

// ProofFromBytes decodes a Proof. Decoding never rejects the identity point;
// an identity-holding proof simply fails Open.
func ProofFromBytes(data [ProofBytes]byte) (Proof, choice) {
	var u, z bls12381.G1Affine
	_, errU := u.SetBytes(data[0:48])
	_, errZ := z.SetBytes(data[48:96])
	if errU != nil || errZ != nil {
		return Proof{}, 0
	}
	return Proof{u: u, z: z}, 1
}
