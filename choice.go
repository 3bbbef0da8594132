package oberon

import "crypto/subtle"

// choice is a constant-time boolean, following the reference implementation's
// use of subtle::Choice: 1 means true, 0 means false. The byte decoders in
// this package (SecretKeyFromBytes, PublicKeyFromBytes, TokenFromBytes,
// BlindingFromBytes, ProofFromBytes) report their result as one of these, and
// a failed decode hands back the type's zero value rather than panicking.
// Verification outcomes (Token.Verify, Proof.Open and their free-function
// forms) are plain bools, not choices.
type choice byte

func choiceFromBool(b bool) choice {
	return choice(subtle.ConstantTimeByteEq(b2u8(b), 1))
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// IsTrue reports whether c represents true. Calling code should treat this
// as the single point where a constant-time result is consulted.
func (c choice) IsTrue() bool {
	return c == 1
}

func ctEqual(a, b []byte) choice {
	if len(a) != len(b) {
		return 0
	}
	return choice(subtle.ConstantTimeCompare(a, b))
}

func ctSelect(c choice, a, b choice) choice {
	return choice(subtle.ConstantTimeSelect(int(c), int(a), int(b)))
}

// ctOr combines two choices as a constant-time logical OR.
func ctOr(a, b choice) choice {
	return ctSelect(a, 1, b)
}

// ctAnd combines two choices as a constant-time logical AND.
func ctAnd(a, b choice) choice {
	return ctSelect(a, b, 0)
}
