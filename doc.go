// Package oberon implements the Oberon pairing-based multi-factor
// authentication token scheme on the BLS12-381 curve.
//
// An issuer holds a SecretKey and publishes the matching PublicKey. Signing
// an identifier with the SecretKey produces a Token, a single G1 point a
// holder can present back to anyone with the PublicKey to prove possession
// without a further round trip to the issuer. Blindings let a holder
// additively mask a Token with one or more independent factors (a device
// secret, a PIN, a recovery phrase) so that proving knowledge of the token
// also proves knowledge of every factor it was blinded with, and a Proof
// binds a single presentation to a fresh, unpredictable nonce so it cannot
// be replayed.
//
//	sk, _ := oberon.NewSecretKey(rand.Reader)
//	pk := oberon.PublicKeyFrom(sk)
//	token, ok := sk.Sign([]byte("alice@example.com"))
//	if !ok {
//		// negligible-probability degenerate derivation; retry with a
//		// different id or investigate the RNG.
//	}
//
//	proof, ok := oberon.NewProof(token, nil, []byte("alice@example.com"), nonce, rand.Reader)
//	if ok && proof.Open(pk, []byte("alice@example.com"), nonce) {
//		// authenticated
//	}
package oberon
